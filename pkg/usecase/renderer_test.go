package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/burndown/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/burndown/pkg/domain/model"
	"github.com/secmon-lab/burndown/pkg/usecase"
)

func buildSet(t *testing.T, days int, withWorkAdded bool) (*model.BurndownPayload, model.SeriesSet) {
	t.Helper()

	p := testPayload(days, withWorkAdded)
	set, err := model.NormalizePayload(p, time.UTC)
	gt.NoError(t, err).Required()
	return p, set
}

func TestRendererBuildChart(t *testing.T) {
	renderer := usecase.NewRenderer(nil)

	t.Run("interactive chart", func(t *testing.T) {
		p, set := buildSet(t, 45, false)
		opts, err := model.NewRenderOptions(p, set, model.RenderModeInteractive, model.Viewport{Width: 640}, time.UTC)
		gt.NoError(t, err).Required()

		chart := renderer.BuildChart(set, opts)
		gt.Equal(t, len(chart.Series), 3)
		gt.Equal(t, chart.XAxis.Interval.String(), "3 days")
		gt.Equal(t, chart.XAxis.Label, "Days in Milestone")
		gt.Equal(t, chart.YAxis.Label, "Effort (hours)")
		gt.Equal(t, chart.YAxis.Min, 0.0)
		gt.Equal(t, chart.TooltipFormat, "%s - %s hours")
		gt.True(t, chart.Animate)
		gt.True(t, chart.Clickable)
		gt.Equal(t, chart.Title, "")
		gt.Equal(t, chart.Width, 640)
		gt.Equal(t, chart.Legend.Placement, model.LegendInside)

		ideal := chart.FindSeries(model.SeriesIdeal)
		gt.NotNil(t, ideal)
		gt.True(t, ideal.Dashed)
		gt.Equal(t, ideal.Color, "#AAAAAA")
		gt.Equal(t, ideal.LineWidth, 1.25)
		gt.Equal(t, len(ideal.Points), 45)

		gt.Nil(t, chart.FindSeries(model.SeriesWorkAdded))
	})

	t.Run("print chart", func(t *testing.T) {
		p, set := buildSet(t, 10, true)
		opts, err := model.NewRenderOptions(p, set, model.RenderModePrint, model.Viewport{}, time.UTC)
		gt.NoError(t, err).Required()

		chart := renderer.BuildChart(set, opts)
		gt.Equal(t, len(chart.Series), 4)
		gt.Equal(t, chart.Title, "milestone1")
		gt.False(t, chart.Animate)
		gt.False(t, chart.Clickable)
		gt.Equal(t, chart.Legend.Placement, model.LegendOutside)
		gt.Equal(t, chart.XAxis.Interval.String(), "1 day")
	})

	t.Run("custom style", func(t *testing.T) {
		style := &model.Style{Remaining: model.SeriesStyle{Label: "Open work", Color: "#123456"}}
		p, set := buildSet(t, 5, false)
		opts, err := model.NewRenderOptions(p, set, model.RenderModeInteractive, model.Viewport{}, time.UTC)
		gt.NoError(t, err).Required()

		chart := usecase.NewRenderer(style).BuildChart(set, opts)
		remaining := chart.FindSeries(model.SeriesRemaining)
		gt.Equal(t, remaining.Label, "Open work")
		gt.Equal(t, remaining.Color, "#123456")
		gt.Equal(t, chart.FindSeries(model.SeriesTeamEffort).Color, "#FFD600")
	})
}

func TestRendererSurfaces(t *testing.T) {
	ctx := context.Background()
	renderer := usecase.NewRenderer(nil)
	p, set := buildSet(t, 5, false)
	opts, err := model.NewRenderOptions(p, set, model.RenderModeInteractive, model.Viewport{}, time.UTC)
	gt.NoError(t, err).Required()

	t.Run("render draws and rerender updates", func(t *testing.T) {
		surface := &mocks.ChartSurfaceMock{
			DrawFunc:   func(ctx context.Context, chart *model.Chart) error { return nil },
			UpdateFunc: func(ctx context.Context, chart *model.Chart) error { return nil },
		}

		_, err := renderer.Render(ctx, set, opts, surface)
		gt.NoError(t, err)
		_, err = renderer.Rerender(ctx, set, opts.WithoutAnimation(), surface)
		gt.NoError(t, err)

		gt.Equal(t, len(surface.DrawCalls()), 1)
		gt.Equal(t, len(surface.UpdateCalls()), 1)
		gt.True(t, surface.DrawCalls()[0].Chart.Animate)
		gt.False(t, surface.UpdateCalls()[0].Chart.Animate)
	})

	t.Run("surface failure", func(t *testing.T) {
		surface := &mocks.ChartSurfaceMock{
			DrawFunc: func(ctx context.Context, chart *model.Chart) error {
				return goerr.New("connection closed")
			},
		}

		chart, err := renderer.Render(ctx, set, opts, surface)
		gt.Error(t, err)
		gt.Nil(t, chart)
		gt.S(t, err.Error()).Contains("failed to draw chart")
	})
}
