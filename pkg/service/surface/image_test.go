package surface_test

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/burndown/pkg/domain/model"
	"github.com/secmon-lab/burndown/pkg/service/surface"
)

func testChart(t *testing.T) *model.Chart {
	t.Helper()

	var points []model.EffortPoint
	start := time.Date(2013, time.July, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 30; i++ {
		ts, err := model.DateToTimestamp(start.AddDate(0, 0, i).Format(model.DateLayout), time.UTC)
		gt.NoError(t, err).Required()
		points = append(points, model.EffortPoint{Timestamp: ts, Value: float64(30 - i)})
	}

	return &model.Chart{
		MilestoneID: "milestone1",
		Mode:        model.RenderModePrint,
		Title:       "milestone1",
		Series: []model.ChartSeries{
			{Role: model.SeriesIdeal, Label: "Ideal effort", Color: "#AAA", Dashed: true, LineWidth: 1.25, Points: points},
			{Role: model.SeriesRemaining, Label: "Remaining effort", Color: "#23932C", LineWidth: 2, ShowMarker: true, Points: points[:10]},
			{Role: model.SeriesTeamEffort, Label: "Team effort", Color: "#FFD600", LineWidth: 2},
		},
		XAxis: model.TimeAxis{
			Label:      "Days in Milestone",
			Min:        points[0].Timestamp - 12*60*60*1000,
			Max:        points[len(points)-1].Timestamp + 12*60*60*1000,
			Interval:   model.NewTickInterval(len(points)),
			TickLayout: "02 Jan",
		},
		YAxis:  model.ValueAxis{Label: "Effort (hours)"},
		Legend: model.Legend{Show: true, Placement: model.LegendOutside},
		Width:  640,
		Height: 320,
	}
}

func TestImageEncode(t *testing.T) {
	ctx := context.Background()

	t.Run("png has the chart size", func(t *testing.T) {
		img := surface.NewImage(time.UTC)
		gt.NoError(t, img.Draw(ctx, testChart(t)))

		var buf bytes.Buffer
		gt.NoError(t, img.Encode(&buf, model.ImageFormatPNG)).Required()

		decoded, err := png.Decode(&buf)
		gt.NoError(t, err).Required()
		gt.Equal(t, decoded.Bounds().Dx(), 640)
		gt.Equal(t, decoded.Bounds().Dy(), 320)
	})

	t.Run("svg", func(t *testing.T) {
		img := surface.NewImage(time.UTC)
		gt.NoError(t, img.Update(ctx, testChart(t)))

		var buf bytes.Buffer
		gt.NoError(t, img.Encode(&buf, model.ImageFormatSVG)).Required()
		gt.S(t, buf.String()).Contains("<svg")
	})

	t.Run("status replaces chart", func(t *testing.T) {
		img := surface.NewImage(time.UTC)
		gt.NoError(t, img.Draw(ctx, testChart(t)))
		gt.NoError(t, img.ShowStatus(ctx, model.NoDataStatus()))

		gt.Nil(t, img.Chart())
		gt.Equal(t, img.Status().Kind, model.StatusNoData)

		var buf bytes.Buffer
		err := img.Encode(&buf, model.ImageFormatPNG)
		gt.True(t, errors.Is(err, model.ErrNothingRendered))
	})

	t.Run("unsupported format", func(t *testing.T) {
		img := surface.NewImage(time.UTC)
		gt.NoError(t, img.Draw(ctx, testChart(t)))

		var buf bytes.Buffer
		gt.Error(t, img.Encode(&buf, model.ImageFormat("gif")))
	})

	t.Run("invalid color", func(t *testing.T) {
		chart := testChart(t)
		chart.Series[0].Color = "grey"

		img := surface.NewImage(time.UTC)
		gt.NoError(t, img.Draw(ctx, chart))

		var buf bytes.Buffer
		gt.Error(t, img.Encode(&buf, model.ImageFormatPNG))
	})
}

func TestDayTicker(t *testing.T) {
	noon := func(day int) float64 {
		return float64(time.Date(2013, time.July, day, 12, 0, 0, 0, time.UTC).Unix())
	}

	t.Run("labels every interval days", func(t *testing.T) {
		ticker := surface.DayTicker{Interval: 3, Layout: "02 Jan", Location: time.UTC}
		ticks := ticker.Ticks(noon(1)-3600, noon(10)+3600)

		gt.Equal(t, len(ticks), 10)
		gt.Equal(t, ticks[0].Label, "01 Jul")
		gt.Equal(t, ticks[1].Label, "")
		gt.Equal(t, ticks[3].Label, "04 Jul")
		gt.Equal(t, ticks[9].Label, "10 Jul")
		gt.Equal(t, ticks[0].Value, noon(1))
	})

	t.Run("starts at the first noon inside the range", func(t *testing.T) {
		ticker := surface.DayTicker{Interval: 1, Layout: "2006-01-02", Location: time.UTC}
		ticks := ticker.Ticks(noon(1)+60, noon(3))

		gt.Equal(t, len(ticks), 2)
		gt.Equal(t, ticks[0].Label, "2013-07-02")
	})
}
