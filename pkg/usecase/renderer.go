package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/samber/lo"
	"github.com/secmon-lab/burndown/pkg/domain/interfaces"
	"github.com/secmon-lab/burndown/pkg/domain/model"
)

// Renderer turns normalized series into chart documents and hands them to a
// surface. Print and interactive output differ only by the profile carried in
// the render options.
type Renderer struct {
	style *model.Style
}

// NewRenderer creates a Renderer. A nil style means the default style.
func NewRenderer(style *model.Style) *Renderer {
	if style == nil {
		style = model.DefaultStyle()
	}
	return &Renderer{style: style.WithDefaults()}
}

// Style returns the style used for every chart
func (r *Renderer) Style() *model.Style {
	return r.style
}

// BuildChart assembles the chart document for a series set
func (r *Renderer) BuildChart(set model.SeriesSet, opts model.RenderOptions) *model.Chart {
	series := lo.Map(set.Plotted(), func(s model.EffortSeries, _ int) model.ChartSeries {
		st := r.style.For(s.Role)
		return model.ChartSeries{
			Role:       s.Role,
			Label:      st.Label,
			Color:      st.Color,
			Dashed:     st.Dashed,
			LineWidth:  st.LineWidth,
			ShowMarker: st.ShowMarker,
			Points:     s.Points,
		}
	})

	return &model.Chart{
		MilestoneID: opts.MilestoneID,
		Mode:        opts.Mode,
		Title:       opts.Title,
		Series:      series,
		XAxis: model.TimeAxis{
			Label:      r.style.XAxisLabel,
			Min:        opts.XMin,
			Max:        opts.XMax,
			Interval:   opts.Interval,
			TickLayout: r.style.TickLayout,
		},
		YAxis: model.ValueAxis{
			Label: effortLabel(opts.EffortUnits),
			Min:   0,
		},
		Legend: model.Legend{
			Show:      true,
			Placement: opts.Profile.Legend,
		},
		Animate:       opts.Profile.Animate,
		Clickable:     opts.Profile.Clickable,
		TooltipFormat: "%s - %s " + opts.EffortUnits,
		Width:         opts.Viewport.Width,
		Height:        opts.Viewport.Height,
	}
}

func effortLabel(units string) string {
	if units == "" {
		return "Effort"
	}
	return fmt.Sprintf("Effort (%s)", units)
}

// Render draws a new chart on the surface
func (r *Renderer) Render(ctx context.Context, set model.SeriesSet, opts model.RenderOptions, surface interfaces.ChartSurface) (*model.Chart, error) {
	chart := r.BuildChart(set, opts)
	if err := surface.Draw(ctx, chart); err != nil {
		return nil, goerr.Wrap(err, "failed to draw chart",
			goerr.V("milestone", opts.MilestoneID),
			goerr.V("mode", opts.Mode))
	}

	ctxlog.From(ctx).Debug("chart drawn",
		"milestone", opts.MilestoneID,
		"mode", opts.Mode,
		"series", len(chart.Series),
		"interval", opts.Interval.String())
	return chart, nil
}

// Rerender redraws an existing chart in place, e.g. after a resize
func (r *Renderer) Rerender(ctx context.Context, set model.SeriesSet, opts model.RenderOptions, surface interfaces.ChartSurface) (*model.Chart, error) {
	chart := r.BuildChart(set, opts)
	if err := surface.Update(ctx, chart); err != nil {
		return nil, goerr.Wrap(err, "failed to update chart",
			goerr.V("milestone", opts.MilestoneID),
			goerr.V("width", opts.Viewport.Width),
			goerr.V("height", opts.Viewport.Height))
	}
	return chart, nil
}
