package surface

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/burndown/pkg/domain/interfaces"
	"github.com/secmon-lab/burndown/pkg/domain/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// pixelDPI is the resolution vgimg renders PNG output at
const pixelDPI = 96

// Image is a static surface for print output. It keeps the last chart or
// status it was given and encodes the chart as PNG or SVG on demand.
type Image struct {
	loc *time.Location

	mu     sync.Mutex
	chart  *model.Chart
	status *model.Status
}

var (
	_ interfaces.ChartSurface  = (*Image)(nil)
	_ interfaces.StatusDisplay = (*Image)(nil)
)

// NewImage creates an image surface; loc is used for tick labels
func NewImage(loc *time.Location) *Image {
	if loc == nil {
		loc = time.Local
	}
	return &Image{loc: loc}
}

// Draw implements interfaces.ChartSurface
func (s *Image) Draw(ctx context.Context, chart *model.Chart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chart = chart
	s.status = nil
	return nil
}

// Update implements interfaces.ChartSurface. A static image has no view
// state to keep, so it is the same as Draw.
func (s *Image) Update(ctx context.Context, chart *model.Chart) error {
	return s.Draw(ctx, chart)
}

// ShowStatus implements interfaces.StatusDisplay
func (s *Image) ShowStatus(ctx context.Context, status model.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chart = nil
	s.status = &status
	return nil
}

// Chart returns the last drawn chart, or nil
func (s *Image) Chart() *model.Chart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chart
}

// Status returns the last shown status, or nil
func (s *Image) Status() *model.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Encode writes the drawn chart to w
func (s *Image) Encode(w io.Writer, format model.ImageFormat) error {
	if !format.IsValid() {
		return goerr.New("unsupported image format", goerr.V("format", format))
	}

	chart := s.Chart()
	if chart == nil {
		return goerr.Wrap(model.ErrNothingRendered, "nothing to encode")
	}

	p, err := s.buildPlot(chart)
	if err != nil {
		return err
	}

	writer, err := p.WriterTo(pixels(chart.Width), pixels(chart.Height), string(format))
	if err != nil {
		return goerr.Wrap(err, "failed to create plot writer", goerr.V("format", format))
	}
	if _, err := writer.WriteTo(w); err != nil {
		return goerr.Wrap(err, "failed to write plot", goerr.V("format", format))
	}
	return nil
}

func pixels(px int) vg.Length {
	return vg.Length(px) * vg.Inch / pixelDPI
}

func (s *Image) buildPlot(chart *model.Chart) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = chart.Title
	p.X.Label.Text = chart.XAxis.Label
	p.Y.Label.Text = chart.YAxis.Label
	p.X.Tick.Marker = DayTicker{
		Interval: chart.XAxis.Interval.Amount,
		Layout:   chart.XAxis.TickLayout,
		Location: s.loc,
	}
	p.Legend.Top = true
	p.Legend.Left = chart.Legend.Placement == model.LegendOutside
	p.Add(plotter.NewGrid())

	for _, series := range chart.Series {
		line, err := newLine(series)
		if err != nil {
			return nil, err
		}
		if len(series.Points) > 0 {
			p.Add(line)
		}

		if series.ShowMarker && len(series.Points) > 0 {
			scatter, err := plotter.NewScatter(line.XYs)
			if err != nil {
				return nil, goerr.Wrap(err, "failed to create markers", goerr.V("role", series.Role))
			}
			scatter.GlyphStyle.Color = line.Color
			scatter.GlyphStyle.Shape = draw.CircleGlyph{}
			scatter.GlyphStyle.Radius = vg.Points(2)
			p.Add(scatter)
		}

		if chart.Legend.Show {
			p.Legend.Add(series.Label, line)
		}
	}

	// Fixed bounds after Add, which widens the axes to the data
	p.X.Min = float64(chart.XAxis.Min) / 1000
	p.X.Max = float64(chart.XAxis.Max) / 1000
	p.Y.Min = chart.YAxis.Min
	if p.Y.Max <= p.Y.Min {
		p.Y.Max = p.Y.Min + 1
	}

	return p, nil
}

func newLine(series model.ChartSeries) (*plotter.Line, error) {
	xys := make(plotter.XYs, len(series.Points))
	for i, pt := range series.Points {
		xys[i] = plotter.XY{X: float64(pt.Timestamp) / 1000, Y: pt.Value}
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create line", goerr.V("role", series.Role))
	}

	c, err := parseColor(series.Color)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid series color", goerr.V("role", series.Role))
	}
	line.Color = c
	line.Width = vg.Points(series.LineWidth)
	if series.Dashed {
		line.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	}
	return line, nil
}
