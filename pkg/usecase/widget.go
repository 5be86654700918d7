package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/burndown/pkg/domain/interfaces"
	"github.com/secmon-lab/burndown/pkg/domain/model"
	"github.com/secmon-lab/burndown/pkg/domain/types"
	"github.com/secmon-lab/burndown/pkg/utils/apperr"
	"github.com/secmon-lab/burndown/pkg/utils/async"
)

// DefaultResizeDelay is how long resize events must settle before a redraw
const DefaultResizeDelay = 200 * time.Millisecond

// WidgetState is what a widget currently shows
type WidgetState string

const (
	WidgetStateIdle   WidgetState = "idle"
	WidgetStateChart  WidgetState = "chart"
	WidgetStateNoData WidgetState = "no-data"
	WidgetStateFailed WidgetState = "failed"
)

// WidgetConfig holds configuration for Widget
type WidgetConfig struct {
	metric          types.Metric
	approxStartDate string
	location        *time.Location
	viewport        model.Viewport
	resizeDelay     time.Duration
	navigator       interfaces.Navigator
}

// WidgetOption is a functional option for configuring Widget
type WidgetOption func(*WidgetConfig)

// WithMetric sets the initial effort metric
func WithMetric(metric types.Metric) WidgetOption {
	return func(c *WidgetConfig) {
		c.metric = metric
	}
}

// WithApproxStartDate passes the milestone's approximate start date upstream
func WithApproxStartDate(date string) WidgetOption {
	return func(c *WidgetConfig) {
		c.approxStartDate = date
	}
}

// WithLocation sets the time zone dates are interpreted in
func WithLocation(loc *time.Location) WidgetOption {
	return func(c *WidgetConfig) {
		c.location = loc
	}
}

// WithViewport sets the initial drawing area
func WithViewport(vp model.Viewport) WidgetOption {
	return func(c *WidgetConfig) {
		c.viewport = vp
	}
}

// WithResizeDelay sets the resize debounce delay
func WithResizeDelay(d time.Duration) WidgetOption {
	return func(c *WidgetConfig) {
		c.resizeDelay = d
	}
}

// WithNavigator sets where activated points send the user
func WithNavigator(nav interfaces.Navigator) WidgetOption {
	return func(c *WidgetConfig) {
		c.navigator = nav
	}
}

// NewWidgetConfig creates a new WidgetConfig with default values and optional settings
func NewWidgetConfig(opts ...WidgetOption) *WidgetConfig {
	config := &WidgetConfig{
		location:    time.Local,
		resizeDelay: DefaultResizeDelay,
	}
	for _, opt := range opts {
		opt(config)
	}
	if config.location == nil {
		config.location = time.Local
	}
	return config
}

// Widget is one burndown chart instance. It owns its state: the current
// metric, the last payload and series, and the request generation used to
// drop responses of superseded fetches.
type Widget struct {
	id       types.MilestoneID
	mode     model.RenderMode
	fetcher  interfaces.Fetcher
	renderer *Renderer
	surface  interfaces.ChartSurface
	status   interfaces.StatusDisplay
	config   *WidgetConfig
	resizer  *async.Debouncer

	drawMu sync.Mutex

	mu       sync.Mutex
	gen      uint64
	metric   types.Metric
	viewport model.Viewport
	state    WidgetState
	payload  *model.BurndownPayload
	series   model.SeriesSet
	chart    *model.Chart
}

// NewWidget creates a widget. The render mode is fixed for its lifetime.
func NewWidget(id types.MilestoneID, mode model.RenderMode, fetcher interfaces.Fetcher, renderer *Renderer, surface interfaces.ChartSurface, status interfaces.StatusDisplay, opts ...WidgetOption) *Widget {
	config := NewWidgetConfig(opts...)
	w := &Widget{
		id:       id,
		mode:     mode,
		fetcher:  fetcher,
		renderer: renderer,
		surface:  surface,
		status:   status,
		config:   config,
		metric:   config.metric,
		viewport: config.viewport,
		state:    WidgetStateIdle,
	}
	w.resizer = async.NewDebouncer(config.resizeDelay, w.redraw)
	return w
}

// Mode returns the render mode
func (w *Widget) Mode() model.RenderMode {
	return w.mode
}

// State returns what the widget currently shows
func (w *Widget) State() WidgetState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Chart returns the chart currently shown, or nil
func (w *Widget) Chart() *model.Chart {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.chart
}

// Payload returns the payload of the chart currently shown, or nil
func (w *Widget) Payload() *model.BurndownPayload {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.payload
}

// Load fetches the burndown data and shows exactly one of: the chart, the
// no-data message or the failure message. A not renderable widget does
// nothing. The returned error is only about the surface or status display;
// fetch and data problems end up as a status.
func (w *Widget) Load(ctx context.Context) error {
	return w.StartLoad()(ctx)
}

// StartLoad takes the next request generation with the current metric and
// returns the fetch that completes it. Calls are ordered by when StartLoad
// ran, not by when the returned function runs.
func (w *Widget) StartLoad() func(ctx context.Context) error {
	if !w.mode.Renderable() {
		return func(ctx context.Context) error { return nil }
	}

	w.mu.Lock()
	w.gen++
	gen := w.gen
	req := model.FetchRequest{
		MilestoneID:     w.id,
		Metric:          w.metric,
		ApproxStartDate: w.config.approxStartDate,
	}
	w.mu.Unlock()

	return func(ctx context.Context) error {
		result := w.fetcher.Fetch(ctx, req)
		return w.apply(ctx, gen, result)
	}
}

// SetMetric switches the effort metric and reloads. Responses to earlier
// requests that arrive later are dropped.
func (w *Widget) SetMetric(ctx context.Context, metric types.Metric) error {
	reload, err := w.StartMetric(metric)
	if err != nil {
		return err
	}
	return reload(ctx)
}

// StartMetric records the metric and starts a new request for it. The
// returned function fetches and shows the result and may run in the
// background; the last started request wins.
func (w *Widget) StartMetric(metric types.Metric) (func(ctx context.Context) error, error) {
	if !metric.IsValid() {
		return nil, goerr.Wrap(model.ErrInvalidRequest, "unknown metric", goerr.V("metric", metric))
	}

	w.mu.Lock()
	w.metric = metric
	w.mu.Unlock()

	return w.StartLoad(), nil
}

// apply holds drawMu for the whole surface write so that an older response
// can never be drawn over a newer one. mu is only held to read and commit
// state, so resize and click events are not blocked by a slow surface.
func (w *Widget) apply(ctx context.Context, gen uint64, result model.FetchResult) error {
	logger := ctxlog.From(ctx).With("milestone", w.id, "mode", w.mode)

	w.drawMu.Lock()
	defer w.drawMu.Unlock()

	w.mu.Lock()
	current := w.gen
	viewport := w.viewport
	w.mu.Unlock()

	if gen != current {
		logger.Debug("dropping stale burndown response", "generation", gen, "current", current)
		return nil
	}

	switch result.Outcome {
	case model.OutcomeNoData:
		logger.Info("no burndown data for milestone")
		return w.showStatus(ctx, model.NoDataStatus(), WidgetStateNoData)

	case model.OutcomeTransportError:
		logger.Warn("failed to retrieve burndown data", "error", result.Err)
		return w.showStatus(ctx, model.FailureStatus(), WidgetStateFailed)
	}

	set, err := model.NormalizePayload(result.Payload, w.config.location)
	if err != nil {
		logger.Error("invalid burndown data", "error", err)
		return w.showStatus(ctx, model.FailureStatus(), WidgetStateFailed)
	}

	opts, err := w.renderOptions(result.Payload, set, viewport)
	if err != nil {
		logger.Error("invalid burndown data", "error", err)
		return w.showStatus(ctx, model.FailureStatus(), WidgetStateFailed)
	}

	chart, err := w.renderer.Render(ctx, set, opts, w.surface)
	if err != nil {
		return err
	}

	w.mu.Lock()
	w.payload = result.Payload
	w.series = set
	w.chart = chart
	w.state = WidgetStateChart
	w.mu.Unlock()
	return nil
}

func (w *Widget) renderOptions(p *model.BurndownPayload, set model.SeriesSet, vp model.Viewport) (model.RenderOptions, error) {
	opts, err := model.NewRenderOptions(p, set, w.mode, vp, w.config.location)
	if err != nil {
		return model.RenderOptions{}, err
	}
	opts.MilestoneID = w.id
	return opts, nil
}

// showStatus must be called with drawMu held
func (w *Widget) showStatus(ctx context.Context, status model.Status, state WidgetState) error {
	err := w.status.ShowStatus(ctx, status)

	w.mu.Lock()
	w.payload = nil
	w.series = model.SeriesSet{}
	w.chart = nil
	w.state = state
	w.mu.Unlock()

	if err != nil {
		return goerr.Wrap(err, "failed to show status", goerr.V("status", status.Kind))
	}
	return nil
}

// Resize records a new viewport and schedules a redraw once resizing has
// settled. Widgets whose profile does not react to resizing ignore it.
func (w *Widget) Resize(ctx context.Context, vp model.Viewport) {
	if !model.ProfileFor(w.mode).ResizeReactive {
		return
	}

	w.mu.Lock()
	w.viewport = vp
	w.mu.Unlock()

	w.resizer.Trigger(ctx)
}

func (w *Widget) redraw(ctx context.Context) {
	w.drawMu.Lock()
	defer w.drawMu.Unlock()

	w.mu.Lock()
	if w.state != WidgetStateChart {
		w.mu.Unlock()
		return
	}
	payload, series, viewport := w.payload, w.series, w.viewport
	w.mu.Unlock()

	opts, err := w.renderOptions(payload, series, viewport)
	if err != nil {
		apperr.Handle(ctx, goerr.Wrap(err, "failed to recompute render options"))
		return
	}

	chart, err := w.renderer.Rerender(ctx, series, opts.WithoutAnimation(), w.surface)
	if err != nil {
		apperr.Handle(ctx, err)
		return
	}

	w.mu.Lock()
	w.chart = chart
	w.mu.Unlock()
}

// Activate handles a click on the point at ts by navigating to the timeline
// of that day. Only interactive widgets are clickable.
func (w *Widget) Activate(ctx context.Context, ts int64) (string, error) {
	if w.mode != model.RenderModeInteractive {
		return "", goerr.Wrap(model.ErrNotInteractive, "point activation ignored",
			goerr.V("mode", w.mode))
	}

	w.mu.Lock()
	if w.state != WidgetStateChart {
		w.mu.Unlock()
		return "", goerr.Wrap(model.ErrNothingRendered, "point activation ignored")
	}
	url := model.NavigationURL(w.payload.TimelineURLBase, ts, w.config.location)
	w.mu.Unlock()

	if w.config.navigator != nil {
		if err := w.config.navigator.Navigate(ctx, url); err != nil {
			return "", goerr.Wrap(err, "failed to navigate", goerr.V("url", url))
		}
	}
	return url, nil
}

// Close stops pending redraws
func (w *Widget) Close() {
	w.resizer.Stop()
}
