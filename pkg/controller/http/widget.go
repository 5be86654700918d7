package http

import (
	"bytes"
	"context"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/burndown/pkg/domain/interfaces"
	"github.com/secmon-lab/burndown/pkg/domain/model"
	"github.com/secmon-lab/burndown/pkg/domain/types"
	"github.com/secmon-lab/burndown/pkg/service/surface"
	"github.com/secmon-lab/burndown/pkg/usecase"
	"github.com/secmon-lab/burndown/pkg/utils/apperr"
	"github.com/secmon-lab/burndown/pkg/utils/async"
)

const assetBase = "/assets"

// widgetHandler serves the widget page and everything a widget talks to
type widgetHandler struct {
	fetcher  interfaces.Fetcher
	renderer *usecase.Renderer
	sessions interfaces.SessionRegistry
	page     *template.Template
	config   *ServerConfig
	upgrader websocket.Upgrader
}

func newWidgetHandler(fetcher interfaces.Fetcher, renderer *usecase.Renderer, sessions interfaces.SessionRegistry, page *template.Template, config *ServerConfig) *widgetHandler {
	return &widgetHandler{
		fetcher:  fetcher,
		renderer: renderer,
		sessions: sessions,
		page:     page,
		config:   config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// widgetRequest is what every widget endpoint reads from the URL
type widgetRequest struct {
	milestoneID     types.MilestoneID
	metric          types.Metric
	approxStartDate string
}

func parseWidgetRequest(r *http.Request) (*widgetRequest, error) {
	id := types.MilestoneID(chi.URLParam(r, "id"))
	if err := id.Validate(); err != nil {
		return nil, err
	}

	q := r.URL.Query()
	metric, err := types.ParseMetric(q.Get("metric"))
	if err != nil {
		return nil, err
	}

	return &widgetRequest{
		milestoneID:     id,
		metric:          metric,
		approxStartDate: q.Get("approx_start_date"),
	}, nil
}

// query encodes the request for the URLs the page refers to
func (req *widgetRequest) query() string {
	q := url.Values{}
	if req.metric != types.MetricDefault {
		q.Set("metric", req.metric.String())
	}
	if req.approxStartDate != "" {
		q.Set("approx_start_date", req.approxStartDate)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func (req *widgetRequest) path(suffix string) string {
	return "/milestone/" + url.PathEscape(req.milestoneID.String()) + suffix
}

func (h *widgetHandler) widgetOptions(req *widgetRequest, opts ...usecase.WidgetOption) []usecase.WidgetOption {
	return append([]usecase.WidgetOption{
		usecase.WithMetric(req.metric),
		usecase.WithApproxStartDate(req.approxStartDate),
		usecase.WithLocation(h.config.location),
		usecase.WithResizeDelay(h.config.resizeDelay),
	}, opts...)
}

// pageConfig is handed to the widget script as window.burndownConfig
type pageConfig struct {
	MilestoneID string `json:"milestoneId"`
	Mode        string `json:"mode"`
	Metric      string `json:"metric"`
	WSURL       string `json:"wsURL,omitempty"`
}

type pageData struct {
	MilestoneID string
	AssetBase   string
	Mode        string
	Metric      string
	ImageURL    string
	Config      pageConfig
}

// queryFlag reads a boolean page flag; a missing flag yields def
func queryFlag(q url.Values, name string, def bool) (bool, error) {
	v, ok := q[name]
	if !ok {
		return def, nil
	}
	if len(v) == 0 || v[0] == "" {
		return true, nil
	}
	b, err := strconv.ParseBool(v[0])
	if err != nil {
		return false, goerr.Wrap(err, "invalid flag", goerr.V("name", name), goerr.V("value", v[0]))
	}
	return b, nil
}

func (h *widgetHandler) handlePage(w http.ResponseWriter, r *http.Request) {
	req, err := parseWidgetRequest(r)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}

	q := r.URL.Query()
	renderable, err := queryFlag(q, "renderable", true)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}
	printing, err := queryFlag(q, "print", false)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}
	mode := model.DecideRenderMode(renderable, printing)

	data := pageData{
		MilestoneID: req.milestoneID.String(),
		AssetBase:   assetBase,
		Mode:        mode.String(),
		Metric:      req.metric.String(),
		Config: pageConfig{
			MilestoneID: req.milestoneID.String(),
			Mode:        mode.String(),
			Metric:      req.metric.String(),
		},
	}
	switch mode {
	case model.RenderModeInteractive:
		data.Config.WSURL = req.path("/ws") + req.query()
	case model.RenderModePrint:
		data.ImageURL = req.path("/burndown.png") + req.query()
	}

	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		apperr.Handle(r.Context(), goerr.Wrap(err, "failed to render widget page"))
		writeError(w, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write widget page", "error", err)
	}
}

// resolvingNavigator makes timeline links absolute before the browser
// follows them
type resolvingNavigator struct {
	base string
	next interfaces.Navigator
}

func (n *resolvingNavigator) Navigate(ctx context.Context, target string) error {
	return n.next.Navigate(ctx, ResolveURL(n.base, target))
}

func viewportFrom(q url.Values) model.Viewport {
	width, _ := strconv.Atoi(q.Get("width"))
	height, _ := strconv.Atoi(q.Get("height"))
	return model.Viewport{Width: width, Height: height}
}

// handleSession runs one interactive widget for the lifetime of a websocket
func (h *widgetHandler) handleSession(w http.ResponseWriter, r *http.Request) {
	req, err := parseWidgetRequest(r)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}

	sessionID, err := types.NewSessionID()
	if err != nil {
		writeError(w, err, http.StatusInternalServerError)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client
		ctxlog.From(r.Context()).Warn("failed to upgrade websocket", "error", err)
		return
	}
	live := surface.NewLive(conn)

	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	defer cancel()
	logger := ctxlog.From(ctx).With("milestone", req.milestoneID, "session", sessionID)
	ctx = ctxlog.With(ctx, logger)

	if err := h.sessions.Add(ctx, sessionID, live); err != nil {
		apperr.Handle(ctx, err)
		_ = live.Close()
		return
	}
	defer func() {
		if err := h.sessions.Remove(ctx, sessionID); err != nil {
			logger.Debug("session already removed", "error", err)
		}
		if err := live.Close(); err != nil {
			logger.Debug("failed to close live surface", "error", err)
		}
	}()

	widget := usecase.NewWidget(req.milestoneID, model.RenderModeInteractive, h.fetcher, h.renderer, live, live,
		h.widgetOptions(req,
			usecase.WithViewport(viewportFrom(r.URL.Query())),
			usecase.WithNavigator(&resolvingNavigator{base: h.config.tracURL, next: live}),
		)...)
	defer widget.Close()

	logger.Info("live widget session started")
	async.Dispatch(ctx, widget.StartLoad())

	if err := live.Serve(ctx, widget); err != nil {
		apperr.Handle(ctx, err)
	}
	logger.Info("live widget session ended")
}

// loadStatic loads a widget onto an image surface and replies with an error
// unless a chart was drawn
func (h *widgetHandler) loadStatic(w http.ResponseWriter, r *http.Request, req *widgetRequest, mode model.RenderMode, vp model.Viewport) (*usecase.Widget, *surface.Image, bool) {
	img := surface.NewImage(h.config.location)
	widget := usecase.NewWidget(req.milestoneID, mode, h.fetcher, h.renderer, img, img,
		h.widgetOptions(req, usecase.WithViewport(vp))...)

	if err := widget.Load(r.Context()); err != nil {
		widget.Close()
		apperr.Handle(r.Context(), err)
		writeError(w, err, http.StatusInternalServerError)
		return nil, nil, false
	}

	switch widget.State() {
	case usecase.WidgetStateChart:
		return widget, img, true
	case usecase.WidgetStateNoData:
		writeMessage(w, img.Status().Message, http.StatusNotFound)
	default:
		writeMessage(w, model.FailureStatus().Message, http.StatusBadGateway)
	}
	widget.Close()
	return nil, nil, false
}

// handleImage renders the print chart as an image
func (h *widgetHandler) handleImage(w http.ResponseWriter, r *http.Request) {
	req, err := parseWidgetRequest(r)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}
	format := model.ImageFormat(chi.URLParam(r, "format"))
	if !format.IsValid() {
		writeMessage(w, "unsupported image format", http.StatusNotFound)
		return
	}

	widget, img, ok := h.loadStatic(w, r, req, model.RenderModePrint, viewportFrom(r.URL.Query()))
	if !ok {
		return
	}
	defer widget.Close()

	var buf bytes.Buffer
	if err := img.Encode(&buf, format); err != nil {
		apperr.Handle(r.Context(), err)
		writeError(w, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write burndown image", "error", err)
	}
}

// handleNavigate redirects to the timeline of the day at ?ts=, for browsers
// following a chart link without a live session
func (h *widgetHandler) handleNavigate(w http.ResponseWriter, r *http.Request) {
	req, err := parseWidgetRequest(r)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}
	ts, err := strconv.ParseInt(r.URL.Query().Get("ts"), 10, 64)
	if err != nil {
		writeError(w, goerr.Wrap(err, "invalid timestamp"), http.StatusBadRequest)
		return
	}

	widget, _, ok := h.loadStatic(w, r, req, model.RenderModeInteractive, model.Viewport{})
	if !ok {
		return
	}
	defer widget.Close()

	target, err := widget.Activate(r.Context(), ts)
	if err != nil {
		writeError(w, err, http.StatusConflict)
		return
	}
	http.Redirect(w, r, ResolveURL(h.config.tracURL, target), http.StatusFound)
}
