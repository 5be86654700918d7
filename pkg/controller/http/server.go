package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/burndown/frontend"
	"github.com/secmon-lab/burndown/pkg/domain/interfaces"
	"github.com/secmon-lab/burndown/pkg/usecase"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router   chi.Router
	sessions interfaces.SessionRegistry
}

// ServerConfig holds configuration for Server
type ServerConfig struct {
	location    *time.Location
	resizeDelay time.Duration
	tracURL     string
	minify      bool
}

// ServerOption is a functional option for configuring Server
type ServerOption func(*ServerConfig)

// WithServerLocation sets the time zone burndown dates are interpreted in
func WithServerLocation(loc *time.Location) ServerOption {
	return func(c *ServerConfig) {
		c.location = loc
	}
}

// WithServerResizeDelay sets how long live widgets wait for resizing to settle
func WithServerResizeDelay(d time.Duration) ServerOption {
	return func(c *ServerConfig) {
		c.resizeDelay = d
	}
}

// WithTracURL sets the base URL relative timeline links are resolved against
func WithTracURL(u string) ServerOption {
	return func(c *ServerConfig) {
		c.tracURL = u
	}
}

// WithMinify toggles minification of the widget script
func WithMinify(minify bool) ServerOption {
	return func(c *ServerConfig) {
		c.minify = minify
	}
}

// NewServerConfig creates a new ServerConfig with default values and optional settings
func NewServerConfig(opts ...ServerOption) *ServerConfig {
	config := &ServerConfig{
		location:    time.Local,
		resizeDelay: usecase.DefaultResizeDelay,
		minify:      true,
	}
	for _, opt := range opts {
		opt(config)
	}
	if config.location == nil {
		config.location = time.Local
	}
	return config
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	addr string,
	fetcher interfaces.Fetcher,
	renderer *usecase.Renderer,
	sessions interfaces.SessionRegistry,
	opts ...ServerOption,
) (*Server, error) {
	config := NewServerConfig(opts...)

	assets, err := frontend.Assets()
	if err != nil {
		return nil, err
	}
	assetHandler, err := NewAssetHandler(assets, config.minify)
	if err != nil {
		return nil, err
	}
	page, err := frontend.PageTemplate()
	if err != nil {
		return nil, err
	}

	widgets := newWidgetHandler(fetcher, renderer, sessions, page, config)

	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	router.Get("/health", handleHealth(sessions))

	router.Route("/milestone/{id}", func(r chi.Router) {
		r.Get("/", widgets.handlePage)
		r.Get("/ws", widgets.handleSession)
		r.Get("/burndown.{format:(png|svg)}", widgets.handleImage)
		r.Get("/navigate", widgets.handleNavigate)
	})

	router.Handle("/assets/*", http.StripPrefix(assetBase, assetHandler))

	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:   router,
		sessions: sessions,
	}

	return server, nil
}

// Shutdown closes every live widget session and then shuts the server down.
// Hijacked websocket connections are not tracked by http.Server, so they are
// closed first.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.sessions.CloseAll(ctx); err != nil {
		ctxlog.From(ctx).Warn("failed to close live sessions", "error", err)
	}

	if err := s.Server.Shutdown(ctx); err != nil {
		return goerr.Wrap(err, "failed to shutdown server")
	}
	return nil
}

// handleHealth handles health check requests
func handleHealth(sessions interfaces.SessionRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(map[string]any{
			"status":   "healthy",
			"service":  "burndown",
			"sessions": sessions.Count(),
		}); err != nil {
			ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
		}
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, err error, status int) {
	writeMessage(w, messageOf(err), status)
}

func writeMessage(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	}); err != nil {
		// Can't get context here, so use background context
		ctxlog.From(context.Background()).Error("Failed to encode error response", "error", err)
	}
}

func messageOf(err error) string {
	if goErr := goerr.Unwrap(err); goErr != nil {
		return goErr.Error()
	}
	return err.Error()
}
