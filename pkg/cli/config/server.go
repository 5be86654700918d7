package config

import (
	"log/slog"
	"time"

	"github.com/secmon-lab/burndown/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr        string
	ResizeDelay time.Duration
	NoMinify    bool
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("BURNDOWN_ADDR"),
			Destination: &s.Addr,
		},
		&cli.DurationFlag{
			Name:        "resize-delay",
			Usage:       "How long live charts wait for resizing to settle before redrawing",
			Value:       usecase.DefaultResizeDelay,
			Sources:     cli.EnvVars("BURNDOWN_RESIZE_DELAY"),
			Destination: &s.ResizeDelay,
		},
		&cli.BoolFlag{
			Name:        "no-minify",
			Usage:       "Serve the widget script without minification",
			Sources:     cli.EnvVars("BURNDOWN_NO_MINIFY"),
			Destination: &s.NoMinify,
		},
	}
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.Duration("resize_delay", s.ResizeDelay),
		slog.Bool("minify", !s.NoMinify),
	)
}
