package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/burndown/pkg/cli/config"
	controller "github.com/secmon-lab/burndown/pkg/controller/http"
	"github.com/secmon-lab/burndown/pkg/repository"
	"github.com/secmon-lab/burndown/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg   config.Server
		upstreamCfg config.Upstream
		styleCfg    config.Style
	)

	flags := joinFlags(
		serverCfg.Flags(),
		upstreamCfg.Flags(),
		styleCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting burndown server",
				slog.Any("server", serverCfg),
				slog.Any("upstream", upstreamCfg),
				slog.Any("style", styleCfg),
			)

			fetcher, err := upstreamCfg.Configure()
			if err != nil {
				return err
			}
			loc, err := upstreamCfg.Location()
			if err != nil {
				return err
			}
			style, err := styleCfg.Configure()
			if err != nil {
				return err
			}

			sessions := repository.NewMemory()

			server, err := controller.NewServer(
				ctx,
				serverCfg.Addr,
				fetcher,
				usecase.NewRenderer(style),
				sessions,
				controller.WithServerLocation(loc),
				controller.WithServerResizeDelay(serverCfg.ResizeDelay),
				controller.WithTracURL(upstreamCfg.TracURL),
				controller.WithMinify(!serverCfg.NoMinify),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(ctxlog.With(context.Background(), logger), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete", slog.Int("open_sessions", sessions.Count()))
			return nil
		},
	}
}
