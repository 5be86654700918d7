package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/burndown/pkg/cli/config"
	"github.com/secmon-lab/burndown/pkg/domain/interfaces"
	"github.com/secmon-lab/burndown/pkg/domain/model"
	"github.com/secmon-lab/burndown/pkg/domain/types"
	"github.com/secmon-lab/burndown/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdRender() *cli.Command {
	var (
		upstreamCfg config.Upstream
		styleCfg    config.Style
		slackCfg    config.Slack

		milestone       string
		metric          string
		approxStartDate string
		output          string
		width, height   int
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "milestone",
				Aliases:     []string{"m"},
				Usage:       "Milestone to draw",
				Required:    true,
				Destination: &milestone,
			},
			&cli.StringFlag{
				Name:        "metric",
				Usage:       "Effort metric (tickets, hours, points; default: server setting)",
				Destination: &metric,
			},
			&cli.StringFlag{
				Name:        "approx-start-date",
				Usage:       "Approximate milestone start date (yyyy-mm-dd) for milestones without one",
				Destination: &approxStartDate,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output file; .png or .svg (empty: only publish)",
				Destination: &output,
			},
			&cli.IntFlag{
				Name:        "width",
				Usage:       "Image width in pixels (default: print size)",
				Destination: &width,
			},
			&cli.IntFlag{
				Name:        "height",
				Usage:       "Image height in pixels (default: print size)",
				Destination: &height,
			},
		},
		upstreamCfg.Flags(),
		styleCfg.Flags(),
		slackCfg.Flags(),
	)

	return &cli.Command{
		Name:  "render",
		Usage: "Render the print chart of a milestone to a file or Slack",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			id := types.MilestoneID(milestone)
			if err := id.Validate(); err != nil {
				return err
			}
			m, err := types.ParseMetric(metric)
			if err != nil {
				return err
			}
			if approxStartDate != "" {
				if err := model.ValidateDate(approxStartDate); err != nil {
					return goerr.Wrap(err, "invalid --approx-start-date")
				}
			}

			format, err := formatOf(output)
			if err != nil {
				return err
			}

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

			var publisher interfaces.SnapshotPublisher
			svc, err := slackCfg.Configure(logger)
			if err != nil {
				return err
			}
			if svc != nil {
				publisher = svc
			}
			if output == "" && publisher == nil {
				return goerr.New("nothing to do: set --output or the Slack flags")
			}

			snapshotter := usecase.NewSnapshotter(fetcher, usecase.NewRenderer(style), loc, publisher)
			snapshot, err := snapshotter.Take(ctx, id, format,
				usecase.WithMetric(m),
				usecase.WithApproxStartDate(approxStartDate),
				usecase.WithViewport(model.Viewport{Width: width, Height: height}),
			)
			if err != nil {
				return err
			}

			if output != "" {
				if err := os.WriteFile(output, snapshot.Data, 0644); err != nil {
					return goerr.Wrap(err, "failed to write chart", goerr.V("path", output))
				}
				logger.Info("Chart written", slog.String("path", output), slog.Int("bytes", len(snapshot.Data)))
			}

			if publisher != nil {
				if err := snapshotter.Publish(ctx, snapshot); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
