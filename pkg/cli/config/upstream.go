package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/burndown/pkg/service/trac"
	"github.com/urfave/cli/v3"
)

// Upstream holds the configuration of the Trac server burndown data comes from
type Upstream struct {
	TracURL        string
	Timeout        time.Duration
	LegacyEndpoint bool
	Timezone       string
}

// Flags returns CLI flags for Upstream configuration
func (u *Upstream) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "trac-url",
			Usage:       "Base URL of the Trac project serving burndown data",
			Category:    "Upstream",
			Required:    true,
			Sources:     cli.EnvVars("BURNDOWN_TRAC_URL"),
			Destination: &u.TracURL,
		},
		&cli.DurationFlag{
			Name:        "trac-timeout",
			Usage:       "Timeout of a burndown data request",
			Category:    "Upstream",
			Value:       trac.DefaultTimeout,
			Sources:     cli.EnvVars("BURNDOWN_TRAC_TIMEOUT"),
			Destination: &u.Timeout,
		},
		&cli.BoolFlag{
			Name:        "legacy-endpoint",
			Usage:       "Use the /ajax/burndown/ endpoint of older plugin versions",
			Category:    "Upstream",
			Sources:     cli.EnvVars("BURNDOWN_LEGACY_ENDPOINT"),
			Destination: &u.LegacyEndpoint,
		},
		&cli.StringFlag{
			Name:        "timezone",
			Usage:       "IANA time zone burndown dates are interpreted in (default: local)",
			Category:    "Upstream",
			Sources:     cli.EnvVars("BURNDOWN_TIMEZONE"),
			Destination: &u.Timezone,
		},
	}
}

// Configure creates the burndown data client
func (u *Upstream) Configure() (*trac.Client, error) {
	if u.Timeout <= 0 {
		return nil, goerr.New("trac timeout must be positive", goerr.V("timeout", u.Timeout))
	}
	return trac.New(u.TracURL,
		trac.WithTimeout(u.Timeout),
		trac.WithLegacyEndpoint(u.LegacyEndpoint),
	)
}

// Location returns the configured time zone
func (u *Upstream) Location() (*time.Location, error) {
	if u.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(u.Timezone)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid timezone", goerr.V("timezone", u.Timezone))
	}
	return loc, nil
}

// LogValue returns structured log value
func (u Upstream) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("trac_url", u.TracURL),
		slog.Duration("timeout", u.Timeout),
		slog.Bool("legacy_endpoint", u.LegacyEndpoint),
		slog.String("timezone", u.Timezone),
	)
}
