package config

import (
	"log/slog"

	"github.com/secmon-lab/burndown/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack configuration
type Slack struct {
	OAuthToken string
	Channel    string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for uploading snapshots (needs files:write)",
			Category:    "Slack",
			Sources:     cli.EnvVars("BURNDOWN_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID snapshots are posted to",
			Category:    "Slack",
			Sources:     cli.EnvVars("BURNDOWN_SLACK_CHANNEL"),
			Destination: &s.Channel,
		},
	}
}

// Configure creates a snapshot publisher, or returns nil when Slack is not
// configured
func (s *Slack) Configure(logger *slog.Logger) (*slack.Service, error) {
	if !s.IsConfigured() {
		logger.Debug("Slack not configured - snapshots will not be published")
		return nil, nil
	}

	logger.Info("Configuring Slack snapshot publisher", slog.String("channel", s.Channel))
	return slack.New(s.OAuthToken, s.Channel)
}

// IsConfigured checks if both the token and the channel are set
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.Channel != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.Channel),
	)
}
