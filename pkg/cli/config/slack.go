package config

import (
	"log/slog"

	"github.com/secmon-lab/argus/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds CLI flags for Slack notification configuration
type Slack struct {
	botToken  string
	channelID string
}

// Flags returns CLI flags for Slack configuration
func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack Bot User OAuth Token (for critical risk alerts)",
			Category:    "Slack",
			Sources:     cli.EnvVars("ARGUS_SLACK_BOT_TOKEN"),
			Destination: &x.botToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel-id",
			Usage:       "Slack channel ID for risk alert notifications",
			Category:    "Slack",
			Sources:     cli.EnvVars("ARGUS_SLACK_CHANNEL_ID"),
			Destination: &x.channelID,
		},
	}
}

func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("bot-token.len", len(x.botToken)),
		slog.String("channel-id", x.channelID),
	)
}

// IsConfigured reports whether Slack notification is enabled
func (x *Slack) IsConfigured() bool {
	return x.botToken != "" && x.channelID != ""
}

// Configure builds the Slack service, or returns nil when not configured
func (x *Slack) Configure() (slack.Service, error) {
	if !x.IsConfigured() {
		return nil, nil
	}
	return slack.New(x.botToken, x.channelID)
}
