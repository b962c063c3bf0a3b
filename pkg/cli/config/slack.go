package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/forage-labs/stitch/pkg/service/slack"
)

// Slack holds configuration for operational chat notifications
type Slack struct {
	botToken  string
	channelID string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack bot token for intent notifications",
			Sources:     cli.EnvVars("STITCH_SLACK_BOT_TOKEN"),
			Destination: &s.botToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel-id",
			Usage:       "Slack channel ID for intent notifications",
			Sources:     cli.EnvVars("STITCH_SLACK_CHANNEL_ID"),
			Destination: &s.channelID,
		},
	}
}

// ChannelID returns the notification channel
func (s *Slack) ChannelID() string {
	return s.channelID
}

// IsConfigured reports whether chat notifications can be enabled
func (s *Slack) IsConfigured() bool {
	return s.botToken != "" && s.channelID != ""
}

// Configure creates the chat service. Returns nil if not configured.
func (s *Slack) Configure() (slack.Service, error) {
	if !s.IsConfigured() {
		return nil, nil
	}

	svc, err := slack.New(s.botToken)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create slack client")
	}
	return svc, nil
}
