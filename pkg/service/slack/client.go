package slack

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// Service provides interface to Slack for operations notifications
type Service interface {
	// PostMessage posts a plain text message to a channel and returns
	// the message timestamp
	PostMessage(ctx context.Context, channelID string, text string) (string, error)
}

// client implements Service interface
type client struct {
	api *slack.Client
}

// New creates a new Slack service with the provided bot token
func New(token string) (Service, error) {
	if token == "" {
		return nil, goerr.New("Slack bot token is required")
	}

	return &client{
		api: slack.New(token),
	}, nil
}

// PostMessage posts a plain text message to a channel
func (c *client) PostMessage(ctx context.Context, channelID string, text string) (string, error) {
	_, ts, err := c.api.PostMessageContext(ctx, channelID,
		slack.MsgOptionText(text, false),
	)
	if err != nil {
		return "", goerr.Wrap(err, "failed to post message", goerr.V("channel_id", channelID))
	}

	return ts, nil
}
