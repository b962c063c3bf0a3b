package mailgun

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mailgun/mailgun-go/v4"
)

// Service provides interface to the transactional email provider
type Service interface {
	// Send delivers one plaintext email. No retries.
	Send(ctx context.Context, msg Message) error
}

// Message is one outbound plaintext email
type Message struct {
	From    string
	To      string
	Subject string
	Text    string
}

// client implements Service interface
type client struct {
	mg mailgun.Mailgun
}

// Option is a functional option for client configuration
type Option func(*client)

// WithEU switches to the EU API endpoint
func WithEU() Option {
	return func(c *client) {
		c.mg.SetAPIBase(mailgun.APIBaseEU)
	}
}

// New creates a new Mailgun service for the given sending domain
func New(domain, apiKey string, opts ...Option) (Service, error) {
	if domain == "" {
		return nil, goerr.New("Mailgun domain is required")
	}
	if apiKey == "" {
		return nil, goerr.New("Mailgun API key is required")
	}

	c := &client{
		mg: mailgun.NewMailgun(domain, apiKey),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Send delivers one plaintext email via the Mailgun messages endpoint
func (c *client) Send(ctx context.Context, msg Message) error {
	m := c.mg.NewMessage(msg.From, msg.Subject, msg.Text, msg.To)

	if _, _, err := c.mg.Send(ctx, m); err != nil {
		return goerr.Wrap(err, "failed to send email",
			goerr.V("to", msg.To),
			goerr.V("subject", msg.Subject),
		)
	}

	return nil
}
