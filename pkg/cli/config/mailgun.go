package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/forage-labs/stitch/pkg/service/mailgun"
)

// Mailgun holds configuration for outbound mail
type Mailgun struct {
	domain string
	apiKey string
	eu     bool
}

// Flags returns CLI flags for Mailgun configuration
func (m *Mailgun) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "mailgun-domain",
			Usage:       "Mailgun sending domain",
			Sources:     cli.EnvVars("STITCH_MAILGUN_DOMAIN"),
			Destination: &m.domain,
		},
		&cli.StringFlag{
			Name:        "mailgun-api-key",
			Usage:       "Mailgun API key",
			Sources:     cli.EnvVars("STITCH_MAILGUN_API_KEY"),
			Destination: &m.apiKey,
		},
		&cli.BoolFlag{
			Name:        "mailgun-eu",
			Usage:       "Use the Mailgun EU region endpoint",
			Value:       true,
			Sources:     cli.EnvVars("STITCH_MAILGUN_EU"),
			Destination: &m.eu,
		},
	}
}

// IsConfigured reports whether mail sending can be enabled
func (m *Mailgun) IsConfigured() bool {
	return m.domain != "" && m.apiKey != ""
}

// Configure creates the mail service. Returns nil if not configured;
// mail side effects are then disabled.
func (m *Mailgun) Configure() (mailgun.Service, error) {
	if !m.IsConfigured() {
		return nil, nil
	}

	var opts []mailgun.Option
	if m.eu {
		opts = append(opts, mailgun.WithEU())
	}

	svc, err := mailgun.New(m.domain, m.apiKey, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create mailgun client")
	}
	return svc, nil
}
