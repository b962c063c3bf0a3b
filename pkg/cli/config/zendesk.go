package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/forage-labs/stitch/pkg/service/zendesk"
)

// Zendesk holds configuration for the ticketing API client
type Zendesk struct {
	subdomain string
	email     string
	apiToken  string
}

// Flags returns CLI flags for Zendesk configuration
func (z *Zendesk) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "zendesk-subdomain",
			Usage:       "Zendesk subdomain (e.g. forage for forage.zendesk.com)",
			Sources:     cli.EnvVars("STITCH_ZENDESK_SUBDOMAIN"),
			Destination: &z.subdomain,
		},
		&cli.StringFlag{
			Name:        "zendesk-email",
			Usage:       "Zendesk agent email for API token auth",
			Sources:     cli.EnvVars("STITCH_ZENDESK_EMAIL"),
			Destination: &z.email,
		},
		&cli.StringFlag{
			Name:        "zendesk-api-token",
			Usage:       "Zendesk API token",
			Sources:     cli.EnvVars("STITCH_ZENDESK_API_TOKEN"),
			Destination: &z.apiToken,
		},
	}
}

// IsConfigured reports whether the ticketing API can be used
func (z *Zendesk) IsConfigured() bool {
	return z.subdomain != "" && z.email != "" && z.apiToken != ""
}

// Configure creates the ticketing service. Returns nil if not
// configured; requester lookup and internal notes are then disabled.
func (z *Zendesk) Configure() (zendesk.Service, error) {
	if !z.IsConfigured() {
		return nil, nil
	}

	svc, err := zendesk.New(z.subdomain, z.email, z.apiToken)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create zendesk client")
	}
	return svc, nil
}
