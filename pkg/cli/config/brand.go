package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/forage-labs/stitch/pkg/domain/model"
)

// Brand holds configuration for the brand profile
type Brand struct {
	path string
}

// Flags returns CLI flags for brand profile configuration
func (b *Brand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "brand-profile",
			Usage:       "Path to a TOML brand profile (omit for the built-in profile)",
			Sources:     cli.EnvVars("STITCH_BRAND_PROFILE"),
			Destination: &b.path,
		},
	}
}

// Configure loads the brand profile. Fields absent from the file keep
// their built-in defaults so a partial profile stays valid.
func (b *Brand) Configure() (*model.BrandProfile, error) {
	profile := model.DefaultBrandProfile()
	if b.path == "" {
		return profile, nil
	}

	data, err := os.ReadFile(b.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read brand profile", goerr.V("path", b.path))
	}

	if err := toml.Unmarshal(data, profile); err != nil {
		return nil, goerr.Wrap(err, "failed to parse brand profile", goerr.V("path", b.path))
	}

	if err := profile.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid brand profile", goerr.V("path", b.path))
	}

	return profile, nil
}
