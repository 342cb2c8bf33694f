package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// App holds CLI flags for the application configuration file
type App struct {
	path string
}

// Flags returns CLI flags for application configuration
func (a *App) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to TOML display configuration (status and scale labels)",
			Sources:     cli.EnvVars("ATELIER_CONFIG"),
			Destination: &a.path,
		},
	}
}

// Configure loads and validates the display labels. Without a --config
// flag the built-in defaults are returned; a configured path must exist
// and validate.
func (a *App) Configure() (model.Labels, error) {
	if a.path == "" {
		return model.DefaultLabels(), nil
	}

	data, err := os.ReadFile(a.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.Labels{}, goerr.New("configuration file not found", goerr.V("path", a.path))
		}
		return model.Labels{}, goerr.Wrap(err, "failed to read configuration", goerr.V("path", a.path))
	}

	var labels model.Labels
	if err := toml.Unmarshal(data, &labels); err != nil {
		return model.Labels{}, goerr.Wrap(err, "failed to parse configuration", goerr.V("path", a.path))
	}
	if err := labels.Validate(); err != nil {
		return model.Labels{}, goerr.Wrap(err, "invalid configuration", goerr.V("path", a.path))
	}

	defaults := model.DefaultLabels()
	if len(labels.Statuses) == 0 {
		labels.Statuses = defaults.Statuses
	}
	if len(labels.Scale) == 0 {
		labels.Scale = defaults.Scale
	}
	return labels, nil
}
