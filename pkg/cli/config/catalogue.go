package config

import (
	"github.com/secmon-lab/atelier/pkg/service/catalogue"
	"github.com/urfave/cli/v3"
)

// Catalogue holds CLI flags for the technique catalogue fetcher
type Catalogue struct {
	url       string
	delimiter string
}

// Flags returns CLI flags for catalogue configuration
func (c *Catalogue) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalogue-url",
			Usage:       "URL of the technique catalogue document (loaded at startup when set)",
			Sources:     cli.EnvVars("ATELIER_CATALOGUE_URL"),
			Destination: &c.url,
		},
		&cli.StringFlag{
			Name:        "catalogue-delimiter",
			Usage:       "Field delimiter of the catalogue document",
			Value:       ";",
			Sources:     cli.EnvVars("ATELIER_CATALOGUE_DELIMITER"),
			Destination: &c.delimiter,
		},
	}
}

// URL returns the configured catalogue URL, empty when not set
func (c *Catalogue) URL() string {
	return c.url
}

// Configure builds the catalogue fetcher
func (c *Catalogue) Configure() *catalogue.Fetcher {
	return catalogue.NewFetcher(catalogue.WithDelimiter(c.delimiter))
}
