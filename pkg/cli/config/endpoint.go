package config

import (
	"log/slog"
	"time"

	"github.com/secmon-lab/surveyor/pkg/domain/interfaces"
	"github.com/secmon-lab/surveyor/pkg/service/api"
	"github.com/urfave/cli/v3"
)

// Endpoint holds survey backend configuration
type Endpoint struct {
	BaseURL string
	Timeout time.Duration
}

// Flags returns CLI flags for Endpoint configuration
func (e *Endpoint) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "base-url",
			Usage:       "Base URL of the survey server",
			Category:    "Server",
			Value:       "http://localhost:8080",
			Sources:     cli.EnvVars("SURVEYOR_BASE_URL"),
			Destination: &e.BaseURL,
		},
		&cli.DurationFlag{
			Name:        "request-timeout",
			Usage:       "Timeout of a single request to the survey server",
			Category:    "Server",
			Value:       api.DefaultTimeout,
			Sources:     cli.EnvVars("SURVEYOR_REQUEST_TIMEOUT"),
			Destination: &e.Timeout,
		},
	}
}

// Configure creates the survey API client
func (e *Endpoint) Configure(store interfaces.StateStore) (*api.Client, error) {
	return api.New(e.BaseURL, store, api.WithTimeout(e.Timeout))
}

// LogValue returns structured log value
func (e Endpoint) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base_url", e.BaseURL),
		slog.Duration("timeout", e.Timeout),
	)
}
