package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// Dashboard holds chart output configuration
type Dashboard struct {
	ChartDir    string
	PreviewAddr string
}

// Flags returns CLI flags for Dashboard configuration
func (d *Dashboard) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "chart-dir",
			Usage:       "Directory to write chart PNG files into",
			Category:    "Dashboard",
			Sources:     cli.EnvVars("SURVEYOR_CHART_DIR"),
			Destination: &d.ChartDir,
		},
		&cli.StringFlag{
			Name:        "preview-addr",
			Usage:       "Serve an HTML dashboard on this address (e.g. 127.0.0.1:8081)",
			Category:    "Dashboard",
			Sources:     cli.EnvVars("SURVEYOR_PREVIEW_ADDR"),
			Destination: &d.PreviewAddr,
		},
	}
}

// LogValue returns structured log value
func (d Dashboard) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("chart_dir", d.ChartDir),
		slog.String("preview_addr", d.PreviewAddr),
	)
}
