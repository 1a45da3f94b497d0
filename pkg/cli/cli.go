package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/surveyor/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application on the process's standard streams
func Run(ctx context.Context, args []string) error {
	return RunWithIO(ctx, args, os.Stdin, os.Stdout)
}

// RunWithIO runs the CLI application reading answers from in and writing
// the survey screen to out
func RunWithIO(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	var (
		loggerCfg config.Logger
		stateCfg  config.State
	)

	app := &cli.Command{
		Name:    "surveyor",
		Usage:   "Take the survey and view its aggregated results",
		Version: "0.1.0",
		Flags: joinFlags(
			loggerCfg.Flags(),
			stateCfg.Flags(),
		),
		Writer: out,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Configure logger
			logger, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdTake(&stateCfg, in, out),
			cmdDashboard(&stateCfg, out),
			cmdStatus(&stateCfg, out),
			cmdReset(&stateCfg, out),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}
