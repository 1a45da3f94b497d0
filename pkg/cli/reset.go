package cli

import (
	"context"
	"io"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/surveyor/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func cmdReset(stateCfg *config.State, out io.Writer) *cli.Command {
	var logout bool

	return &cli.Command{
		Name:  "reset",
		Usage: "Clear survey progress",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "logout",
				Usage:       "Also clear the session token",
				Sources:     cli.EnvVars("SURVEYOR_LOGOUT"),
				Destination: &logout,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			store, tracker, err := openState(ctx, stateCfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := tracker.Reset(ctx, logout); err != nil {
				return err
			}

			ctxlog.From(ctx).Info("Client state reset", "logout", logout)
			if logout {
				writeln(out, "Progress cleared and logged out.")
			} else {
				writeln(out, "Progress cleared.")
			}
			return nil
		},
	}
}
