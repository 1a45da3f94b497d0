package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/surveyor/pkg/cli/config"
	"github.com/secmon-lab/surveyor/pkg/controller/terminal"
	"github.com/secmon-lab/surveyor/pkg/domain/model"
	"github.com/secmon-lab/surveyor/pkg/domain/types"
	"github.com/secmon-lab/surveyor/pkg/usecase"
	"github.com/secmon-lab/surveyor/pkg/utils/apperr"
	"github.com/urfave/cli/v3"
)

func cmdTake(stateCfg *config.State, in io.Reader, out io.Writer) *cli.Command {
	var (
		endpointCfg  config.Endpoint
		dashboardCfg config.Dashboard
		slackCfg     config.Slack
	)

	flags := joinFlags(
		endpointCfg.Flags(),
		dashboardCfg.Flags(),
		slackCfg.Flags(),
		[]cli.Flag{
			&cli.IntFlag{
				Name:    "max-retries",
				Usage:   "How often a rejected answer is asked again before giving up",
				Value:   usecase.DefaultMaxRetries,
				Sources: cli.EnvVars("SURVEYOR_MAX_RETRIES"),
			},
		},
	)

	return &cli.Command{
		Name:  "take",
		Usage: "Answer the survey questions, then show the results",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)
			logger.Info("Starting survey",
				slog.Any("state", *stateCfg),
				slog.Any("endpoint", endpointCfg),
			)

			store, tracker, err := openState(ctx, stateCfg)
			if err != nil {
				return err
			}
			defer store.Close()

			client, err := endpointCfg.Configure(store)
			if err != nil {
				return err
			}

			screen := terminal.NewScreen(in, out)
			survey := usecase.NewSurvey(tracker, client, screen, screen,
				usecase.WithMaxRetries(int(c.Int("max-retries"))),
			)

			route, err := survey.Run(ctx)
			if err != nil {
				if errors.Is(err, model.ErrAuthAbsent) {
					// Blocking notice; the survey is not entered
					screen.Notice(ctx, apperr.Notice(err))
					return nil
				}
				if errors.Is(err, model.ErrSubmissionRejected) {
					screen.Notice(ctx, apperr.Notice(err))
				}
				return err
			}

			if route != types.RouteDashboard {
				return nil
			}
			return renderDashboard(ctx, tracker, client, &dashboardCfg, &slackCfg, out)
		},
	}
}
