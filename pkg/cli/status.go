package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/secmon-lab/surveyor/pkg/cli/config"
	"github.com/secmon-lab/surveyor/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

func cmdStatus(stateCfg *config.State, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show login state and survey progress",
		Action: func(ctx context.Context, c *cli.Command) error {
			store, tracker, err := openState(ctx, stateCfg)
			if err != nil {
				return err
			}
			defer store.Close()

			session, err := tracker.Load(ctx)
			if err != nil {
				return err
			}

			loggedIn := "no"
			if session.IsLoggedIn() {
				loggedIn = "yes"
			}

			answered := session.Progress.Index
			if session.Progress.IsFinished() {
				answered = model.QuestionCount
			}

			writeln(out, "Logged in:", loggedIn)
			writeln(out, fmt.Sprintf("Answered:  %d/%d", answered, model.QuestionCount))
			if session.IsLoggedIn() {
				writeln(out, "Next:     ", tracker.NextRoute(session.Progress))
			}
			return nil
		},
	}
}
