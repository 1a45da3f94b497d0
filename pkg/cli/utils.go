package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/surveyor/pkg/cli/config"
	"github.com/secmon-lab/surveyor/pkg/domain/interfaces"
	"github.com/secmon-lab/surveyor/pkg/domain/types"
	"github.com/secmon-lab/surveyor/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}

// openState opens the state store and records --session-id the way the
// login flow would
func openState(ctx context.Context, stateCfg *config.State) (interfaces.StateStore, *usecase.Tracker, error) {
	store, err := stateCfg.Configure(ctx)
	if err != nil {
		return nil, nil, err
	}
	tracker := usecase.NewTracker(store)

	if stateCfg.SessionID != "" {
		if err := tracker.StoreSessionToken(ctx, types.SessionToken(stateCfg.SessionID)); err != nil {
			_ = store.Close()
			return nil, nil, err
		}
		ctxlog.From(ctx).Debug("Session token stored")
	}
	return store, tracker, nil
}

func writeln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}
