package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/surveyor/pkg/domain/interfaces"
	"github.com/secmon-lab/surveyor/pkg/domain/model"
	"github.com/secmon-lab/surveyor/pkg/domain/types"
)

// TrackerOption is a functional option for configuring Tracker
type TrackerOption func(*Tracker)

// WithClock sets the time source used to compute counter expiry
func WithClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) {
		t.now = now
	}
}

// WithRetention overrides how long written counters stay valid
func WithRetention(d time.Duration) TrackerOption {
	return func(t *Tracker) {
		t.retention = d
	}
}

// Tracker owns the survey progress counters and the entry gate
type Tracker struct {
	store     interfaces.StateStore
	now       func() time.Time
	retention time.Duration
}

// NewTracker creates a new Tracker backed by store
func NewTracker(store interfaces.StateStore, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		store:     store,
		now:       time.Now,
		retention: model.ProgressRetention,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SessionToken returns the stored session token. An absent token is
// returned as an empty token without error.
func (t *Tracker) SessionToken(ctx context.Context) (types.SessionToken, error) {
	entry, err := t.store.Get(ctx, types.StateKeySessionID)
	if err != nil {
		if errors.Is(err, model.ErrStateNotFound) {
			return "", nil
		}
		return "", goerr.Wrap(err, "failed to read session token")
	}
	return types.SessionToken(entry.Value), nil
}

// StoreSessionToken records the token the way the login flow would
func (t *Tracker) StoreSessionToken(ctx context.Context, token types.SessionToken) error {
	if token.IsEmpty() {
		return goerr.New("session token is empty")
	}
	if err := t.store.Put(ctx, model.StateEntry{
		Key:   types.StateKeySessionID,
		Value: token.String(),
	}); err != nil {
		return goerr.Wrap(err, "failed to store session token")
	}
	return nil
}

// CanEnterSurvey reports whether a non-empty session token is present
func (t *Tracker) CanEnterSurvey(ctx context.Context) bool {
	token, err := t.SessionToken(ctx)
	if err != nil {
		ctxlog.From(ctx).Warn("failed to read session token, denying survey entry", "error", err)
		return false
	}
	return !token.IsEmpty()
}

// EnterSurvey gates survey entry. It returns ErrAuthAbsent when the user is
// not logged in, the dashboard route when the survey is already finished,
// and the survey route otherwise.
func (t *Tracker) EnterSurvey(ctx context.Context) (types.Route, error) {
	if !t.CanEnterSurvey(ctx) {
		return "", goerr.Wrap(model.ErrAuthAbsent, "survey entry denied")
	}

	progress, err := t.ReadProgress(ctx)
	if err != nil {
		return "", err
	}
	return t.NextRoute(progress), nil
}

// ReadProgress parses the persisted counters. Missing, empty, expired and
// malformed counters read as 0. A pair that disagrees is resynced to the
// index, which is the counter that drives termination.
func (t *Tracker) ReadProgress(ctx context.Context) (model.Progress, error) {
	logger := ctxlog.From(ctx)

	index, err := t.readCounter(ctx, types.StateKeyQuestionIndex)
	if err != nil {
		return model.Progress{}, err
	}
	number, err := t.readCounter(ctx, types.StateKeyCurrentQuestion)
	if err != nil {
		return model.Progress{}, err
	}

	progress := model.Progress{Index: index, Number: number}
	if !progress.IsSynchronized() {
		logger.Warn("progress counters disagree, resyncing to index",
			"question_index", index,
			"question_number", number,
		)
		progress.Number = progress.Index
	}
	return progress, nil
}

func (t *Tracker) readCounter(ctx context.Context, key types.StateKey) (int, error) {
	entry, err := t.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, model.ErrStateNotFound) {
			return 0, nil
		}
		return 0, goerr.Wrap(err, "failed to read progress counter", goerr.V("key", key))
	}

	n, ok := model.ParseCounter(entry.Value)
	if !ok {
		ctxlog.From(ctx).Warn("malformed progress counter, treating as 0",
			"key", key,
			"value", entry.Value,
		)
	}
	return n, nil
}

// AdvanceProgress returns current advanced by one and persists both
// counters in a single write
func (t *Tracker) AdvanceProgress(ctx context.Context, current model.Progress) (model.Progress, error) {
	next := current.Advance()
	expiresAt := t.now().Add(t.retention)

	if err := t.store.Put(ctx, next.Entries(expiresAt)...); err != nil {
		return current, goerr.Wrap(err, "failed to persist progress",
			goerr.V("question_index", next.Index),
			goerr.V("question_number", next.Number),
		)
	}

	ctxlog.From(ctx).Debug("progress advanced",
		"question_index", next.Index,
		"question_number", next.Number,
		"expires_at", expiresAt,
	)
	return next, nil
}

// NextRoute decides where to go after progress p
func (t *Tracker) NextRoute(p model.Progress) types.Route {
	if p.IsFinished() {
		return types.RouteDashboard
	}
	return types.RouteSurvey
}

// Load returns the session token and progress as one value
func (t *Tracker) Load(ctx context.Context) (*model.SurveySession, error) {
	token, err := t.SessionToken(ctx)
	if err != nil {
		return nil, err
	}
	progress, err := t.ReadProgress(ctx)
	if err != nil {
		return nil, err
	}
	return &model.SurveySession{
		Token:    token,
		Progress: progress,
	}, nil
}

// Reset clears both counters. With logout the session token is cleared too.
func (t *Tracker) Reset(ctx context.Context, logout bool) error {
	keys := []types.StateKey{types.StateKeyQuestionIndex, types.StateKeyCurrentQuestion}
	if logout {
		keys = append(keys, types.StateKeySessionID)
	}

	if err := t.store.Delete(ctx, keys...); err != nil {
		return goerr.Wrap(err, "failed to reset client state", goerr.V("logout", logout))
	}
	return nil
}
