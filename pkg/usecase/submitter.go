package usecase

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/surveyor/pkg/domain/interfaces"
	"github.com/secmon-lab/surveyor/pkg/domain/model"
	"github.com/secmon-lab/surveyor/pkg/domain/types"
)

// answerControlPrefix is the identifier prefix of every answer control
const answerControlPrefix = "answer"

// AnswerControl returns the control identifier for a zero-based option
func AnswerControl(option int) string {
	return answerControlPrefix + "-" + strconv.Itoa(option)
}

// ParseAnswerControl extracts the option id from an "answer-<id>" control.
// The id is the segment after the first '-' up to any following '-', and
// must be an integer in [0, AnswerCount).
func ParseAnswerControl(control string) (types.OptionID, error) {
	prefix, rest, found := strings.Cut(strings.TrimSpace(control), "-")
	if !found || prefix != answerControlPrefix {
		return "", goerr.Wrap(model.ErrInvalidAnswerControl, "unexpected control identifier",
			goerr.V("control", control))
	}

	segment, _, _ := strings.Cut(rest, "-")
	n, err := strconv.Atoi(segment)
	if err != nil || n < 0 || n >= model.AnswerCount {
		return "", goerr.Wrap(model.ErrInvalidAnswerControl, "option id out of range",
			goerr.V("control", control),
			goerr.V("segment", segment),
		)
	}
	return types.OptionID(strconv.Itoa(n)), nil
}

// Submitter runs the submit-advance-navigate cycle of one question screen.
// At most one submission is in flight; after the round advanced every
// further submit is refused.
type Submitter struct {
	tracker   *Tracker
	api       interfaces.SurveyAPI
	navigator interfaces.Navigator

	mu    sync.Mutex
	state model.SubmissionState
}

// NewSubmitter creates a Submitter for a fresh question screen
func NewSubmitter(tracker *Tracker, api interfaces.SurveyAPI, navigator interfaces.Navigator) *Submitter {
	return &Submitter{
		tracker:   tracker,
		api:       api,
		navigator: navigator,
		state:     model.SubmissionAwaitingClick,
	}
}

// State returns the current submission state
func (s *Submitter) State() model.SubmissionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Submitter) setState(state model.SubmissionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

// begin claims the in-flight slot
func (s *Submitter) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case model.SubmissionSubmitting:
		return goerr.Wrap(model.ErrSubmissionInFlight, "answer ignored")
	case model.SubmissionAdvanced:
		return goerr.Wrap(model.ErrRoundComplete, "answer ignored")
	}
	s.state = model.SubmissionSubmitting
	return nil
}

// Submit handles one activation of the answer control
func (s *Submitter) Submit(ctx context.Context, control string) (*model.Outcome, error) {
	option, err := ParseAnswerControl(control)
	if err != nil {
		return nil, err
	}

	if err := s.begin(); err != nil {
		return nil, err
	}

	roundID := types.NewRoundID()
	logger := ctxlog.From(ctx).With("round_id", roundID, "option", option)
	ctx = ctxlog.With(ctx, logger)

	pre, err := s.tracker.ReadProgress(ctx)
	if err != nil {
		s.setState(model.SubmissionAwaitingClick)
		return nil, err
	}
	if pre.IsFinished() {
		s.setState(model.SubmissionAwaitingClick)
		return nil, goerr.Wrap(model.ErrRoundComplete, "survey already finished",
			goerr.V("question_index", pre.Index),
		)
	}

	outcome := &model.Outcome{
		RoundID:  roundID,
		Option:   option,
		Progress: pre,
	}

	logger.Debug("submitting response", "question_index", pre.Index)
	ack, err := s.api.RecordResponse(ctx, option)

	// The screen was left while the request was outstanding
	if ctxErr := ctx.Err(); ctxErr != nil {
		s.setState(model.SubmissionAwaitingClick)
		logger.Debug("submission abandoned", "error", ctxErr)
		return nil, goerr.Wrap(ctxErr, "submission abandoned", goerr.V("round_id", roundID))
	}

	if err != nil || ack == nil || !ack.Accepted {
		s.setState(model.SubmissionRejected)
		outcome.State = model.SubmissionRejected
		outcome.Ack = ack

		logger.Warn("response was not acknowledged", "error", err, "ack", ack)
		return outcome, goerr.Wrap(model.ErrSubmissionRejected, "failed to record response",
			goerr.V("round_id", roundID),
			goerr.V("option", option),
			goerr.V("ack", ack),
			goerr.V("cause", err),
		)
	}

	next, err := s.tracker.AdvanceProgress(ctx, pre)
	if err != nil {
		s.setState(model.SubmissionRejected)
		outcome.State = model.SubmissionRejected
		outcome.Ack = ack
		return outcome, err
	}

	s.setState(model.SubmissionAdvanced)
	route := s.tracker.NextRoute(next)
	outcome.State = model.SubmissionAdvanced
	outcome.Progress = next
	outcome.Route = route
	outcome.Ack = ack

	logger.Info("response recorded",
		"question_index", next.Index,
		"route", route,
	)

	if err := s.navigator.Navigate(ctx, route); err != nil {
		return outcome, goerr.Wrap(err, "failed to navigate", goerr.V("route", route))
	}
	return outcome, nil
}
