package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/surveyor/pkg/domain/interfaces"
	"github.com/secmon-lab/surveyor/pkg/domain/model"
	"github.com/secmon-lab/surveyor/pkg/domain/types"
	"github.com/secmon-lab/surveyor/pkg/utils/apperr"
)

// DefaultMaxRetries bounds how often a rejected answer is asked again
const DefaultMaxRetries = 3

// SurveyOption is a functional option for configuring Survey
type SurveyOption func(*Survey)

// WithMaxRetries sets how many times a rejected submission is retried
// before the survey gives up
func WithMaxRetries(n int) SurveyOption {
	return func(s *Survey) {
		if n >= 0 {
			s.maxRetries = n
		}
	}
}

// Survey drives the question loop: gate entry, one Submitter per
// question screen, until the tracker routes to the dashboard
type Survey struct {
	tracker    *Tracker
	api        interfaces.SurveyAPI
	navigator  interfaces.Navigator
	prompter   Prompter
	maxRetries int
}

// NewSurvey creates a new Survey
func NewSurvey(tracker *Tracker, api interfaces.SurveyAPI, navigator interfaces.Navigator, prompter Prompter, opts ...SurveyOption) *Survey {
	s := &Survey{
		tracker:    tracker,
		api:        api,
		navigator:  navigator,
		prompter:   prompter,
		maxRetries: DefaultMaxRetries,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run walks the remaining questions and returns the final route. An
// ErrAuthAbsent error means the caller must show the login notice.
func (s *Survey) Run(ctx context.Context) (types.Route, error) {
	logger := ctxlog.From(ctx)

	route, err := s.tracker.EnterSurvey(ctx)
	if err != nil {
		return "", err
	}
	if err := s.navigator.Navigate(ctx, route); err != nil {
		return "", goerr.Wrap(err, "failed to navigate", goerr.V("route", route))
	}

	for route == types.RouteSurvey {
		progress, err := s.tracker.ReadProgress(ctx)
		if err != nil {
			return "", err
		}
		question, ok := model.QuestionAt(progress.Index)
		if !ok {
			return types.RouteDashboard, nil
		}

		logger.Debug("question screen", "question", question.Number)
		next, err := s.answer(ctx, question)
		if err != nil {
			return "", err
		}
		route = next
	}

	return route, nil
}

// answer runs one question screen until the round advances
func (s *Survey) answer(ctx context.Context, question *model.Question) (types.Route, error) {
	submitter := NewSubmitter(s.tracker, s.api, s.navigator)
	rejected := 0

	for {
		control, err := s.prompter.Ask(ctx, question)
		if err != nil {
			return "", goerr.Wrap(err, "failed to read answer", goerr.V("question", question.Number))
		}

		outcome, err := submitter.Submit(ctx, control)
		switch {
		case err == nil:
			return outcome.Route, nil

		case errors.Is(err, model.ErrInvalidAnswerControl):
			s.prompter.Notice(ctx, apperr.Notice(err))

		case errors.Is(err, model.ErrSubmissionRejected):
			rejected++
			if rejected > s.maxRetries {
				return "", goerr.Wrap(err, "giving up after rejected submissions",
					goerr.V("question", question.Number),
					goerr.V("attempts", rejected),
				)
			}
			s.prompter.Notice(ctx, apperr.Notice(err))

		default:
			return "", err
		}
	}
}
