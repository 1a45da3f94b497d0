package apperr

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/surveyor/pkg/domain/model"
)

// Notice returns the participant-facing message for err
func Notice(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, model.ErrAuthAbsent):
		return "Please log in first."
	case errors.Is(err, model.ErrInvalidAnswerControl):
		return "Please choose one of the listed answers."
	case errors.Is(err, model.ErrSubmissionRejected):
		return "Your answer could not be recorded. Please try again."
	case errors.Is(err, model.ErrSubmissionInFlight):
		return "Your previous answer is still being sent."
	case errors.Is(err, model.ErrAggregateFetchFailed):
		return "Survey results are unavailable right now."
	case errors.Is(err, model.ErrChartRenderFailed):
		return "Survey results could not be drawn."
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "The request was cancelled."
	default:
		return "Something went wrong."
	}
}

// IsExpected reports whether err is a survey outcome the participant can
// act on, as opposed to a failure of the client itself
func IsExpected(err error) bool {
	return errors.Is(err, model.ErrAuthAbsent) ||
		errors.Is(err, model.ErrInvalidAnswerControl) ||
		errors.Is(err, model.ErrSubmissionRejected) ||
		errors.Is(err, model.ErrSubmissionInFlight) ||
		errors.Is(err, model.ErrRoundComplete) ||
		errors.Is(err, model.ErrAggregateFetchFailed)
}

// Handle logs err. Expected survey outcomes are logged at warn level.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	if IsExpected(err) {
		logger.Warn(Notice(err), "error", err)
		return
	}
	logger.Error("application error", "error", err)
}
