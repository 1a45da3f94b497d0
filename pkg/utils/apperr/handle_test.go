package apperr_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/surveyor/pkg/domain/model"
	"github.com/secmon-lab/surveyor/pkg/utils/apperr"
)

func TestNotice(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil", err: nil, expected: ""},
		{name: "auth absent", err: goerr.Wrap(model.ErrAuthAbsent, "survey entry denied"), expected: "Please log in first."},
		{name: "rejected", err: goerr.Wrap(model.ErrSubmissionRejected, "failed"), expected: "Your answer could not be recorded. Please try again."},
		{name: "aggregate", err: goerr.Wrap(model.ErrAggregateFetchFailed, "failed"), expected: "Survey results are unavailable right now."},
		{name: "cancelled", err: goerr.Wrap(context.Canceled, "abandoned"), expected: "The request was cancelled."},
		{name: "unknown", err: errors.New("boom"), expected: "Something went wrong."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, apperr.Notice(tc.err), tc.expected)
		})
	}
}

func TestHandle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := ctxlog.With(context.Background(), logger)

	apperr.Handle(ctx, goerr.Wrap(model.ErrSubmissionRejected, "failed"))
	gt.S(t, buf.String()).Contains(`"level":"WARN"`)

	buf.Reset()
	apperr.Handle(ctx, errors.New("disk full"))
	gt.S(t, buf.String()).Contains(`"level":"ERROR"`)
	gt.S(t, buf.String()).Contains("application error")

	buf.Reset()
	apperr.Handle(ctx, nil)
	gt.Equal(t, buf.Len(), 0)
}
