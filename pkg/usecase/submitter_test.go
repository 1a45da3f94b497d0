package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/surveyor/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/surveyor/pkg/domain/model"
	"github.com/secmon-lab/surveyor/pkg/domain/types"
	"github.com/secmon-lab/surveyor/pkg/repository"
	"github.com/secmon-lab/surveyor/pkg/usecase"
)

func acceptingAPI() *mocks.SurveyAPIMock {
	return &mocks.SurveyAPIMock{
		RecordResponseFunc: func(ctx context.Context, option types.OptionID) (*model.Ack, error) {
			ack := model.ParseAck(200, "true")
			return &ack, nil
		},
	}
}

func recordingNavigator() *mocks.NavigatorMock {
	return &mocks.NavigatorMock{
		NavigateFunc: func(ctx context.Context, route types.Route) error {
			return nil
		},
	}
}

func TestParseAnswerControl(t *testing.T) {
	testCases := []struct {
		control  string
		expected types.OptionID
		valid    bool
	}{
		{control: "answer-0", expected: "0", valid: true},
		{control: "answer-3", expected: "3", valid: true},
		{control: " answer-2 ", expected: "2", valid: true},
		{control: "answer-1-extra", expected: "1", valid: true},
		{control: "answer-4", valid: false},
		{control: "answer--1", valid: false},
		{control: "answer-", valid: false},
		{control: "answer", valid: false},
		{control: "answer-x", valid: false},
		{control: "button-1", valid: false},
		{control: "", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.control, func(t *testing.T) {
			option, err := usecase.ParseAnswerControl(tc.control)
			if tc.valid {
				gt.NoError(t, err).Required()
				gt.Equal(t, option, tc.expected)
			} else {
				gt.Error(t, err)
				gt.True(t, errors.Is(err, model.ErrInvalidAnswerControl))
			}
		})
	}

	gt.Equal(t, usecase.AnswerControl(2), "answer-2")
}

func TestSubmitter_AdvancesAndNavigates(t *testing.T) {
	for n := 0; n < model.QuestionCount; n++ {
		ctx := testContext()
		store := repository.NewMemory()
		tracker := usecase.NewTracker(store)
		gt.NoError(t, tracker.StoreSessionToken(ctx, "alice")).Required()
		gt.NoError(t, store.Put(ctx, model.Progress{Index: n, Number: n}.Entries(time.Now().Add(time.Hour))...)).Required()

		api := acceptingAPI()
		nav := recordingNavigator()
		submitter := usecase.NewSubmitter(tracker, api, nav)
		gt.Equal(t, submitter.State(), model.SubmissionAwaitingClick)

		outcome, err := submitter.Submit(ctx, "answer-1")
		gt.NoError(t, err).Required()

		expectedRoute := types.RouteSurvey
		if n+1 >= model.QuestionCount {
			expectedRoute = types.RouteDashboard
		}

		gt.Equal(t, outcome.State, model.SubmissionAdvanced)
		gt.Equal(t, outcome.Progress, model.Progress{Index: n + 1, Number: n + 1})
		gt.Equal(t, outcome.Route, expectedRoute)
		gt.Equal(t, outcome.Option, types.OptionID("1"))
		gt.NotEqual(t, outcome.RoundID, types.RoundID(""))
		gt.Equal(t, submitter.State(), model.SubmissionAdvanced)

		gt.A(t, api.RecordResponseCalls()).Length(1)
		gt.Equal(t, api.RecordResponseCalls()[0].Option, types.OptionID("1"))
		gt.A(t, nav.NavigateCalls()).Length(1)
		gt.Equal(t, nav.NavigateCalls()[0].Route, expectedRoute)

		stored, err := tracker.ReadProgress(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, stored.Index, n+1)
	}
}

func TestSubmitter_FirstAnswerWithoutCounters(t *testing.T) {
	ctx := testContext()
	tracker := usecase.NewTracker(repository.NewMemory())
	submitter := usecase.NewSubmitter(tracker, acceptingAPI(), recordingNavigator())

	outcome, err := submitter.Submit(ctx, "answer-0")
	gt.NoError(t, err).Required()
	gt.Equal(t, outcome.Progress, model.Progress{Index: 1, Number: 1})
	gt.Equal(t, outcome.Route, types.RouteSurvey)
}

func TestSubmitter_Rejected(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		body   string
		err    error
	}{
		{name: "false body", status: 200, body: "false"},
		{name: "empty body", status: 200, body: ""},
		{name: "other text", status: 200, body: "TRUE!"},
		{name: "server error", status: 500, body: "true"},
		{name: "transport failure", err: errors.New("connection refused")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := testContext()
			store := repository.NewMemory()
			tracker := usecase.NewTracker(store)
			gt.NoError(t, store.Put(ctx, model.Progress{Index: 2, Number: 2}.Entries(time.Now().Add(time.Hour))...)).Required()

			api := &mocks.SurveyAPIMock{
				RecordResponseFunc: func(ctx context.Context, option types.OptionID) (*model.Ack, error) {
					if tc.err != nil {
						return nil, tc.err
					}
					ack := model.ParseAck(tc.status, tc.body)
					return &ack, nil
				},
			}
			nav := recordingNavigator()
			submitter := usecase.NewSubmitter(tracker, api, nav)

			outcome, err := submitter.Submit(ctx, "answer-2")
			gt.Error(t, err)
			gt.True(t, errors.Is(err, model.ErrSubmissionRejected))
			gt.V(t, outcome).NotNil()
			gt.Equal(t, outcome.State, model.SubmissionRejected)
			gt.Equal(t, outcome.Route, types.Route(""))
			gt.Equal(t, submitter.State(), model.SubmissionRejected)

			// No navigation and counters unchanged
			gt.A(t, nav.NavigateCalls()).Length(0)
			stored, err := tracker.ReadProgress(ctx)
			gt.NoError(t, err).Required()
			gt.Equal(t, stored, model.Progress{Index: 2, Number: 2})
		})
	}
}

func TestSubmitter_RetryAfterRejected(t *testing.T) {
	ctx := testContext()
	tracker := usecase.NewTracker(repository.NewMemory())

	attempts := 0
	api := &mocks.SurveyAPIMock{
		RecordResponseFunc: func(ctx context.Context, option types.OptionID) (*model.Ack, error) {
			attempts++
			body := "false"
			if attempts > 1 {
				body = "true"
			}
			ack := model.ParseAck(200, body)
			return &ack, nil
		},
	}
	submitter := usecase.NewSubmitter(tracker, api, recordingNavigator())

	_, err := submitter.Submit(ctx, "answer-3")
	gt.True(t, errors.Is(err, model.ErrSubmissionRejected))

	outcome, err := submitter.Submit(ctx, "answer-3")
	gt.NoError(t, err).Required()
	gt.Equal(t, outcome.Progress.Index, 1)
}

func TestSubmitter_RoundComplete(t *testing.T) {
	ctx := testContext()
	tracker := usecase.NewTracker(repository.NewMemory())
	api := acceptingAPI()
	submitter := usecase.NewSubmitter(tracker, api, recordingNavigator())

	_, err := submitter.Submit(ctx, "answer-0")
	gt.NoError(t, err).Required()

	_, err = submitter.Submit(ctx, "answer-1")
	gt.True(t, errors.Is(err, model.ErrRoundComplete))
	gt.A(t, api.RecordResponseCalls()).Length(1)

	progress, err := tracker.ReadProgress(ctx)
	gt.NoError(t, err).Required()
	gt.Equal(t, progress.Index, 1)
}

func TestSubmitter_FinishedSurveyIsNotSubmitted(t *testing.T) {
	testCases := []struct {
		name  string
		index string
	}{
		{name: "completed marker", index: "-1"},
		{name: "all answered", index: "4"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := testContext()
			store := repository.NewMemory()
			putRaw(t, store, types.StateKeyQuestionIndex, tc.index)
			putRaw(t, store, types.StateKeyCurrentQuestion, tc.index)

			tracker := usecase.NewTracker(store)
			api := acceptingAPI()
			nav := recordingNavigator()
			submitter := usecase.NewSubmitter(tracker, api, nav)

			outcome, err := submitter.Submit(ctx, "answer-0")
			gt.True(t, errors.Is(err, model.ErrRoundComplete))
			gt.True(t, outcome == nil)
			gt.A(t, api.RecordResponseCalls()).Length(0)
			gt.A(t, nav.NavigateCalls()).Length(0)
			gt.Equal(t, submitter.State(), model.SubmissionAwaitingClick)

			before, err := tracker.ReadProgress(ctx)
			gt.NoError(t, err).Required()
			gt.True(t, before.IsFinished())
		})
	}
}

func TestSubmitter_InvalidControlKeepsState(t *testing.T) {
	ctx := testContext()
	api := acceptingAPI()
	submitter := usecase.NewSubmitter(usecase.NewTracker(repository.NewMemory()), api, recordingNavigator())

	_, err := submitter.Submit(ctx, "answer-9")
	gt.True(t, errors.Is(err, model.ErrInvalidAnswerControl))
	gt.Equal(t, submitter.State(), model.SubmissionAwaitingClick)
	gt.A(t, api.RecordResponseCalls()).Length(0)
}

func TestSubmitter_SingleInFlight(t *testing.T) {
	ctx := testContext()
	store := repository.NewMemory()
	tracker := usecase.NewTracker(store)

	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	api := &mocks.SurveyAPIMock{
		RecordResponseFunc: func(ctx context.Context, option types.OptionID) (*model.Ack, error) {
			once.Do(func() { close(started) })
			<-release
			ack := model.ParseAck(200, "true")
			return &ack, nil
		},
	}
	nav := recordingNavigator()
	submitter := usecase.NewSubmitter(tracker, api, nav)

	done := make(chan error, 1)
	go func() {
		_, err := submitter.Submit(ctx, "answer-1")
		done <- err
	}()

	<-started
	gt.Equal(t, submitter.State(), model.SubmissionSubmitting)

	// Repeated clicks while the first request is outstanding
	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := submitter.Submit(ctx, "answer-2")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		gt.True(t, errors.Is(err, model.ErrSubmissionInFlight))
	}

	close(release)
	gt.NoError(t, <-done)

	gt.A(t, api.RecordResponseCalls()).Length(1)
	gt.A(t, nav.NavigateCalls()).Length(1)

	progress, err := tracker.ReadProgress(ctx)
	gt.NoError(t, err).Required()
	gt.Equal(t, progress, model.Progress{Index: 1, Number: 1})
}

func TestSubmitter_AbandonedRequest(t *testing.T) {
	base := testContext()
	store := repository.NewMemory()
	tracker := usecase.NewTracker(store)

	ctx, cancel := context.WithCancel(base)
	api := &mocks.SurveyAPIMock{
		RecordResponseFunc: func(ctx context.Context, option types.OptionID) (*model.Ack, error) {
			// The user leaves the screen, then the server answers anyway
			cancel()
			ack := model.ParseAck(200, "true")
			return &ack, nil
		},
	}
	nav := recordingNavigator()
	submitter := usecase.NewSubmitter(tracker, api, nav)

	outcome, err := submitter.Submit(ctx, "answer-1")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, context.Canceled))
	gt.Equal(t, outcome, (*model.Outcome)(nil))
	gt.Equal(t, submitter.State(), model.SubmissionAwaitingClick)
	gt.A(t, nav.NavigateCalls()).Length(0)

	progress, err := tracker.ReadProgress(base)
	gt.NoError(t, err).Required()
	gt.Equal(t, progress, model.Progress{})
}

func TestSubmitter_PersistFailure(t *testing.T) {
	ctx := testContext()
	store := &mocks.StateStoreMock{
		GetFunc: func(ctx context.Context, key types.StateKey) (*model.StateEntry, error) {
			return nil, model.ErrStateNotFound
		},
		PutFunc: func(ctx context.Context, entries ...model.StateEntry) error {
			return errors.New("read-only filesystem")
		},
	}
	nav := recordingNavigator()
	submitter := usecase.NewSubmitter(usecase.NewTracker(store), acceptingAPI(), nav)

	outcome, err := submitter.Submit(ctx, "answer-0")
	gt.Error(t, err)
	gt.False(t, errors.Is(err, model.ErrSubmissionRejected))
	gt.Equal(t, outcome.State, model.SubmissionRejected)
	gt.A(t, nav.NavigateCalls()).Length(0)
}
