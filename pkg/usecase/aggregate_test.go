package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/surveyor/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/surveyor/pkg/domain/model"
	"github.com/secmon-lab/surveyor/pkg/domain/types"
	"github.com/secmon-lab/surveyor/pkg/repository"
	"github.com/secmon-lab/surveyor/pkg/usecase"
)

func aggregateAPI(results model.AggregateResultSet, err error) *mocks.SurveyAPIMock {
	return &mocks.SurveyAPIMock{
		AggregateResponsesFunc: func(ctx context.Context) (model.AggregateResultSet, error) {
			return results, err
		},
	}
}

func acceptingSink() *mocks.ChartSinkMock {
	return &mocks.ChartSinkMock{
		RenderFunc: func(ctx context.Context, spec model.ChartSpec) error {
			return nil
		},
	}
}

func loggedInTracker(t *testing.T) *usecase.Tracker {
	t.Helper()
	tracker := usecase.NewTracker(repository.NewMemory())
	gt.NoError(t, tracker.StoreSessionToken(context.Background(), "alice")).Required()
	return tracker
}

func TestAggregateRenderer_ExampleDashboard(t *testing.T) {
	ctx := testContext()
	results := model.AggregateResultSet{
		{3, 5, 2, 1},
		{1, 1, 6, 2},
		{4, 2, 1, 3},
		{2, 2, 3, 3},
	}
	sink := acceptingSink()
	renderer := usecase.NewAggregateRenderer(loggedInTracker(t), aggregateAPI(results, nil), sink)

	report, err := renderer.Render(ctx)
	gt.NoError(t, err).Required()
	gt.Equal(t, report.Status, model.DashboardRendered)
	gt.A(t, report.Charts).Length(4)

	calls := sink.RenderCalls()
	gt.A(t, calls).Length(4)

	expectedTitles := []string{"Question 1", "Question 2", "Question 3", "Question 4"}
	expectedIDs := []types.ChartID{"chart1", "chart2", "chart3", "chart4"}
	for i, call := range calls {
		gt.Equal(t, call.Spec.ID, expectedIDs[i])
		gt.Equal(t, call.Spec.Title, expectedTitles[i])
		gt.Equal(t, call.Spec.Labels, model.AnswerLabels[i])
		gt.Equal(t, call.Spec.Data, []int(results[i]))
		gt.Equal(t, call.Spec.Style.Kind, "doughnut")
		gt.Equal(t, call.Spec.Style.DatasetLabel, "# of People")
	}
	gt.Equal(t, calls[1].Spec.Labels, []string{"Abandoned Farm", "Woods", "Busy city", "Sea"})
}

func TestAggregateRenderer_NoSession(t *testing.T) {
	ctx := testContext()
	api := aggregateAPI(nil, nil)
	sink := acceptingSink()
	renderer := usecase.NewAggregateRenderer(usecase.NewTracker(repository.NewMemory()), api, sink)

	report, err := renderer.Render(ctx)
	gt.NoError(t, err).Required()
	gt.Equal(t, report.Status, model.DashboardSkipped)
	gt.A(t, api.AggregateResponsesCalls()).Length(0)
	gt.A(t, sink.RenderCalls()).Length(0)
}

func TestAggregateRenderer_FetchFailures(t *testing.T) {
	testCases := []struct {
		name    string
		results model.AggregateResultSet
		err     error
	}{
		{name: "transport error", err: errors.New("connection reset")},
		{name: "too few groups", results: model.AggregateResultSet{{1, 2, 3, 4}}},
		{name: "short group", results: model.AggregateResultSet{{1, 2, 3, 4}, {1, 2, 3}, {1, 2, 3, 4}, {1, 2, 3, 4}}},
		{name: "negative count", results: model.AggregateResultSet{{1, 2, 3, 4}, {1, 2, 3, 4}, {1, -2, 3, 4}, {1, 2, 3, 4}}},
		{name: "empty", results: model.AggregateResultSet{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := testContext()
			sink := acceptingSink()
			renderer := usecase.NewAggregateRenderer(loggedInTracker(t), aggregateAPI(tc.results, tc.err), sink)

			report, err := renderer.Render(ctx)
			gt.Error(t, err)
			gt.True(t, errors.Is(err, model.ErrAggregateFetchFailed))
			gt.Equal(t, report, (*model.DashboardReport)(nil))
			gt.A(t, sink.RenderCalls()).Length(0)
		})
	}
}

func TestAggregateRenderer_SinkFailure(t *testing.T) {
	ctx := testContext()
	results := model.AggregateResultSet{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
	sink := &mocks.ChartSinkMock{
		RenderFunc: func(ctx context.Context, spec model.ChartSpec) error {
			if spec.ID == "chart2" {
				return errors.New("disk full")
			}
			return nil
		},
	}
	renderer := usecase.NewAggregateRenderer(loggedInTracker(t), aggregateAPI(results, nil), sink)

	_, err := renderer.Render(ctx)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrChartRenderFailed))
	gt.A(t, sink.RenderCalls()).Length(2)
}
