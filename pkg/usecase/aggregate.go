package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/surveyor/pkg/domain/interfaces"
	"github.com/secmon-lab/surveyor/pkg/domain/model"
)

// AggregateRenderer draws one chart per question from the server's
// aggregate counts
type AggregateRenderer struct {
	tracker *Tracker
	api     interfaces.SurveyAPI
	sink    interfaces.ChartSink
}

// NewAggregateRenderer creates a new AggregateRenderer
func NewAggregateRenderer(tracker *Tracker, api interfaces.SurveyAPI, sink interfaces.ChartSink) *AggregateRenderer {
	return &AggregateRenderer{
		tracker: tracker,
		api:     api,
		sink:    sink,
	}
}

// Render fetches the aggregate result set and hands every chart to the
// sink in question order. Without a session token nothing happens and a
// skipped report is returned. A failed or malformed fetch renders nothing.
func (r *AggregateRenderer) Render(ctx context.Context) (*model.DashboardReport, error) {
	logger := ctxlog.From(ctx)

	if !r.tracker.CanEnterSurvey(ctx) {
		logger.Debug("no session token, dashboard left empty")
		return &model.DashboardReport{Status: model.DashboardSkipped}, nil
	}

	results, err := r.api.AggregateResponses(ctx)
	if err != nil {
		return nil, goerr.Wrap(model.ErrAggregateFetchFailed, "failed to fetch aggregate responses",
			goerr.V("cause", err),
		)
	}
	if err := results.Validate(); err != nil {
		return nil, goerr.Wrap(model.ErrAggregateFetchFailed, "malformed aggregate responses",
			goerr.V("cause", err),
			goerr.V("results", results),
		)
	}

	charts := results.Charts()
	for _, spec := range charts {
		if err := r.sink.Render(ctx, spec); err != nil {
			return nil, goerr.Wrap(model.ErrChartRenderFailed, "failed to render chart",
				goerr.V("chart_id", spec.ID),
				goerr.V("cause", err),
			)
		}
	}

	logger.Info("dashboard rendered", "charts", len(charts))
	return &model.DashboardReport{
		Status: model.DashboardRendered,
		Charts: charts,
	}, nil
}
