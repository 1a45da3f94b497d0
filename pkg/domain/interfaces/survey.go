package interfaces

//go:generate moq -out mocks/survey_mock.go -pkg mocks . SurveyAPI ChartSink Navigator

import (
	"context"

	"github.com/secmon-lab/surveyor/pkg/domain/model"
	"github.com/secmon-lab/surveyor/pkg/domain/types"
)

// SurveyAPI is the server contract consumed by the survey client
type SurveyAPI interface {
	// RecordResponse sends one answer and returns the server acknowledgment.
	// A transport failure is returned as an error.
	RecordResponse(ctx context.Context, option types.OptionID) (*model.Ack, error)

	// AggregateResponses fetches the per-question response counts
	AggregateResponses(ctx context.Context) (model.AggregateResultSet, error)
}

// ChartSink renders one chart. Its internals are opaque to the survey core.
type ChartSink interface {
	Render(ctx context.Context, spec model.ChartSpec) error
}

// Navigator moves the client to another route
type Navigator interface {
	Navigate(ctx context.Context, route types.Route) error
}
