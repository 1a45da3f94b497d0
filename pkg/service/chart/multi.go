package chart

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/surveyor/pkg/domain/interfaces"
	"github.com/secmon-lab/surveyor/pkg/domain/model"
)

// MultiSink fans a chart out to several sinks in order. The first failing
// sink stops the fan-out.
type MultiSink []interfaces.ChartSink

var _ interfaces.ChartSink = MultiSink(nil)

// Render implements interfaces.ChartSink
func (m MultiSink) Render(ctx context.Context, spec model.ChartSpec) error {
	for i, sink := range m {
		if err := sink.Render(ctx, spec); err != nil {
			return goerr.Wrap(err, "chart sink failed",
				goerr.V("sink_index", i),
				goerr.V("chart_id", spec.ID),
			)
		}
	}
	return nil
}
