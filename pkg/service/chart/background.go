package chart

import (
	"context"

	"github.com/secmon-lab/surveyor/pkg/domain/interfaces"
	"github.com/secmon-lab/surveyor/pkg/domain/model"
	"github.com/secmon-lab/surveyor/pkg/utils/async"
)

// BackgroundSink hands charts to a slow sink without blocking the caller.
// Failures surface from Wait.
type BackgroundSink struct {
	sink  interfaces.ChartSink
	group async.Group
}

var _ interfaces.ChartSink = (*BackgroundSink)(nil)

// NewBackgroundSink wraps sink
func NewBackgroundSink(sink interfaces.ChartSink) *BackgroundSink {
	return &BackgroundSink{sink: sink}
}

// Render implements interfaces.ChartSink
func (s *BackgroundSink) Render(ctx context.Context, spec model.ChartSpec) error {
	s.group.Go(ctx, func(ctx context.Context) error {
		return s.sink.Render(ctx, spec)
	})
	return nil
}

// Wait blocks until every queued chart was handled
func (s *BackgroundSink) Wait() error {
	return s.group.Wait()
}
