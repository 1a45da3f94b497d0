package slack

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/surveyor/pkg/domain/interfaces"
	"github.com/secmon-lab/surveyor/pkg/domain/model"
	"github.com/slack-go/slack"
)

// SummarySink posts each chart as a text summary to a Slack channel
type SummarySink struct {
	service   *Service
	channelID string
}

var _ interfaces.ChartSink = (*SummarySink)(nil)

// NewSummarySink creates a SummarySink posting to channelID
func NewSummarySink(service *Service, channelID string) (*SummarySink, error) {
	if service == nil {
		return nil, goerr.New("slack service is nil")
	}
	if channelID == "" {
		return nil, goerr.New("slack channel is empty")
	}
	return &SummarySink{
		service:   service,
		channelID: channelID,
	}, nil
}

// Render implements interfaces.ChartSink
func (s *SummarySink) Render(ctx context.Context, spec model.ChartSpec) error {
	_, ts, err := s.service.PostMessage(ctx, s.channelID,
		slack.MsgOptionText(chartFallbackText(spec), false),
		slack.MsgOptionBlocks(BuildChartBlocks(spec)...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post chart summary", goerr.V("chart_id", spec.ID))
	}

	ctxlog.From(ctx).Info("chart summary posted to Slack",
		"chart_id", spec.ID,
		"channel", s.channelID,
		"ts", ts,
	)
	return nil
}
