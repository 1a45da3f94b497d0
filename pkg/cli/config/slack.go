package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	slackSvc "github.com/secmon-lab/surveyor/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack configuration
type Slack struct {
	OAuthToken string
	ChannelID  string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for posting result summaries",
			Category:    "Slack",
			Sources:     cli.EnvVars("SURVEYOR_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID to post result summaries to",
			Category:    "Slack",
			Sources:     cli.EnvVars("SURVEYOR_SLACK_CHANNEL"),
			Destination: &s.ChannelID,
		},
	}
}

// ConfigureOptional creates a Slack summary sink if configured, returns nil if not
func (s *Slack) ConfigureOptional(logger *slog.Logger) (*slackSvc.SummarySink, error) {
	if s.OAuthToken == "" && s.ChannelID == "" {
		logger.Debug("Slack not configured - result summaries will not be posted")
		return nil, nil
	}
	if !s.IsConfigured() {
		return nil, goerr.New("both --slack-oauth-token and --slack-channel are required",
			goerr.V("has_oauth_token", s.OAuthToken != ""),
			goerr.V("has_channel", s.ChannelID != ""),
		)
	}

	logger.Info("Configuring Slack summary sink", "channel", s.ChannelID)
	return slackSvc.NewSummarySink(slackSvc.New(s.OAuthToken), s.ChannelID)
}

// IsConfigured checks if Slack is configured for posting
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.ChannelID != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.ChannelID),
	)
}
