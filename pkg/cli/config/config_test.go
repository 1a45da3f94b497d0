package config_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/surveyor/pkg/cli/config"
	"github.com/secmon-lab/surveyor/pkg/repository"
)

func TestLoggerValidate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     config.Logger
		wantErr bool
	}{
		{name: "defaults", cfg: config.Logger{}},
		{name: "debug json", cfg: config.Logger{Level: "debug", Format: "json"}},
		{name: "bad level", cfg: config.Logger{Level: "trace"}, wantErr: true},
		{name: "bad format", cfg: config.Logger{Format: "xml"}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestLoggerConfigureWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Logger{Level: "info", Format: "json"}

	logger, err := cfg.ConfigureWriter(&buf)
	gt.NoError(t, err).Required()

	logger.Debug("hidden")
	logger.Info("shown", "answer", 2)

	gt.False(t, strings.Contains(buf.String(), "hidden"))
	gt.S(t, buf.String()).Contains(`"msg":"shown"`)
	gt.S(t, buf.String()).Contains(`"answer":2`)
}

func TestStateConfigureFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.yaml")
	cfg := config.State{File: path}

	gt.False(t, cfg.IsFirestore())

	got, err := cfg.FilePath()
	gt.NoError(t, err).Required()
	gt.Equal(t, got, path)

	store, err := cfg.Configure(context.Background())
	gt.NoError(t, err).Required()
	defer store.Close()

	_, isFile := store.(*repository.File)
	gt.True(t, isFile)
}

func TestStateFilePathDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg := config.State{}
	path, err := cfg.FilePath()
	gt.NoError(t, err).Required()
	gt.True(t, strings.HasSuffix(path, filepath.Join("surveyor", "state.yaml")))
}

func TestStateLogValueHidesSessionID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	logger.Info("state", "state", config.State{File: "/tmp/s.yaml", SessionID: "secret-token"})

	gt.False(t, strings.Contains(buf.String(), "secret-token"))
	gt.S(t, buf.String()).Contains(`"has_session_id":true`)
}

func TestSlackConfigureOptional(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("not configured", func(t *testing.T) {
		cfg := config.Slack{}
		sink, err := cfg.ConfigureOptional(logger)
		gt.NoError(t, err)
		gt.True(t, sink == nil)
	})

	t.Run("token without channel", func(t *testing.T) {
		cfg := config.Slack{OAuthToken: "xoxb-test"}
		_, err := cfg.ConfigureOptional(logger)
		gt.Error(t, err)
	})

	t.Run("channel without token", func(t *testing.T) {
		cfg := config.Slack{ChannelID: "C123"}
		_, err := cfg.ConfigureOptional(logger)
		gt.Error(t, err)
	})

	t.Run("configured", func(t *testing.T) {
		cfg := config.Slack{OAuthToken: "xoxb-test", ChannelID: "C123"}
		gt.True(t, cfg.IsConfigured())

		sink, err := cfg.ConfigureOptional(logger)
		gt.NoError(t, err).Required()
		gt.V(t, sink).NotNil()
	})

	t.Run("log value hides token", func(t *testing.T) {
		var buf bytes.Buffer
		slog.New(slog.NewJSONHandler(&buf, nil)).Info("slack", "slack", config.Slack{OAuthToken: "xoxb-secret", ChannelID: "C123"})
		gt.False(t, strings.Contains(buf.String(), "xoxb-secret"))
	})
}

func TestEndpointConfigure(t *testing.T) {
	store := repository.NewMemory()

	t.Run("valid url", func(t *testing.T) {
		cfg := config.Endpoint{BaseURL: "http://localhost:8080"}
		client, err := cfg.Configure(store)
		gt.NoError(t, err)
		gt.V(t, client).NotNil()
	})

	t.Run("missing scheme", func(t *testing.T) {
		cfg := config.Endpoint{BaseURL: "localhost:8080"}
		_, err := cfg.Configure(store)
		gt.Error(t, err)
	})
}
