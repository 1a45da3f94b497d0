package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/surveyor/pkg/domain/interfaces"
	"github.com/secmon-lab/surveyor/pkg/repository"
	"github.com/urfave/cli/v3"
)

// defaultProfile names the Firestore document when no profile is given
const defaultProfile = "default"

// State holds client-state store configuration
type State struct {
	File              string
	FirestoreProject  string
	FirestoreDatabase string
	FirestoreProfile  string
	SessionID         string
}

// Flags returns CLI flags for State configuration
func (s *State) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "state-file",
			Usage:       "Path of the local state file (default: user config dir)",
			Category:    "State",
			Sources:     cli.EnvVars("SURVEYOR_STATE_FILE"),
			Destination: &s.File,
		},
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "GCP project ID for Firestore; keeps state in Firestore instead of a local file",
			Category:    "State",
			Sources:     cli.EnvVars("SURVEYOR_FIRESTORE_PROJECT"),
			Destination: &s.FirestoreProject,
		},
		&cli.StringFlag{
			Name:        "firestore-database",
			Usage:       "Firestore database ID",
			Category:    "State",
			Value:       "(default)",
			Sources:     cli.EnvVars("SURVEYOR_FIRESTORE_DATABASE"),
			Destination: &s.FirestoreDatabase,
		},
		&cli.StringFlag{
			Name:        "firestore-profile",
			Usage:       "Firestore document holding this participant's state",
			Category:    "State",
			Value:       defaultProfile,
			Sources:     cli.EnvVars("SURVEYOR_FIRESTORE_PROFILE"),
			Destination: &s.FirestoreProfile,
		},
		&cli.StringFlag{
			Name:        "session-id",
			Usage:       "Session token issued by the survey login",
			Category:    "State",
			Sources:     cli.EnvVars("SURVEYOR_SESSION_ID"),
			Destination: &s.SessionID,
		},
	}
}

// Configure creates the state store: Firestore when a project is set,
// otherwise a local file
func (s *State) Configure(ctx context.Context) (interfaces.StateStore, error) {
	logger := ctxlog.From(ctx)

	if s.IsFirestore() {
		profile := s.FirestoreProfile
		if profile == "" {
			profile = defaultProfile
		}
		store, err := repository.NewFirestore(ctx, s.FirestoreProject, s.FirestoreDatabase, profile)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to init firestore",
				goerr.V("project", s.FirestoreProject),
				goerr.V("database", s.FirestoreDatabase),
			)
		}
		return store, nil
	}

	path, err := s.FilePath()
	if err != nil {
		return nil, err
	}
	logger.Debug("Using local state file", "path", path)

	store, err := repository.NewFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to init state file", goerr.V("path", path))
	}
	return store, nil
}

// FilePath returns the local state file path
func (s *State) FilePath() (string, error) {
	if s.File != "" {
		return s.File, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", goerr.Wrap(err, "failed to find user config directory; set --state-file")
	}
	return filepath.Join(dir, "surveyor", "state.yaml"), nil
}

// IsFirestore checks if Firestore is configured
func (s *State) IsFirestore() bool {
	return s.FirestoreProject != ""
}

// LogValue returns structured log value
func (s State) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("file", s.File),
		slog.String("firestore_project", s.FirestoreProject),
		slog.String("firestore_database", s.FirestoreDatabase),
		slog.String("firestore_profile", s.FirestoreProfile),
		slog.Bool("has_session_id", s.SessionID != ""),
	)
}
