package model

import (
	"time"

	"github.com/secmon-lab/surveyor/pkg/domain/types"
)

// StateEntry is one persisted client-state value. A zero ExpiresAt means
// the entry lives until it is deleted.
type StateEntry struct {
	Key       types.StateKey `json:"key" yaml:"key" firestore:"key"`
	Value     string         `json:"value" yaml:"value" firestore:"value"`
	ExpiresAt time.Time      `json:"expires_at,omitempty" yaml:"expires_at,omitempty" firestore:"expires_at"`
}

// IsExpired checks if the entry has expired at now
func (e *StateEntry) IsExpired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && !now.Before(e.ExpiresAt)
}

// SurveySession is the client-side view of a survey participant: the
// session token and the persisted progress
type SurveySession struct {
	Token    types.SessionToken `json:"-"`
	Progress Progress           `json:"progress"`
}

// IsLoggedIn reports whether a session token is present
func (s *SurveySession) IsLoggedIn() bool {
	return s != nil && !s.Token.IsEmpty()
}
