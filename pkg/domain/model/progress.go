package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/secmon-lab/surveyor/pkg/domain/types"
)

// ProgressRetention is how long persisted counters stay valid
const ProgressRetention = 24 * time.Hour

// Progress is the synchronized pair of survey counters. Index is the
// zero-based count of answered questions and drives termination; Number
// advances in lockstep with it.
type Progress struct {
	Index  int `json:"question_index"`
	Number int `json:"question_number"`
}

// Advance returns the progress after one acknowledged submission
func (p Progress) Advance() Progress {
	return Progress{
		Index:  p.Index + 1,
		Number: p.Number + 1,
	}
}

// IsFinished reports whether no question remains. A negative index is the
// marker written for users who already completed the survey.
func (p Progress) IsFinished() bool {
	return p.Index < 0 || p.Index >= QuestionCount
}

// IsSynchronized reports whether both counters agree
func (p Progress) IsSynchronized() bool {
	return p.Index == p.Number
}

// Entries returns both counters as state entries expiring at expiresAt.
// They must always be written together.
func (p Progress) Entries(expiresAt time.Time) []StateEntry {
	return []StateEntry{
		{
			Key:       types.StateKeyQuestionIndex,
			Value:     strconv.Itoa(p.Index),
			ExpiresAt: expiresAt,
		},
		{
			Key:       types.StateKeyCurrentQuestion,
			Value:     strconv.Itoa(p.Number),
			ExpiresAt: expiresAt,
		},
	}
}

// ParseCounter parses a persisted counter. Missing and empty values are 0.
// ok is false when a non-empty value is not an integer; the value is then 0.
func ParseCounter(raw string) (n int, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
