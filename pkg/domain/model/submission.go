package model

import (
	"net/http"
	"strings"

	"github.com/secmon-lab/surveyor/pkg/domain/types"
)

// AckSentinel is the literal body the server writes on success
const AckSentinel = "true"

// Ack is the typed acknowledgment of a recorded response
type Ack struct {
	Accepted   bool   `json:"accepted"`
	StatusCode int    `json:"status_code"`
	Body       string `json:"body,omitempty"`
}

// ParseAck converts a raw server reply into an Ack. Only a 2xx reply whose
// trimmed body equals the success sentinel is accepted.
func ParseAck(statusCode int, body string) Ack {
	trimmed := strings.TrimSpace(body)
	return Ack{
		Accepted:   statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices && trimmed == AckSentinel,
		StatusCode: statusCode,
		Body:       trimmed,
	}
}

// SubmissionState is the state of a question screen's submitter
type SubmissionState string

const (
	SubmissionAwaitingClick SubmissionState = "awaiting_click"
	SubmissionSubmitting    SubmissionState = "submitting"
	SubmissionAdvanced      SubmissionState = "advanced"
	SubmissionRejected      SubmissionState = "rejected"
)

// String returns the string representation
func (s SubmissionState) String() string {
	return string(s)
}

// Outcome is the result of one submission round
type Outcome struct {
	RoundID  types.RoundID   `json:"round_id"`
	State    SubmissionState `json:"state"`
	Option   types.OptionID  `json:"option"`
	Progress Progress        `json:"progress"`
	Route    types.Route     `json:"route,omitempty"`
	Ack      *Ack            `json:"ack,omitempty"`
}
