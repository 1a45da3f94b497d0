package types

import (
	"github.com/google/uuid"
)

// SessionToken is the opaque marker set by the login flow. A non-empty
// token means the user is logged in.
type SessionToken string

// String returns the string representation
func (t SessionToken) String() string {
	return string(t)
}

// IsEmpty reports whether the token is absent
func (t SessionToken) IsEmpty() bool {
	return t == ""
}

// OptionID is the identifier of a selected answer option
type OptionID string

// String returns the string representation
func (id OptionID) String() string {
	return string(id)
}

// RoundID identifies one submission round for log correlation
type RoundID string

// String returns the string representation
func (id RoundID) String() string {
	return string(id)
}

// NewRoundID creates a new RoundID using UUID v7
func NewRoundID() RoundID {
	id, err := uuid.NewV7()
	if err != nil {
		return RoundID(uuid.New().String())
	}
	return RoundID(id.String())
}

// ChartID identifies a rendered chart (chart1..chart4)
type ChartID string

// String returns the string representation
func (id ChartID) String() string {
	return string(id)
}
