package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for survey operations
var (
	ErrAuthAbsent           = goerr.New("session token is absent")
	ErrSubmissionRejected   = goerr.New("submission was not acknowledged")
	ErrSubmissionInFlight   = goerr.New("submission already in flight")
	ErrRoundComplete        = goerr.New("question round already advanced")
	ErrInvalidAnswerControl = goerr.New("invalid answer control")
	ErrAggregateFetchFailed = goerr.New("failed to fetch aggregate responses")
	ErrChartRenderFailed    = goerr.New("failed to render chart")
	ErrStateNotFound        = goerr.New("state entry not found")
)
