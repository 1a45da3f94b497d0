package types

// StateKey is the name of a persisted client-state entry
type StateKey string

const (
	StateKeySessionID       StateKey = "session-id"
	StateKeyCurrentQuestion StateKey = "current-question"
	StateKeyQuestionIndex   StateKey = "current-qindex"
)

// String returns the string representation
func (k StateKey) String() string {
	return string(k)
}

// IsValid checks if the key is one of the known client-state keys
func (k StateKey) IsValid() bool {
	switch k {
	case StateKeySessionID, StateKeyCurrentQuestion, StateKeyQuestionIndex:
		return true
	default:
		return false
	}
}

// Route is a navigation target
type Route string

const (
	RouteHome      Route = "/"
	RouteSurvey    Route = "/survey"
	RouteDashboard Route = "/dashboard"
)

// String returns the string representation
func (r Route) String() string {
	return string(r)
}

// IsValid checks if the route is a known navigation target
func (r Route) IsValid() bool {
	switch r {
	case RouteHome, RouteSurvey, RouteDashboard:
		return true
	default:
		return false
	}
}
