package rota

import "github.com/arloliu/rota/types"

// Re-export types from the types package.
//
// Internal packages depend on `types` rather than the root package, which
// avoids import cycles while still offering `rota.Profile`, `rota.Logger`,
// etc. to users.
type (
	Role          = types.Role
	Profile       = types.Profile
	Month         = types.Month
	Date          = types.Date
	AssignmentMap = types.AssignmentMap
	Schedule      = types.Schedule
	Event         = types.Event
	EventKind     = types.EventKind
)

// Re-export interfaces from the types package for convenience.
type (
	AssignmentStrategy = types.AssignmentStrategy
	EligibilityFilter  = types.EligibilityFilter
	BuildRequest       = types.BuildRequest
	ProfileSource      = types.ProfileSource
	SchedulePublisher  = types.SchedulePublisher
	MetricsCollector   = types.MetricsCollector
	Logger             = types.Logger
	Hooks              = types.Hooks
)

// Re-export role and event constants.
const (
	RoleMicrophone = types.RoleMicrophone
	RoleAudio      = types.RoleAudio
	RoleVideo      = types.RoleVideo
	RolePlatform   = types.RolePlatform

	EventRebuilt    = types.EventRebuilt
	EventOverridden = types.EventOverridden
)

// ParseMonthKey parses a "YYYY-MM" month key.
func ParseMonthKey(key string) (Month, error) {
	return types.ParseMonthKey(key)
}
