package rota

import "github.com/arloliu/rota/types"

// Sentinel errors returned by the Planner, re-exported from the types package.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrProfileSourceRequired is returned when the profile source is nil.
	ErrProfileSourceRequired = types.ErrProfileSourceRequired

	// ErrAssignmentStrategyRequired is returned when the assignment strategy is nil.
	ErrAssignmentStrategyRequired = types.ErrAssignmentStrategyRequired

	// ErrNoMonthSelected is returned by operations that need a selected month.
	ErrNoMonthSelected = types.ErrNoMonthSelected

	// ErrAssignmentFailed is returned when the default assignment could not be built.
	ErrAssignmentFailed = types.ErrAssignmentFailed

	// ErrInvalidMonthKey is returned when a month key is not a valid "YYYY-MM".
	ErrInvalidMonthKey = types.ErrInvalidMonthKey

	// ErrInvalidDateKey is returned when a date key is not a valid "YYYY-MM-DD".
	ErrInvalidDateKey = types.ErrInvalidDateKey

	// ErrProfileSourceFailed is returned when listing profiles fails.
	ErrProfileSourceFailed = types.ErrProfileSourceFailed

	// ErrPublisherRequired is returned by Publish when no publisher is configured.
	ErrPublisherRequired = types.ErrPublisherRequired

	// ErrPublishFailed is returned when a schedule publish fails.
	ErrPublishFailed = types.ErrPublishFailed
)
