package types

import (
	"errors"
	"strings"
)

// Sentinel errors for the rota library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).
//
// Error Naming Convention:
//   - Use descriptive names with Err prefix
//   - Group by component (Planner, Calendar, Source, Publisher, etc.)
//   - Use consistent messages across similar error types

// Planner errors - Public API errors returned by the Planner.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrProfileSourceRequired is returned when the profile source is nil.
	ErrProfileSourceRequired = errors.New("profile source is required")

	// ErrAssignmentStrategyRequired is returned when the assignment strategy is nil.
	ErrAssignmentStrategyRequired = errors.New("assignment strategy is required")

	// ErrNoMonthSelected is returned by operations that need a selected month.
	ErrNoMonthSelected = errors.New("no month selected")

	// ErrAssignmentFailed is returned when the default assignment could not be built.
	ErrAssignmentFailed = errors.New("assignment failed")
)

// Calendar errors - Month and date key parsing.
var (
	// ErrInvalidMonthKey is returned when a month key is not a valid "YYYY-MM".
	ErrInvalidMonthKey = errors.New("invalid month key")

	// ErrInvalidDateKey is returned when a date key is not a valid "YYYY-MM-DD".
	ErrInvalidDateKey = errors.New("invalid date key")
)

// Source errors - Profile source adapters.
var (
	// ErrProfileSourceFailed is returned when listing profiles fails.
	// The underlying cause is wrapped alongside it.
	ErrProfileSourceFailed = errors.New("profile source failed")

	// ErrInvalidProfile is returned when a stored profile fails validation.
	ErrInvalidProfile = errors.New("invalid profile")
)

// Publisher errors - Schedule publishing to NATS KV.
var (
	// ErrPublisherRequired is returned by Publish when no publisher is configured.
	ErrPublisherRequired = errors.New("schedule publisher is required")

	// ErrPublishFailed is returned when publishing a schedule to NATS KV fails.
	ErrPublishFailed = errors.New("failed to publish schedule")
)

// Common errors - Shared errors used across multiple components.
var (
	// ErrNoKeysFound is returned when NATS KV returns no keys (expected condition).
	ErrNoKeysFound = errors.New("no keys found")
)

// IsNoKeysFoundError checks if an error indicates that no keys were found in NATS KV.
//
// This function handles NATS-specific "no keys found" errors which may come as:
//   - Direct error: "nats: no keys found"
//   - Wrapped error: "failed to list KV keys: nats: no keys found"
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: true if the error indicates no keys were found, false otherwise
func IsNoKeysFoundError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNoKeysFound) {
		return true
	}

	return strings.Contains(err.Error(), "no keys found")
}
