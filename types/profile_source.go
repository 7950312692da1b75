package types

import "context"

// ProfileSource provides the current set of volunteer profiles.
//
// Implementations can query various backends:
//   - Static: fixed list for testing
//   - File: YAML document on disk
//   - SQL: profiles table in SQLite or PostgreSQL
//   - KV: NATS JetStream key-value bucket
//
// The Planner calls ListProfiles during:
//   - SelectMonth (every month selection re-reads the source)
//   - Refresh (manual reload)
//
// Profiles are read-only to the engine.
type ProfileSource interface {
	// ListProfiles returns all available profiles.
	//
	// Implementations should:
	//   - Return a stable order for the same backend state
	//   - Handle context cancellation gracefully
	//   - Return a copy the caller may keep
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - []Profile: Current profiles
	//   - error: Read error (nil on success)
	ListProfiles(ctx context.Context) ([]Profile, error)
}

// SchedulePublisher delivers a schedule snapshot to an external store.
type SchedulePublisher interface {
	// Publish stores the snapshot and returns the version it was stored under.
	//
	// Versions increase monotonically per month, starting at 1.
	Publish(ctx context.Context, schedule Schedule) (int64, error)
}
