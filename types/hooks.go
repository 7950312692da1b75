package types

import "context"

// Hooks defines callbacks for Planner events.
//
// All hooks are optional. Unlike long-running services, a Planner is driven
// synchronously by its owner, so hooks run inline on the calling goroutine
// after the planner lock has been released. Hook errors are logged but never
// fail the planner operation that triggered them.
//
// Example:
//
//	hooks := &rota.Hooks{
//	    OnScheduleBuilt: func(ctx context.Context, s rota.Schedule) error {
//	        log.Printf("built %s with %d open slots", s.Month, s.Unfilled())
//	        return nil
//	    },
//	}
type Hooks struct {
	// OnScheduleBuilt is called after a month's default assignment replaces the previous map.
	OnScheduleBuilt func(ctx context.Context, schedule Schedule) error

	// OnAssignmentOverridden is called after a manual override.
	// previous is the profile ID that occupied the slot ("" if it was unset).
	OnAssignmentOverridden func(ctx context.Context, dateKey string, role Role, previous, profileID string) error

	// OnError is called when a recoverable error occurs.
	OnError func(ctx context.Context, err error) error
}
