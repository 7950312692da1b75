package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Methods may be called from any goroutine that drives a Planner and must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	PlannerMetrics
	SourceMetrics
	PublishMetrics
}

// PlannerMetrics defines metrics for schedule building and editing.
type PlannerMetrics interface {
	// RecordBuild records a completed default assignment build.
	//
	// Parameters:
	//   - month: Month key ("YYYY-MM")
	//   - duration: Time taken in seconds
	//   - filled: Number of slots that received an assignee
	//   - unfilled: Number of slots left unassigned
	RecordBuild(month string, duration float64, filled, unfilled int)

	// RecordUnfilledSlot records a slot the builder could not fill.
	//
	// Parameters:
	//   - role: Role of the unfilled slot
	RecordUnfilledSlot(role Role)

	// RecordOverride records a manual assignment override.
	RecordOverride(role Role)

	// RecordEventDropped records when an event is dropped due to a slow subscriber.
	RecordEventDropped()
}

// SourceMetrics defines metrics for profile source reads.
type SourceMetrics interface {
	// RecordProfileRefresh records a profile source read.
	//
	// Parameters:
	//   - count: Number of profiles returned (0 on failure)
	//   - success: true if the read succeeded
	RecordProfileRefresh(count int, success bool)
}

// PublishMetrics defines metrics for schedule publishing.
type PublishMetrics interface {
	// RecordPublish records a schedule publish attempt.
	//
	// Parameters:
	//   - success: true if the schedule was written
	//   - duration: Time taken in seconds
	RecordPublish(success bool, duration float64)
}
