// Package metrics provides types.MetricsCollector implementations.
package metrics

import "github.com/arloliu/rota/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	planner, err := rota.NewPlanner(&cfg, src, strat, rota.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// PlannerMetrics implementation

// RecordBuild discards the build metric.
func (n *NopMetrics) RecordBuild(_ /* month */ string, _ /* duration */ float64, _ /* filled */, _ /* unfilled */ int) {
}

// RecordUnfilledSlot discards the unfilled slot metric.
func (n *NopMetrics) RecordUnfilledSlot(_ /* role */ types.Role) {}

// RecordOverride discards the override metric.
func (n *NopMetrics) RecordOverride(_ /* role */ types.Role) {}

// RecordEventDropped discards the dropped event metric.
func (n *NopMetrics) RecordEventDropped() {}

// SourceMetrics implementation

// RecordProfileRefresh discards the profile refresh metric.
func (n *NopMetrics) RecordProfileRefresh(_ /* count */ int, _ /* success */ bool) {}

// PublishMetrics implementation

// RecordPublish discards the publish metric.
func (n *NopMetrics) RecordPublish(_ /* success */ bool, _ /* duration */ float64) {}
