package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/rota/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use, so constructing a
// PrometheusCollector never touches the registry.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	buildDuration   *prometheus.HistogramVec
	slotsFilled     *prometheus.GaugeVec
	slotsUnfilled   *prometheus.GaugeVec
	unfilledByRole  *prometheus.CounterVec
	overrides       *prometheus.CounterVec
	eventsDropped   prometheus.Counter
	profileRefresh  *prometheus.CounterVec
	profilesCurrent prometheus.Gauge
	publishResults  *prometheus.CounterVec
	publishLatency  prometheus.Histogram
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "rota" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "rota"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.buildDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "build_duration_seconds",
			Help:      "Duration of default assignment builds in seconds by month.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8), // 100µs .. ~1.6s
		}, []string{"month"})

		p.slotsFilled = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "slots_filled",
			Help:      "Slots filled by the last build of each month.",
		}, []string{"month"})

		p.slotsUnfilled = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "slots_unfilled",
			Help:      "Slots left unassigned by the last build of each month.",
		}, []string{"month"})

		p.unfilledByRole = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "unfilled_slots_total",
			Help:      "Total slots the builder could not fill, by role.",
		}, []string{"role"})

		p.overrides = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "overrides_total",
			Help:      "Total manual assignment overrides by role.",
		}, []string{"role"})

		p.eventsDropped = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "events_dropped_total",
			Help:      "Events dropped because a subscriber was not keeping up.",
		})

		p.profileRefresh = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "source",
			Name:      "refreshes_total",
			Help:      "Profile source reads by result (success|failure).",
		}, []string{"result"})

		p.profilesCurrent = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "source",
			Name:      "profiles_current",
			Help:      "Number of profiles returned by the last successful read.",
		})

		p.publishResults = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "publisher",
			Name:      "publishes_total",
			Help:      "Schedule publish attempts by result (success|failure).",
		}, []string{"result"})

		p.publishLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "publisher",
			Name:      "publish_latency_seconds",
			Help:      "Latency of schedule publish operations in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms .. ~2s
		})

		p.reg.MustRegister(p.buildDuration)
		p.reg.MustRegister(p.slotsFilled)
		p.reg.MustRegister(p.slotsUnfilled)
		p.reg.MustRegister(p.unfilledByRole)
		p.reg.MustRegister(p.overrides)
		p.reg.MustRegister(p.eventsDropped)
		p.reg.MustRegister(p.profileRefresh)
		p.reg.MustRegister(p.profilesCurrent)
		p.reg.MustRegister(p.publishResults)
		p.reg.MustRegister(p.publishLatency)
	})
}

func result(success bool) string {
	if success {
		return "success"
	}

	return "failure"
}

// PlannerMetrics implementation

// RecordBuild observes build latency and sets the month's fill gauges.
func (p *PrometheusCollector) RecordBuild(month string, duration float64, filled, unfilled int) {
	p.ensureRegistered()
	p.buildDuration.WithLabelValues(month).Observe(duration)
	p.slotsFilled.WithLabelValues(month).Set(float64(filled))
	p.slotsUnfilled.WithLabelValues(month).Set(float64(unfilled))
}

// RecordUnfilledSlot increments the unfilled slot counter for role.
func (p *PrometheusCollector) RecordUnfilledSlot(role types.Role) {
	p.ensureRegistered()
	p.unfilledByRole.WithLabelValues(string(role)).Inc()
}

// RecordOverride increments the override counter for role.
func (p *PrometheusCollector) RecordOverride(role types.Role) {
	p.ensureRegistered()
	p.overrides.WithLabelValues(string(role)).Inc()
}

// RecordEventDropped increments the dropped event counter.
func (p *PrometheusCollector) RecordEventDropped() {
	p.ensureRegistered()
	p.eventsDropped.Inc()
}

// SourceMetrics implementation

// RecordProfileRefresh counts a source read and, on success, sets the profile gauge.
func (p *PrometheusCollector) RecordProfileRefresh(count int, success bool) {
	p.ensureRegistered()
	p.profileRefresh.WithLabelValues(result(success)).Inc()
	if success {
		p.profilesCurrent.Set(float64(count))
	}
}

// PublishMetrics implementation

// RecordPublish counts a publish attempt and observes its latency.
func (p *PrometheusCollector) RecordPublish(success bool, duration float64) {
	p.ensureRegistered()
	p.publishResults.WithLabelValues(result(success)).Inc()
	p.publishLatency.Observe(duration)
}
