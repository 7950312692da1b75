package rota

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/rota/internal/logging"
	"github.com/arloliu/rota/internal/metrics"
)

// DefaultEventBuffer is the per-subscriber event channel capacity.
const DefaultEventBuffer = 16

// Option configures a Planner with optional dependencies.
type Option func(*plannerOptions)

// plannerOptions holds optional Planner configuration.
type plannerOptions struct {
	hooks       *Hooks
	metrics     MetricsCollector
	logger      Logger
	publisher   SchedulePublisher
	now         func() time.Time
	eventBuffer int
}

// WithHooks sets event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for NewPlanner
//
// Example:
//
//	hooks := &rota.Hooks{
//	    OnAssignmentOverridden: func(ctx context.Context, dateKey string, role rota.Role, prev, id string) error {
//	        return audit.Record(dateKey, role, prev, id)
//	    },
//	}
//	planner, err := rota.NewPlanner(&cfg, src, strat, rota.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *plannerOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewPlanner
//
// Example:
//
//	collector := rota.NewPrometheusMetrics(prometheus.DefaultRegisterer, "rota")
//	planner, err := rota.NewPlanner(&cfg, src, strat, rota.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *plannerOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewPlanner
//
// Example:
//
//	logger, _ := rota.NewSlogLogger(os.Stderr, "debug", "text")
//	planner, err := rota.NewPlanner(&cfg, src, strat, rota.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *plannerOptions) {
		o.logger = logger
	}
}

// WithPublisher sets the schedule publisher used by Planner.Publish.
//
// Example:
//
//	pub, _ := publish.Open(ctx, js, cfg.Publish.Bucket, publish.WithKeyPrefix(cfg.Publish.KeyPrefix))
//	planner, err := rota.NewPlanner(&cfg, src, strat, rota.WithPublisher(pub))
func WithPublisher(publisher SchedulePublisher) Option {
	return func(o *plannerOptions) {
		o.publisher = publisher
	}
}

// WithClock overrides the clock used to stamp schedules.
func WithClock(now func() time.Time) Option {
	return func(o *plannerOptions) {
		o.now = now
	}
}

// WithEventBuffer sets the per-subscriber event channel capacity.
// Values <= 0 keep DefaultEventBuffer.
func WithEventBuffer(n int) Option {
	return func(o *plannerOptions) {
		o.eventBuffer = n
	}
}

// NewSlogLogger builds a log/slog backed Logger.
//
// Parameters:
//   - w: Destination (os.Stderr if nil)
//   - level: "debug", "info", "warn" or "error"
//   - format: "text" or "json"
//
// Returns:
//   - Logger: Configured logger
//   - error: Unknown level or format
func NewSlogLogger(w io.Writer, level, format string) (Logger, error) {
	l, err := logging.New(w, level, format)
	if err != nil {
		return nil, err
	}

	return l, nil
}

// NewPrometheusMetrics builds a Prometheus-backed MetricsCollector.
//
// Metrics are registered with reg on first use. An empty namespace defaults to "rota".
//
// Example:
//
//	collector := rota.NewPrometheusMetrics(prometheus.DefaultRegisterer, "")
//	planner, err := rota.NewPlanner(&cfg, src, strat, rota.WithMetrics(collector))
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) MetricsCollector {
	return metrics.NewPrometheus(reg, namespace)
}
