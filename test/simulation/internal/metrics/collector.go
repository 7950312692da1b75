package metrics

import (
	"context"
	"slices"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/rota/types"
)

// Summary aggregates the schedules built by one strategy.
type Summary struct {
	Strategy  string
	Schedules int
	Slots     int
	Filled    int

	// MaxSpread is the largest gap, within one schedule, between the busiest
	// and the least busy volunteer qualified for at least one role.
	MaxSpread int

	// MeanSpread averages that gap over all schedules.
	MeanSpread float64
}

// FillRate returns the share of filled slots.
func (s Summary) FillRate() float64 {
	if s.Slots == 0 {
		return 0
	}

	return float64(s.Filled) / float64(s.Slots)
}

// Collector collects per-strategy schedule statistics and mirrors them to Prometheus.
type Collector struct {
	mu        sync.Mutex
	summaries map[string]*Summary
	spreadSum map[string]int

	fillRatio *prometheus.GaugeVec
	spread    *prometheus.HistogramVec
}

// NewCollector creates a new metrics collector registered with reg.
//
// Returns:
//   - *Collector: Initialized metrics collector
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		summaries: make(map[string]*Summary),
		spreadSum: make(map[string]int),
		fillRatio: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "simulation_fill_ratio",
			Help: "Filled slot ratio per strategy.",
		}, []string{"strategy"}),
		spread: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "simulation_assignment_spread",
			Help:    "Busiest minus least busy volunteer, per schedule.",
			Buckets: prometheus.LinearBuckets(0, 1, 10),
		}, []string{"strategy"}),
	}
	reg.MustRegister(c.fillRatio, c.spread)

	return c
}

// OnScheduleBuilt returns a hook that records schedules under strategy.
func (c *Collector) OnScheduleBuilt(strategy string) func(context.Context, types.Schedule) error {
	return func(_ context.Context, s types.Schedule) error {
		c.Record(strategy, s)
		return nil
	}
}

// Record adds one schedule to strategy's summary.
func (c *Collector) Record(strategy string, s types.Schedule) {
	slots := len(s.Dates) * len(s.Roles)
	filled := slots - s.Unfilled()
	spread := Spread(s)

	c.mu.Lock()
	defer c.mu.Unlock()

	sum, ok := c.summaries[strategy]
	if !ok {
		sum = &Summary{Strategy: strategy}
		c.summaries[strategy] = sum
	}
	sum.Schedules++
	sum.Slots += slots
	sum.Filled += filled
	sum.MaxSpread = max(sum.MaxSpread, spread)
	c.spreadSum[strategy] += spread
	sum.MeanSpread = float64(c.spreadSum[strategy]) / float64(sum.Schedules)

	c.fillRatio.WithLabelValues(strategy).Set(sum.FillRate())
	c.spread.WithLabelValues(strategy).Observe(float64(spread))
}

// Summaries returns the summaries sorted by strategy name.
func (c *Collector) Summaries() []Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Summary, 0, len(c.summaries))
	for _, s := range c.summaries {
		out = append(out, *s)
	}
	slices.SortFunc(out, func(a, b Summary) int {
		switch {
		case a.Strategy < b.Strategy:
			return -1
		case a.Strategy > b.Strategy:
			return 1
		default:
			return 0
		}
	})

	return out
}

// Spread computes the assignment spread of one schedule over the volunteers
// qualified for at least one of its roles.
func Spread(s types.Schedule) int {
	counts := make(map[string]int)
	for _, p := range s.Profiles {
		for _, r := range s.Roles {
			if p.QualifiedFor(r) {
				counts[p.ID] = 0
				break
			}
		}
	}
	if len(counts) == 0 {
		return 0
	}

	for _, d := range s.Dates {
		for _, r := range s.Roles {
			if id, ok := s.Assignments.Get(d.Key(), r); ok {
				if _, tracked := counts[id]; tracked {
					counts[id]++
				}
			}
		}
	}

	lo, hi := -1, 0
	for _, n := range counts {
		if lo < 0 || n < lo {
			lo = n
		}
		hi = max(hi, n)
	}

	return hi - lo
}
