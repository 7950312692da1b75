package rota

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/arloliu/rota/calendar"
	"github.com/arloliu/rota/eligibility"
	"github.com/arloliu/rota/internal/hooks"
	"github.com/arloliu/rota/internal/logger"
	"github.com/arloliu/rota/internal/metrics"
	"github.com/arloliu/rota/internal/seed"
	"github.com/arloliu/rota/render"
	"github.com/arloliu/rota/types"
)

// Planner owns the assignment session for one selected month.
//
// A Planner holds exactly one Assignment Map at a time. Selecting a month or
// refreshing profiles replaces it wholesale; manual overrides patch single
// slots. Readers always get copies, never the live map.
//
// Methods are safe for concurrent use, but a Planner models a single editor:
// concurrent overrides are serialized, not merged.
type Planner struct {
	cfg      Config
	source   ProfileSource
	strategy AssignmentStrategy
	filter   *eligibility.Filter
	calendar *calendar.Generator

	// Optional dependencies (never nil after NewPlanner)
	hooks     Hooks
	metrics   MetricsCollector
	logger    Logger
	publisher SchedulePublisher
	now       func() time.Time

	mu          sync.Mutex
	selected    bool
	month       Month
	dates       []Date
	profiles    []Profile
	assignments AssignmentMap
	overrides   AssignmentMap // manual overrides since the last month selection
	version     int64         // last published version of the current month

	subscribers      *xsync.Map[uint64, *eventSubscriber]
	nextSubscriberID atomic.Uint64
	eventBuffer      int
	closed           atomic.Bool
}

// NewPlanner creates a new Planner.
//
// No month is selected yet; call SelectMonth before reading assignments.
//
// Parameters:
//   - cfg: Configuration (defaults are applied in place, then validated)
//   - source: Profile source, re-read on every SelectMonth and Refresh
//   - strategy: Default assignment builder (recommended: strategy.NewGreedyRandom())
//   - opts: Optional configuration (hooks, metrics, logger, publisher)
//
// Returns:
//   - *Planner: Initialized planner
//   - error: Validation error if configuration is invalid
//
// Example:
//
//	cfg := rota.DefaultConfig()
//	src := source.NewStatic(profiles)
//	planner, err := rota.NewPlanner(&cfg, src, strategy.NewGreedyRandom())
//	if err != nil {
//	    return err
//	}
//	if err := planner.SelectMonth(ctx, "2024-06"); err != nil {
//	    return err
//	}
func NewPlanner(cfg *Config, source ProfileSource, strategy AssignmentStrategy, opts ...Option) (*Planner, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if source == nil {
		return nil, ErrProfileSourceRequired
	}
	if strategy == nil {
		return nil, ErrAssignmentStrategyRequired
	}

	SetDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &plannerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNop()
	}

	cfg.ValidateWithWarnings(loggerInstance)

	hooksInstance := hooks.NewNop()
	if options.hooks != nil {
		hooksInstance = hooks.Fill(*options.hooks)
	}

	now := options.now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}

	eventBuffer := options.eventBuffer
	if eventBuffer <= 0 {
		eventBuffer = DefaultEventBuffer
	}

	c := *cfg
	c.Roles = slices.Clone(cfg.Roles)
	c.MeetingDays = slices.Clone(cfg.MeetingDays)

	return &Planner{
		cfg:         c,
		source:      source,
		strategy:    strategy,
		filter:      eligibility.NewFilter(c.Pairing),
		calendar:    calendar.NewGenerator(c.Weekdays()...),
		hooks:       hooksInstance,
		metrics:     metricsCollector,
		logger:      loggerInstance,
		publisher:   options.publisher,
		now:         now,
		subscribers: xsync.NewMap[uint64, *eventSubscriber](),
		eventBuffer: eventBuffer,
	}, nil
}

// Config returns a copy of the planner configuration.
func (p *Planner) Config() Config {
	c := p.cfg
	c.Roles = slices.Clone(p.cfg.Roles)
	c.MeetingDays = slices.Clone(p.cfg.MeetingDays)

	return c
}

// Roles returns the role set in display order.
func (p *Planner) Roles() []Role {
	return slices.Clone(p.cfg.Roles)
}

// SelectMonth selects a month and builds its default assignments.
//
// The previous month's map, including any manual overrides, is discarded.
// On failure the previous selection stays intact.
//
// Parameters:
//   - ctx: Context for the profile source read
//   - key: Month key "YYYY-MM"
//
// Returns:
//   - error: ErrInvalidMonthKey, ErrProfileSourceFailed or ErrAssignmentFailed
func (p *Planner) SelectMonth(ctx context.Context, key string) error {
	month, err := types.ParseMonthKey(key)
	if err != nil {
		return err
	}

	profiles, err := p.loadProfiles(ctx)
	if err != nil {
		return err
	}

	p.mu.Lock()
	dates, asg, err := p.build(month, profiles, nil)
	if err != nil {
		p.mu.Unlock()
		p.reportError(ctx, err)

		return err
	}
	p.replace(month, dates, profiles, asg)
	p.overrides = types.NewAssignmentMap()
	schedule := p.snapshotLocked()
	p.mu.Unlock()

	p.afterBuild(ctx, schedule)

	return nil
}

// Refresh re-reads profiles and rebuilds the selected month.
//
// Manual overrides are discarded unless Config.PreserveOverrides is set, in
// which case overrides whose profile still exists are kept and the rest of
// the month is rebuilt around them.
//
// Returns:
//   - error: ErrNoMonthSelected, ErrProfileSourceFailed or ErrAssignmentFailed
func (p *Planner) Refresh(ctx context.Context) error {
	p.mu.Lock()
	selected := p.selected
	p.mu.Unlock()
	if !selected {
		return ErrNoMonthSelected
	}

	profiles, err := p.loadProfiles(ctx)
	if err != nil {
		return err
	}

	p.mu.Lock()
	var pinned AssignmentMap
	if p.cfg.PreserveOverrides {
		pinned = survivingOverrides(p.overrides, profiles)
	}
	month := p.month
	dates, asg, err := p.build(month, profiles, pinned)
	if err != nil {
		p.mu.Unlock()
		p.reportError(ctx, err)

		return err
	}
	p.replace(month, dates, profiles, asg)
	if pinned != nil {
		p.overrides = pinned
	} else {
		p.overrides = types.NewAssignmentMap()
	}
	schedule := p.snapshotLocked()
	p.mu.Unlock()

	p.afterBuild(ctx, schedule)

	return nil
}

// Month returns the selected month. ok is false until a month is selected.
func (p *Planner) Month() (month Month, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.month, p.selected
}

// Dates returns the selected month's meeting dates in ascending order.
func (p *Planner) Dates() []Date {
	p.mu.Lock()
	defer p.mu.Unlock()

	return slices.Clone(p.dates)
}

// Profiles returns the profiles the current map was built against.
func (p *Planner) Profiles() []Profile {
	p.mu.Lock()
	defer p.mu.Unlock()

	return types.CloneProfiles(p.profiles)
}

// Assignments returns a deep copy of the current Assignment Map.
func (p *Planner) Assignments() AssignmentMap {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.assignments.Clone()
}

// Overrides returns a deep copy of the manual overrides made since the month
// was selected (or kept across refreshes).
func (p *Planner) Overrides() AssignmentMap {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.overrides.Clone()
}

// Eligible lists the profiles that could take (dateKey, role) given the
// current map, in profile order. It guides manual selection; Assign does not
// enforce it.
//
// Returns:
//   - []Profile: Eligible profiles (empty, never nil, when none qualify)
//   - error: ErrInvalidDateKey or ErrNoMonthSelected
func (p *Planner) Eligible(dateKey string, role Role) ([]Profile, error) {
	date, err := types.ParseDateKey(dateKey)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.selected {
		return nil, ErrNoMonthSelected
	}

	return p.filter.Eligible(date, role, p.profiles, p.assignments), nil
}

// Assign overwrites the (dateKey, role) slot with profileID.
//
// Manual edits are trusted: no qualification, double-booking or pairing check
// is made and the call never fails. An empty profileID clears the slot.
//
// Returns:
//   - string: The profile ID previously in the slot ("" if unset)
func (p *Planner) Assign(ctx context.Context, dateKey string, role Role, profileID string) string {
	p.mu.Lock()
	if p.assignments == nil {
		p.assignments = types.NewAssignmentMap()
	}
	if p.overrides == nil {
		p.overrides = types.NewAssignmentMap()
	}
	previous := p.assignments.Set(dateKey, role, profileID)
	p.overrides.Set(dateKey, role, profileID)
	month := p.month
	p.mu.Unlock()

	p.metrics.RecordOverride(role)
	p.logger.Debug("assignment overridden",
		"date", dateKey,
		"role", role,
		"previous", previous,
		"profile_id", profileID,
	)

	if err := p.hooks.OnAssignmentOverridden(ctx, dateKey, role, previous, profileID); err != nil {
		p.logger.Warn("override hook error", "date", dateKey, "role", role, "error", err)
	}
	p.emit(Event{Kind: EventOverridden, Month: month, DateKey: dateKey, Role: role, ProfileID: profileID})

	return previous
}

// AssignedName returns the display name assigned to (dateKey, role), or
// Config.UnassignedLabel when the slot is unset or its profile is gone.
func (p *Planner) AssignedName(dateKey string, role Role) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return types.ResolveAssignedName(p.assignments, p.profiles, dateKey, role, p.cfg.UnassignedLabel)
}

// Schedule returns an immutable snapshot of the selected month.
//
// Returns:
//   - Schedule: Deep copy of dates, roles, assignments and profiles
//   - error: ErrNoMonthSelected
func (p *Planner) Schedule() (Schedule, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.selected {
		return Schedule{}, ErrNoMonthSelected
	}

	return p.snapshotLocked(), nil
}

// Table renders the selected month as a table using the configured labels.
func (p *Planner) Table() (render.Table, error) {
	s, err := p.Schedule()
	if err != nil {
		return render.Table{}, err
	}

	return render.NewTable(s, p.cfg.RenderOptions()), nil
}

// Publish publishes the current schedule through the configured publisher.
//
// If ctx has no deadline, Config.Publish.OperationTimeout applies.
//
// Returns:
//   - int64: Version assigned by the publisher
//   - error: ErrPublisherRequired, ErrNoMonthSelected or ErrPublishFailed
func (p *Planner) Publish(ctx context.Context) (int64, error) {
	if p.publisher == nil {
		return 0, ErrPublisherRequired
	}

	schedule, err := p.Schedule()
	if err != nil {
		return 0, err
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.Publish.OperationTimeout)
		defer cancel()
	}

	version, err := p.publisher.Publish(ctx, schedule)
	if err != nil {
		if !errors.Is(err, ErrPublishFailed) {
			err = fmt.Errorf("%w: %w", ErrPublishFailed, err)
		}
		p.reportError(ctx, err)

		return 0, err
	}

	p.mu.Lock()
	if p.selected && p.month == schedule.Month {
		p.version = version
	}
	p.mu.Unlock()

	p.logger.Debug("planner schedule version updated", "month", schedule.Month.Key(), "version", version)

	return version, nil
}

// Subscribe returns a channel of planner events.
//
// The channel is buffered; events are dropped (and counted) when a subscriber
// falls behind. The channel is closed by unsubscribe or Close.
//
// Returns:
//   - <-chan Event: Event stream
//   - func(): Unsubscribe function, safe to call more than once
//
// Example:
//
//	events, unsubscribe := planner.Subscribe()
//	defer unsubscribe()
//	for ev := range events {
//	    fmt.Println(ev.Kind, ev.Month)
//	}
func (p *Planner) Subscribe() (<-chan Event, func()) {
	sub := &eventSubscriber{ch: make(chan Event, p.eventBuffer)}
	if p.closed.Load() {
		sub.close()
		return sub.ch, func() {}
	}

	id := p.nextSubscriberID.Add(1)
	p.subscribers.Store(id, sub)

	// Close may have run between the check and the store.
	if p.closed.Load() {
		p.removeSubscriber(id)
	}

	return sub.ch, func() { p.removeSubscriber(id) }
}

// Close closes every subscriber channel. The planner stays usable, but later
// Subscribe calls return closed channels.
func (p *Planner) Close() {
	if !p.closed.CompareAndSwap(false, true) {
		return
	}

	p.subscribers.Range(func(id uint64, _ *eventSubscriber) bool {
		p.removeSubscriber(id)
		return true
	})
}

func (p *Planner) removeSubscriber(id uint64) {
	if sub, ok := p.subscribers.LoadAndDelete(id); ok {
		sub.close()
	}
}

func (p *Planner) emit(ev Event) {
	p.subscribers.Range(func(_ uint64, sub *eventSubscriber) bool {
		if !sub.trySend(ev) {
			p.metrics.RecordEventDropped()
		}

		return true
	})
}

// loadProfiles reads the profile source and records the outcome.
func (p *Planner) loadProfiles(ctx context.Context) ([]Profile, error) {
	profiles, err := p.source.ListProfiles(ctx)
	if err != nil {
		p.metrics.RecordProfileRefresh(0, false)
		err = fmt.Errorf("%w: %w", ErrProfileSourceFailed, err)
		p.reportError(ctx, err)

		return nil, err
	}
	p.metrics.RecordProfileRefresh(len(profiles), true)

	return profiles, nil
}

// build generates dates and default assignments. Must be called with p.mu held.
func (p *Planner) build(month Month, profiles []Profile, pinned AssignmentMap) ([]Date, AssignmentMap, error) {
	start := time.Now()
	dates := p.calendar.Generate(month)

	req := BuildRequest{
		Dates:    dates,
		Roles:    slices.Clone(p.cfg.Roles),
		Profiles: profiles,
		Filter:   p.filter,
		Pinned:   pinned,
		Seed:     seed.ForMonth(p.cfg.Seed, month),
	}
	asg, err := p.strategy.Build(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: month %s: %w", ErrAssignmentFailed, month.Key(), err)
	}

	filled, unfilled := 0, 0
	for _, d := range dates {
		for _, r := range p.cfg.Roles {
			if _, ok := asg.Get(d.Key(), r); ok {
				filled++
				continue
			}
			unfilled++
			p.metrics.RecordUnfilledSlot(r)
		}
	}

	p.metrics.RecordBuild(month.Key(), time.Since(start).Seconds(), filled, unfilled)
	p.logger.Info("schedule built",
		"month", month.Key(),
		"dates", len(dates),
		"profiles", len(profiles),
		"filled", filled,
		"unfilled", unfilled,
		"pinned", pinned.Filled(),
	)

	return dates, asg, nil
}

// replace swaps in a freshly built month. Must be called with p.mu held.
func (p *Planner) replace(month Month, dates []Date, profiles []Profile, asg AssignmentMap) {
	if !p.selected || p.month != month {
		p.version = 0
	}
	p.selected = true
	p.month = month
	p.dates = dates
	p.profiles = types.CloneProfiles(profiles)
	p.assignments = asg
}

// snapshotLocked copies the current state. Must be called with p.mu held.
func (p *Planner) snapshotLocked() Schedule {
	return Schedule{
		Version:     p.version,
		Month:       p.month,
		Roles:       slices.Clone(p.cfg.Roles),
		Dates:       slices.Clone(p.dates),
		Assignments: p.assignments.Clone(),
		Profiles:    types.CloneProfiles(p.profiles),
		GeneratedAt: p.now(),
	}
}

func (p *Planner) afterBuild(ctx context.Context, schedule Schedule) {
	if err := p.hooks.OnScheduleBuilt(ctx, schedule); err != nil {
		p.logger.Warn("schedule built hook error", "month", schedule.Month.Key(), "error", err)
	}
	p.emit(Event{Kind: EventRebuilt, Month: schedule.Month})
}

func (p *Planner) reportError(ctx context.Context, err error) {
	p.logger.Error("planner operation failed", "error", err)
	if hookErr := p.hooks.OnError(ctx, err); hookErr != nil {
		p.logger.Warn("error hook error", "error", hookErr)
	}
}

// survivingOverrides keeps the overrides whose profile is still present.
// Cleared slots are not carried over.
func survivingOverrides(overrides AssignmentMap, profiles []Profile) AssignmentMap {
	out := types.NewAssignmentMap()
	for dateKey, roles := range overrides {
		for role, id := range roles {
			if _, ok := types.FindProfile(profiles, id); ok {
				out.Set(dateKey, role, id)
			}
		}
	}

	return out
}
