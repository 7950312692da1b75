package publish

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/arloliu/rota/internal/kvutil"
	"github.com/arloliu/rota/internal/logger"
	"github.com/arloliu/rota/internal/metrics"
	"github.com/arloliu/rota/internal/natsutil"
	"github.com/arloliu/rota/types"
)

// Defaults for publisher configuration.
const (
	DefaultBucket    = "rota-schedules"
	DefaultKeyPrefix = "schedule"
	DefaultHistory   = 5

	// maxPublishAttempts bounds retries when another writer bumps the revision concurrently.
	maxPublishAttempts = 3
)

// ErrScheduleNotFound is returned by Latest when a month has never been published.
var ErrScheduleNotFound = errors.New("schedule not found")

// KVPublisher publishes schedule snapshots to NATS KV.
//
// KVPublisher is safe for concurrent use; version monotonicity is enforced by
// the bucket revision, not by local state, so several publishers may share a bucket.
type KVPublisher struct {
	kv        jetstream.KeyValue
	keyPrefix string // cached "prefix."

	logger  types.Logger
	metrics types.PublishMetrics
}

var _ types.SchedulePublisher = (*KVPublisher)(nil)

// Option configures a KVPublisher.
type Option func(*KVPublisher)

// WithKeyPrefix sets the key prefix (default "schedule").
func WithKeyPrefix(prefix string) Option {
	return func(p *KVPublisher) {
		if prefix != "" {
			p.keyPrefix = strings.TrimSuffix(prefix, ".") + "."
		}
	}
}

// WithLogger sets the publisher logger.
func WithLogger(l types.Logger) Option {
	return func(p *KVPublisher) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithMetrics sets the publish metrics collector.
func WithMetrics(m types.PublishMetrics) Option {
	return func(p *KVPublisher) {
		if m != nil {
			p.metrics = m
		}
	}
}

// NewKVPublisher creates a publisher over an open KV bucket.
//
// Parameters:
//   - kv: NATS KV bucket for schedules
//   - opts: Optional configuration (WithKeyPrefix, WithLogger, WithMetrics)
//
// Returns:
//   - *KVPublisher: A new publisher instance
func NewKVPublisher(kv jetstream.KeyValue, opts ...Option) *KVPublisher {
	p := &KVPublisher{
		kv:        kv,
		keyPrefix: DefaultKeyPrefix + ".",
		logger:    logger.NewNop(),
		metrics:   metrics.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Open creates or opens the schedule bucket and returns a publisher for it.
//
// Parameters:
//   - ctx: Context for bucket creation
//   - js: JetStream context
//   - bucket: Bucket name ("" means DefaultBucket)
//   - opts: Publisher options
//
// Returns:
//   - *KVPublisher: Publisher bound to the bucket
//   - error: Bucket creation failure
//
// Example:
//
//	js, _ := jetstream.New(nc)
//	pub, err := publish.Open(ctx, js, "rota-schedules")
//	planner, err := rota.NewPlanner(&cfg, src, strat, rota.WithPublisher(pub))
func Open(ctx context.Context, js jetstream.JetStream, bucket string, opts ...Option) (*KVPublisher, error) {
	if bucket == "" {
		bucket = DefaultBucket
	}
	kv, err := kvutil.EnsureKVBucketWithRetry(ctx, js, jetstream.KeyValueConfig{
		Bucket:      bucket,
		Description: "rota published schedules",
		History:     DefaultHistory,
	}, 3)
	if err != nil {
		return nil, err
	}

	return NewKVPublisher(kv, opts...), nil
}

// Key returns the bucket key for a month.
func (p *KVPublisher) Key(month types.Month) string {
	return p.keyPrefix + month.Key()
}

// Publish stores a schedule snapshot under its month key.
//
// The stored version is one more than the currently stored version (1 for a
// first publish). The write is conditional on the revision that was read, and
// is retried with jittered backoff when another writer got there first.
//
// Parameters:
//   - ctx: Context for cancellation
//   - schedule: Snapshot to publish (its Version field is overwritten)
//
// Returns:
//   - int64: Stored version
//   - error: types.ErrPublishFailed wrapping the cause
func (p *KVPublisher) Publish(ctx context.Context, schedule types.Schedule) (int64, error) {
	start := time.Now()
	key := p.Key(schedule.Month)

	var (
		lastErr error
		delay   time.Duration
	)
	for attempt := 0; attempt < maxPublishAttempts; attempt++ {
		if attempt > 0 {
			delay = jitterBackoff(delay, conflictBackoffBase, conflictBackoffMult, conflictBackoffCap, nil)
			if err := sleepContext(ctx, delay); err != nil {
				break
			}
		}

		version, err := p.publishOnce(ctx, key, schedule)
		if err == nil {
			p.metrics.RecordPublish(true, time.Since(start).Seconds())
			p.logger.Info("schedule published", "month", schedule.Month.Key(), "version", version, "key", key)

			return version, nil
		}
		lastErr = err

		if !isRevisionConflict(err) || ctx.Err() != nil {
			break
		}
		p.logger.Debug("schedule revision conflict, retrying", "key", key, "attempt", attempt+1)
	}

	p.metrics.RecordPublish(false, time.Since(start).Seconds())
	if natsutil.IsConnectivityError(lastErr) {
		p.logger.Warn("schedule publish failed: NATS unavailable", "month", schedule.Month.Key(), "error", lastErr)
	} else {
		p.logger.Error("schedule publish failed", "month", schedule.Month.Key(), "error", lastErr)
	}

	return 0, fmt.Errorf("%w: %w", types.ErrPublishFailed, lastErr)
}

func (p *KVPublisher) publishOnce(ctx context.Context, key string, schedule types.Schedule) (int64, error) {
	var (
		revision uint64
		current  int64
	)

	entry, err := p.kv.Get(ctx, key)
	switch {
	case err == nil:
		revision = entry.Revision()
		var stored types.Schedule
		if err := json.Unmarshal(entry.Value(), &stored); err != nil {
			p.logger.Warn("ignoring undecodable stored schedule", "key", key, "error", err)
		} else {
			current = stored.Version
		}
	case errors.Is(err, jetstream.ErrKeyNotFound), errors.Is(err, jetstream.ErrKeyDeleted):
	default:
		return 0, fmt.Errorf("failed to read %s: %w", key, err)
	}

	schedule.Version = current + 1
	data, err := json.Marshal(schedule)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal schedule: %w", err)
	}

	if revision == 0 {
		_, err = p.kv.Create(ctx, key, data)
	} else {
		_, err = p.kv.Update(ctx, key, data, revision)
	}
	if err != nil {
		return 0, err
	}

	return schedule.Version, nil
}

// Latest returns the most recently published schedule for month.
//
// Returns:
//   - types.Schedule: Stored snapshot
//   - error: ErrScheduleNotFound if the month was never published
func (p *KVPublisher) Latest(ctx context.Context, month types.Month) (types.Schedule, error) {
	entry, err := p.kv.Get(ctx, p.Key(month))
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) || errors.Is(err, jetstream.ErrKeyDeleted) {
			return types.Schedule{}, fmt.Errorf("%w: %s", ErrScheduleNotFound, month.Key())
		}

		return types.Schedule{}, fmt.Errorf("failed to read schedule: %w", err)
	}

	var s types.Schedule
	if err := json.Unmarshal(entry.Value(), &s); err != nil {
		return types.Schedule{}, fmt.Errorf("failed to decode schedule: %w", err)
	}

	return s, nil
}

// Months lists the published months in ascending order.
func (p *KVPublisher) Months(ctx context.Context) ([]types.Month, error) {
	keys, err := kvutil.KeysWithPrefix(ctx, p.kv, p.keyPrefix)
	if err != nil {
		return nil, err
	}

	months := make([]types.Month, 0, len(keys))
	for _, key := range keys {
		m, err := types.ParseMonthKey(strings.TrimPrefix(key, p.keyPrefix))
		if err != nil {
			p.logger.Debug("skipping non-schedule key", "key", key)
			continue
		}
		months = append(months, m)
	}

	return months, nil
}

// Delete removes a month's published schedule. Deleting an unpublished month is not an error.
func (p *KVPublisher) Delete(ctx context.Context, month types.Month) error {
	if err := p.kv.Delete(ctx, p.Key(month)); err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}

	return nil
}

// isRevisionConflict reports whether err means the key changed since it was read.
func isRevisionConflict(err error) bool {
	if errors.Is(err, jetstream.ErrKeyExists) {
		return true
	}
	var apiErr *jetstream.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode == jetstream.JSErrCodeStreamWrongLastSequence {
		return true
	}

	return strings.Contains(err.Error(), "wrong last sequence")
}
