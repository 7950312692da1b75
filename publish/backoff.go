package publish

import (
	"context"
	rand "math/rand/v2"
	"time"
)

// Retry pacing between conflicting publishes.
const (
	conflictBackoffBase = 20 * time.Millisecond
	conflictBackoffMult = 2.0
	conflictBackoffCap  = 250 * time.Millisecond
)

// jitterBackoff returns the next delay for decorrelated jitter backoff.
//
// The delay grows from base by up to mult times the previous delay and never
// exceeds capDur (when capDur > 0). A nil rng uses the package-level source.
func jitterBackoff(prev, base time.Duration, mult float64, capDur time.Duration, rng *rand.Rand) time.Duration {
	if base <= 0 {
		base = conflictBackoffBase
	}
	if mult < 1.0 {
		mult = 1.0
	}
	if capDur > 0 && capDur < base {
		return capDur
	}
	if prev <= 0 {
		return base
	}

	span := time.Duration(float64(prev)*mult) - base
	if span <= 0 {
		span = base
	}

	var jitter int64
	if rng != nil {
		jitter = rng.Int64N(int64(span))
	} else {
		jitter = rand.Int64N(int64(span)) //nolint:gosec // non-crypto backoff jitter
	}

	next := base + time.Duration(jitter)
	if capDur > 0 && next > capDur {
		return capDur
	}

	return next
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
