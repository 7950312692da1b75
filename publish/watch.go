package publish

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/arloliu/rota/types"
)

// watchBuffer is the capacity of the channel returned by Watch.
const watchBuffer = 8

// Watch streams published schedules until ctx is cancelled.
//
// Already published schedules are replayed first unless updatesOnly is set.
// Deletions are skipped, and so is any schedule whose version is not newer
// than the last one delivered for its month.
//
// Parameters:
//   - ctx: Watch lifetime; the channel is closed when ctx is done
//   - updatesOnly: Skip the replay of existing schedules
//
// Returns:
//   - <-chan types.Schedule: Schedule stream
//   - error: Watcher creation failure
//
// Example:
//
//	schedules, err := pub.Watch(ctx, false)
//	if err != nil {
//	    return err
//	}
//	for s := range schedules {
//	    fmt.Println(s.Month, s.Version)
//	}
func (p *KVPublisher) Watch(ctx context.Context, updatesOnly bool) (<-chan types.Schedule, error) {
	var opts []jetstream.WatchOpt
	if updatesOnly {
		opts = append(opts, jetstream.UpdatesOnly())
	}

	watcher, err := p.kv.Watch(ctx, p.keyPrefix+"*", opts...)
	if err != nil {
		return nil, err
	}

	out := make(chan types.Schedule, watchBuffer)
	go p.watchLoop(ctx, watcher, out)

	return out, nil
}

func (p *KVPublisher) watchLoop(ctx context.Context, watcher jetstream.KeyWatcher, out chan<- types.Schedule) {
	defer close(out)
	defer func() {
		if err := watcher.Stop(); err != nil {
			p.logger.Debug("failed to stop schedule watcher", "error", err)
		}
	}()

	delivered := make(map[string]int64)
	for {
		select {
		case <-ctx.Done():
			p.logger.Debug("schedule watcher stopping (context cancelled)")
			return
		case entry, ok := <-watcher.Updates():
			if !ok {
				return
			}
			if entry == nil {
				// End of initial values replay.
				continue
			}
			switch entry.Operation() {
			case jetstream.KeyValueDelete, jetstream.KeyValuePurge:
				// A republished month restarts at version 1.
				delete(delivered, entry.Key())
				continue
			case jetstream.KeyValuePut:
			default:
				continue
			}

			var s types.Schedule
			if err := json.Unmarshal(entry.Value(), &s); err != nil {
				p.logger.Warn("ignoring undecodable schedule", "key", entry.Key(), "error", err)
				continue
			}
			if s.Version <= delivered[entry.Key()] {
				continue
			}
			delivered[entry.Key()] = s.Version

			select {
			case out <- s:
			case <-ctx.Done():
				return
			}
		}
	}
}
