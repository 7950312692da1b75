package rota

import "sync"

// eventSubscriber is one Subscribe call's channel.
type eventSubscriber struct {
	ch     chan Event
	mu     sync.Mutex
	closed bool
}

// trySend delivers ev without blocking. It reports false when the event was
// dropped because the subscriber's buffer is full.
func (s *eventSubscriber) trySend(ev Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return true
	}

	select {
	case s.ch <- ev:
		return true
	default:
		return false
	}
}

// close safely closes the subscriber's channel.
func (s *eventSubscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}
