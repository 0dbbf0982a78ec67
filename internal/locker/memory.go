package locker

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type slot struct {
	ch   chan struct{}
	refs int
}

// Memory is an in-process keyed mutex. It only serializes callers inside one
// process; run Redis when more than one instance serves bookings.
type Memory struct {
	wait time.Duration

	mu    sync.Mutex
	slots map[string]*slot
}

func NewMemory(wait time.Duration) *Memory {
	return &Memory{
		wait:  wait,
		slots: make(map[string]*slot),
	}
}

func (m *Memory) Lock(ctx context.Context, key string) (func(), error) {
	if m.wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.wait)
		defer cancel()
	}

	s := m.acquireSlot(key)

	select {
	case s.ch <- struct{}{}:
	case <-ctx.Done():
		m.releaseSlot(key, s)
		return nil, fmt.Errorf("%w: %s: %v", ErrNotAcquired, key, ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-s.ch
			m.releaseSlot(key, s)
		})
	}, nil
}

func (m *Memory) acquireSlot(key string) *slot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.slots[key]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		m.slots[key] = s
	}
	s.refs++
	return s
}

func (m *Memory) releaseSlot(key string, s *slot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s.refs--
	if s.refs == 0 {
		delete(m.slots, key)
	}
}

// held reports how many keys currently have waiters or holders.
func (m *Memory) held() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.slots)
}

var _ Locker = (*Memory)(nil)
