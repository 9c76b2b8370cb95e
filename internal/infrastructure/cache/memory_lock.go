// Package cache holds the Redis client plumbing and the per-order lock
// implementations backing the audit workflow.
package cache

import (
	"context"
	"sync"

	"github.com/morvy/kybernaut-ic-dic/internal/domain/shared"
)

// InMemoryOrderLock implements OrderLocker with process-local mutexes.
// Suitable for single-instance deployments.
type InMemoryOrderLock struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	ch   chan struct{}
	refs int
}

// NewInMemoryOrderLock creates a new in-memory order lock
func NewInMemoryOrderLock() *InMemoryOrderLock {
	return &InMemoryOrderLock{locks: make(map[string]*entry)}
}

// Acquire blocks until the lock for key is held or ctx is done.
func (l *InMemoryOrderLock) Acquire(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		e.ch <- struct{}{}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	select {
	case <-e.ch:
		return func() { l.release(key, e) }, nil
	case <-ctx.Done():
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
		return nil, shared.ErrLockTimeout
	}
}

func (l *InMemoryOrderLock) release(key string, e *entry) {
	l.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(l.locks, key)
	} else {
		e.ch <- struct{}{}
	}
	l.mu.Unlock()
}

// Ensure InMemoryOrderLock implements OrderLocker
var _ shared.OrderLocker = (*InMemoryOrderLock)(nil)
