package shared

import "context"

// OrderLocker serializes workflows that mutate a single order.
// Implementations must be safe for concurrent use; locks for different
// keys are independent.
type OrderLocker interface {
	// Acquire blocks until the lock for key is held or ctx is done.
	// The returned release function must be called exactly once.
	Acquire(ctx context.Context, key string) (release func(), err error)
}
