package billing

import (
	"context"

	"github.com/google/uuid"
)

// OrderRepository is the order-store contract the audit workflow runs
// against. FindByID returns shared.ErrNotFound for unknown orders.
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// SaveMetadata flushes the order's staged metadata changes. A call
	// with no staged changes is a no-op.
	SaveMetadata(ctx context.Context, order *Order) error

	// AddNote appends a note to the order's activity trail.
	AddNote(ctx context.Context, orderID uuid.UUID, note Note) error
}
