package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted; their lifecycle ends in a terminal status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage, including its line
	// items and audit history. Returns a DuplicateKey error if the order
	// number is already in use.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Only the status and newly appended audit entries change after
	// creation; line items and the total amount are immutable.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// its line items and audit history. Returns ObjectNotFound if absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
