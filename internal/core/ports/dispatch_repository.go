package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/dispatch"
	"fulfillment/internal/core/domain/model/kernel"
)

// DispatchRepository defines the persistence contract for dispatch order
// aggregates. A unique constraint on the order reference enforces the
// one-dispatch-per-order rule at the storage level.
type DispatchRepository interface {
	// Add persists a new dispatch order aggregate to storage.
	// Returns a DuplicateKey error if a dispatch order already exists for
	// the referenced order.
	Add(ctx context.Context, aggregate *dispatch.DispatchOrder) error

	// Update persists changes to an existing dispatch order aggregate.
	Update(ctx context.Context, aggregate *dispatch.DispatchOrder) error

	// Get retrieves a dispatch order aggregate by its unique identifier,
	// including its audit history. Returns ObjectNotFound if absent.
	Get(ctx context.Context, id kernel.UUID) (*dispatch.DispatchOrder, error)

	// GetByOrderID retrieves the dispatch order shipping the given customer
	// order. Returns ObjectNotFound when the order has no dispatch yet;
	// callers use this for conflict detection before creating one.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*dispatch.DispatchOrder, error)
}
