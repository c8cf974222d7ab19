package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// InventoryRepository defines the persistence contract for inventory item
// aggregates, including the stock ledger operations that adjust quantities.
//
// Reserve and Release are the ONLY ways stored quantities change after an
// item is created. Both execute as single conditional SQL statements inside
// the caller's transaction, so concurrent reservations are serialized by the
// database rather than by in-process locks.
type InventoryRepository interface {
	// Add persists a new inventory item aggregate to storage.
	// Returns a DuplicateKey error if the product code is already in use.
	Add(ctx context.Context, aggregate *inventory.Item) error

	// Update persists changes to an existing inventory item aggregate.
	// The item must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *inventory.Item) error

	// Get retrieves an inventory item aggregate by its unique identifier,
	// including its audit history. Returns ObjectNotFound if absent.
	Get(ctx context.Context, id kernel.UUID) (*inventory.Item, error)

	// Delete removes an inventory item permanently. Historical orders keep
	// their line item snapshots; the deletion is irreversible.
	// Returns ObjectNotFound if the item does not exist.
	Delete(ctx context.Context, id kernel.UUID) error

	// Reserve atomically decrements the item's quantity by qty and returns
	// the item's current unit price as the authoritative price snapshot.
	// The decrement is a single conditional UPDATE; it fails with
	// InsufficientStock when the stored quantity is below qty, and with
	// ObjectNotFound when the item does not exist. A stock-adjusted audit
	// row recording {orderId, quantityReduced} is written in the same
	// transaction.
	Reserve(ctx context.Context, productID kernel.UUID, qty int, actor, orderID kernel.UUID) (decimal.Decimal, error)

	// Release atomically increments the item's quantity by qty, writing a
	// stock-adjusted audit row recording {orderId, quantityRestored} in the
	// same transaction. Returns ObjectNotFound when the item no longer
	// exists; callers restoring stock during cancellation may treat that as
	// non-fatal.
	Release(ctx context.Context, productID kernel.UUID, qty int, actor, orderID kernel.UUID) error
}
