// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// InventoryRepoFactory provides access to the inventory repository within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DispatchRepoFactory provides access to the dispatch repository within a transaction.
	DispatchRepoFactory interface {
		DispatchRepository() ports.DispatchRepository
	}

	// InventoryUoW manages transactions for inventory-only operations.
	// Used when commands only modify inventory item aggregates.
	InventoryUoW interface {
		TxManager
		InventoryRepoFactory
	}

	// InventoryUoWFactory creates new inventory unit of work instances.
	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// OrderUoW manages transactions across order aggregates and the stock
	// ledger. Order creation reserves stock and order cancellation restores
	// it, so every order command needs both repositories in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   inventoryRepo := uow.InventoryRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... reserve stock, persist the order
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		InventoryRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DispatchUoW manages transactions across dispatch and order aggregates.
	// Creating a dispatch moves the order to processing and delivering one
	// completes it, both in the same transaction as the dispatch write.
	DispatchUoW interface {
		TxManager
		DispatchRepoFactory
		OrderRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}
)

// commit finalizes the unit of work. A storage-layer commit failure,
// including a conflicting concurrent write, surfaces as TransactionAborted;
// the handler never retries, that decision belongs to the caller.
func commit(ctx context.Context, tx TxManager, operation string) error {
	if err := tx.Commit(ctx); err != nil {
		return errs.NewTransactionAbortedError(operation, err)
	}
	return nil
}
