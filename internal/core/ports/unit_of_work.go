package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
//
// The unit of work is the system's only atomicity mechanism: every command
// handler begins one, performs all reads, ledger adjustments, and aggregate
// writes through its repositories, and commits. Any error before Commit
// rolls the whole transaction back, leaving stock and aggregates untouched.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// InventoryRepository returns an InventoryRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	InventoryRepository() InventoryRepository

	// OrderRepository returns an OrderRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	OrderRepository() OrderRepository

	// DispatchRepository returns a DispatchRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	DispatchRepository() DispatchRepository
}
