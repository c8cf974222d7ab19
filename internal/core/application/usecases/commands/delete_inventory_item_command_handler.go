package commands

import (
	"context"
)

// DeleteInventoryItemCommandHandler handles permanent removal of inventory
// items. Deletion is not transactional with order operations: orders keep
// their snapshots, and a later stock restore for the deleted item is skipped.
type DeleteInventoryItemCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewDeleteInventoryItemCommandHandler creates a handler for inventory item deletion.
// Requires an InventoryUoWFactory for transactional persistence.
func NewDeleteInventoryItemCommandHandler(uowFactory InventoryUoWFactory) DeleteInventoryItemCommandHandler {
	return DeleteInventoryItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the inventory item deletion command.
// Returns ObjectNotFound if the item does not exist.
func (h *DeleteInventoryItemCommandHandler) Handle(ctx context.Context, cmd DeleteInventoryItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.InventoryRepository().Delete(ctx, cmd.ItemID()); err != nil {
		return err
	}

	return commit(ctx, uow, "deleteInventoryItem")
}
