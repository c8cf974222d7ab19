package commands

import (
	"context"
)

// UpdateInventoryItemCommandHandler handles patching of inventory item
// catalog fields. The aggregate applies the allow-list and appends an
// "updated" audit entry recording old and new values.
type UpdateInventoryItemCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewUpdateInventoryItemCommandHandler creates a handler for inventory item updates.
// Requires an InventoryUoWFactory for transactional persistence.
func NewUpdateInventoryItemCommandHandler(uowFactory InventoryUoWFactory) UpdateInventoryItemCommandHandler {
	return UpdateInventoryItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the inventory item update command.
// Loads the item, applies the patch, and persists the result atomically.
func (h *UpdateInventoryItemCommandHandler) Handle(ctx context.Context, cmd UpdateInventoryItemCommand) error {
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

	inventoryRepo := uow.InventoryRepository()
	item, err := inventoryRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = item.ApplyPatch(cmd.Patch(), cmd.Actor()); err != nil {
		return err
	}

	if err = inventoryRepo.Update(ctx, item); err != nil {
		return err
	}

	return commit(ctx, uow, "updateInventoryItem")
}
