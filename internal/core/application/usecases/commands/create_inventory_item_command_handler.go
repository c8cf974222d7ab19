package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/inventory"
)

// CreateInventoryItemCommandHandler handles the business logic for registering
// new inventory items. The product code's uniqueness is enforced by the
// storage layer; a violation surfaces as a DuplicateKey error.
type CreateInventoryItemCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewCreateInventoryItemCommandHandler creates a handler for inventory item creation.
// Requires an InventoryUoWFactory for transactional persistence.
func NewCreateInventoryItemCommandHandler(uowFactory InventoryUoWFactory) CreateInventoryItemCommandHandler {
	return CreateInventoryItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the inventory item creation command.
// Creates the item with its opening stock and a "created" audit entry.
func (h *CreateInventoryItemCommandHandler) Handle(ctx context.Context, cmd CreateInventoryItemCommand) error {
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
	item, err := inventory.NewItem(
		cmd.ItemID(),
		cmd.ProductName(),
		cmd.ProductCode(),
		cmd.Quantity(),
		cmd.UnitPrice(),
		cmd.Category(),
		cmd.StorageLocation(),
		cmd.Actor(),
	)
	if err != nil {
		return err
	}

	if err = inventoryRepo.Add(ctx, item); err != nil {
		return err
	}

	return commit(ctx, uow, "createInventoryItem")
}
