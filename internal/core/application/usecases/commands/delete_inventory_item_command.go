package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrDeleteInventoryItemCommandIsNotConstructed = errors.New(
		"DeleteInventoryItemCommand must be created via NewDeleteInventoryItemCommand constructor",
	)
)

// DeleteInventoryItemCommand represents a request to permanently remove an
// inventory item. The deletion is irreversible; historical orders keep their
// line item snapshots and are not touched.
type DeleteInventoryItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	actor  kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteInventoryItemCommand creates a command to delete an inventory item.
func NewDeleteInventoryItemCommand(itemID, actor kernel.UUID) (DeleteInventoryItemCommand, error) {
	itemCommand := DeleteInventoryItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setItemID(itemID),
		itemCommand.setActor(actor),
	); err != nil {
		return DeleteInventoryItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteInventoryItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteInventoryItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to delete.
func (c DeleteInventoryItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Actor returns the identity performing the deletion.
func (c DeleteInventoryItemCommand) Actor() kernel.UUID {
	return c.actor
}

func (c *DeleteInventoryItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *DeleteInventoryItemCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
