package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrUpdateInventoryItemCommandIsNotConstructed = errors.New(
		"UpdateInventoryItemCommand must be created via NewUpdateInventoryItemCommand constructor",
	)
)

// UpdateInventoryItemCommand represents a request to patch an inventory item's
// catalog fields. The patch is an explicit allow-list; stock quantity is not
// patchable and only changes through the reservation ledger.
type UpdateInventoryItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	patch  inventory.Patch
	actor  kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateInventoryItemCommand creates a command to patch an inventory item.
// An empty patch is valid and results in no change.
func NewUpdateInventoryItemCommand(
	itemID kernel.UUID,
	patch inventory.Patch,
	actor kernel.UUID,
) (UpdateInventoryItemCommand, error) {
	itemCommand := UpdateInventoryItemCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setItemID(itemID),
		itemCommand.setActor(actor),
	); err != nil {
		return UpdateInventoryItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateInventoryItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateInventoryItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to patch.
func (c UpdateInventoryItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Patch returns the allow-listed field changes.
func (c UpdateInventoryItemCommand) Patch() inventory.Patch {
	return c.patch
}

// Actor returns the identity performing the update.
func (c UpdateInventoryItemCommand) Actor() kernel.UUID {
	return c.actor
}

func (c *UpdateInventoryItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateInventoryItemCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
