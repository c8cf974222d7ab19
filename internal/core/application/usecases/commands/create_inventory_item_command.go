package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateInventoryItemCommandIsNotConstructed = errors.New(
		"CreateInventoryItemCommand must be created via NewCreateInventoryItemCommand constructor",
	)
)

// CreateInventoryItemCommand represents a request to register a new inventory
// item. Encapsulates the item's catalog data and its opening stock level.
type CreateInventoryItemCommand struct { //nolint:recvcheck //using for validation
	itemID          kernel.UUID
	productName     string
	productCode     string
	quantity        int
	unitPrice       decimal.Decimal
	category        string
	storageLocation string
	actor           kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateInventoryItemCommand creates a command to register a new inventory item.
// Validates identifiers, required catalog fields, and non-negative quantity and price.
func NewCreateInventoryItemCommand(
	itemID kernel.UUID,
	productName string,
	productCode string,
	quantity int,
	unitPrice decimal.Decimal,
	category string,
	storageLocation string,
	actor kernel.UUID,
) (CreateInventoryItemCommand, error) {
	itemCommand := CreateInventoryItemCommand{
		category:        category,
		storageLocation: storageLocation,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setItemID(itemID),
		itemCommand.setProductName(productName),
		itemCommand.setProductCode(productCode),
		itemCommand.setQuantity(quantity),
		itemCommand.setUnitPrice(unitPrice),
		itemCommand.setActor(actor),
	); err != nil {
		return CreateInventoryItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInventoryItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateInventoryItemCommandIsNotConstructed)
}

// ItemID returns the unique identifier for the new item.
func (c CreateInventoryItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// ProductName returns the human-readable product name.
func (c CreateInventoryItemCommand) ProductName() string {
	return c.productName
}

// ProductCode returns the unique product code (SKU).
func (c CreateInventoryItemCommand) ProductCode() string {
	return c.productCode
}

// Quantity returns the opening stock level.
func (c CreateInventoryItemCommand) Quantity() int {
	return c.quantity
}

// UnitPrice returns the item's unit price.
func (c CreateInventoryItemCommand) UnitPrice() decimal.Decimal {
	return c.unitPrice
}

// Category returns the optional item category.
func (c CreateInventoryItemCommand) Category() string {
	return c.category
}

// StorageLocation returns the optional storage location.
func (c CreateInventoryItemCommand) StorageLocation() string {
	return c.storageLocation
}

// Actor returns the identity performing the creation.
func (c CreateInventoryItemCommand) Actor() kernel.UUID {
	return c.actor
}

func (c *CreateInventoryItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *CreateInventoryItemCommand) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}

	c.productName = productName
	return nil
}

func (c *CreateInventoryItemCommand) setProductCode(productCode string) error {
	if productCode == "" {
		return errs.NewValueIsRequiredError("productCode")
	}

	c.productCode = productCode
	return nil
}

func (c *CreateInventoryItemCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("quantity must not be negative")
	}

	c.quantity = quantity
	return nil
}

func (c *CreateInventoryItemCommand) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidError("unitPrice must not be negative")
	}

	c.unitPrice = unitPrice
	return nil
}

func (c *CreateInventoryItemCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
