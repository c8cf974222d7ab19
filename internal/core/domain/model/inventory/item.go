package inventory

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created through
	// the NewItem factory method. This ensures all items are properly validated.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item represents a stocked product in the system. It is the aggregate root
// the stock ledger operates on.
//
// Item follows these invariants:
//   - Must have a valid unique identifier
//   - Product name and product code are required; the code is immutable after creation
//   - Quantity is an integer and never negative
//   - Unit price is never negative
//   - Quantity changes only through the ledger's reserve and release operations
//   - Every mutation appends an audit entry; history is never rewritten
type Item struct {
	// id is the unique identifier for the inventory item
	id kernel.UUID

	// productName is the human-readable product name
	productName string

	// productCode is the unique, immutable stock-keeping code
	productCode string

	// quantity is the number of units currently on hand (never negative)
	quantity int

	// unitPrice is the current selling price per unit
	unitPrice decimal.Decimal

	// category groups the item for reporting and filtering
	category string

	// storageLocation names where the stock physically sits
	storageLocation string

	// history is the append-only audit trail
	history []audit.Entry

	// isConstructed ensures the item was created via NewItem or RestoreItem
	isConstructed bool
}

// NewItem creates a new inventory Item with validation and records a
// "created" audit entry attributed to actor.
//
// Parameters:
//   - id: Unique identifier for the item (must be valid UUID)
//   - productName: Required display name
//   - productCode: Required unique stock-keeping code, immutable afterwards
//   - quantity: Initial stock level (must not be negative)
//   - unitPrice: Price per unit (must not be negative)
//   - category, storageLocation: Optional classification fields
//   - actor: Identity performing the creation
//
// Uniqueness of productCode across items is enforced by the persistence
// layer; the aggregate only guarantees local invariants.
func NewItem(
	id kernel.UUID,
	productName string,
	productCode string,
	quantity int,
	unitPrice decimal.Decimal,
	category string,
	storageLocation string,
	actor kernel.UUID,
) (*Item, error) {
	item := &Item{
		category:        category,
		storageLocation: storageLocation,
		isConstructed:   true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductName(productName),
		item.setProductCode(productCode),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	entry, err := audit.NewEntry(audit.Created, actor, audit.Details{
		"productName": productName,
		"productCode": productCode,
		"quantity":    quantity,
		"unitPrice":   unitPrice.String(),
	})
	if err != nil {
		return nil, err
	}
	item.history = append(item.history, entry)

	return item, nil
}

// RestoreItem reconstructs an Item from persistence, including its history.
// No audit entry is appended.
func RestoreItem(
	id kernel.UUID,
	productName string,
	productCode string,
	quantity int,
	unitPrice decimal.Decimal,
	category string,
	storageLocation string,
	history []audit.Entry,
) (*Item, error) {
	item := &Item{
		category:        category,
		storageLocation: storageLocation,
		history:         history,
		isConstructed:   true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductName(productName),
		item.setProductCode(productCode),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductName returns the item's display name.
func (i *Item) ProductName() string {
	return i.productName
}

// ProductCode returns the item's unique stock-keeping code.
func (i *Item) ProductCode() string {
	return i.productCode
}

// Quantity returns the number of units currently on hand.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the current selling price per unit.
func (i *Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Category returns the item's category.
func (i *Item) Category() string {
	return i.category
}

// StorageLocation returns where the stock physically sits.
func (i *Item) StorageLocation() string {
	return i.storageLocation
}

// History returns the item's append-only audit trail in insertion order.
func (i *Item) History() []audit.Entry {
	return i.history
}

// Patch carries the explicit allow-list of directly editable item fields.
// Nil fields are left unchanged. Quantity and product code are deliberately
// absent: quantity belongs to the ledger, the code is immutable.
type Patch struct {
	ProductName     *string
	Category        *string
	StorageLocation *string
	UnitPrice       *decimal.Decimal
}

// ApplyPatch applies an allow-list field update and appends an "updated"
// audit entry capturing {oldValues, newValues} for the fields that changed.
// A patch with no effective changes appends nothing.
func (i *Item) ApplyPatch(patch Patch, actor kernel.UUID) error {
	oldValues := make(map[string]any)
	newValues := make(map[string]any)

	if patch.ProductName != nil && *patch.ProductName != i.productName {
		if *patch.ProductName == "" {
			return errs.NewValueIsRequiredError("productName")
		}
		oldValues["productName"] = i.productName
		newValues["productName"] = *patch.ProductName
	}
	if patch.Category != nil && *patch.Category != i.category {
		oldValues["category"] = i.category
		newValues["category"] = *patch.Category
	}
	if patch.StorageLocation != nil && *patch.StorageLocation != i.storageLocation {
		oldValues["storageLocation"] = i.storageLocation
		newValues["storageLocation"] = *patch.StorageLocation
	}
	if patch.UnitPrice != nil && !patch.UnitPrice.Equal(i.unitPrice) {
		if patch.UnitPrice.IsNegative() {
			return errs.NewValueIsInvalidErrorWithCause(
				"unitPrice is invalid",
				fmt.Errorf("%s is negative", patch.UnitPrice),
			)
		}
		oldValues["unitPrice"] = i.unitPrice.String()
		newValues["unitPrice"] = patch.UnitPrice.String()
	}

	if len(newValues) == 0 {
		return nil
	}

	entry, err := audit.NewEntry(audit.Updated, actor, audit.ChangeDetails(oldValues, newValues))
	if err != nil {
		return err
	}

	if v, ok := newValues["productName"]; ok {
		i.productName = v.(string)
	}
	if v, ok := newValues["category"]; ok {
		i.category = v.(string)
	}
	if v, ok := newValues["storageLocation"]; ok {
		i.storageLocation = v.(string)
	}
	if patch.UnitPrice != nil {
		if _, ok := newValues["unitPrice"]; ok {
			i.unitPrice = *patch.UnitPrice
		}
	}

	i.history = append(i.history, entry)
	return nil
}

// setID validates and sets the item's unique identifier.
func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

// setProductName validates and sets the item's display name.
func (i *Item) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = productName
	return nil
}

// setProductCode validates and sets the item's stock-keeping code.
func (i *Item) setProductCode(productCode string) error {
	if productCode == "" {
		return errs.NewValueIsRequiredError("productCode")
	}
	i.productCode = productCode
	return nil
}

// setQuantity validates and sets the stock level.
// Quantity must not be negative.
func (i *Item) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is negative", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

// setUnitPrice validates and sets the price per unit.
// Unit price must not be negative.
func (i *Item) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice is invalid",
			fmt.Errorf("%s is negative", unitPrice),
		)
	}
	i.unitPrice = unitPrice
	return nil
}
