package order

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LineItem is a value object binding an order to a reserved inventory item.
// The unit price is a snapshot taken from the stock ledger at reservation
// time; client-supplied prices are never trusted. Line items are immutable.
type LineItem struct {
	productID kernel.UUID
	quantity  int
	unitPrice decimal.Decimal
}

// NewLineItem creates a line item with validation.
//
// Business rules:
//   - productID must be a valid identity
//   - quantity must be at least 1
//   - unitPrice must not be negative (it comes from the ledger, which
//     enforces the same bound on the item itself)
func NewLineItem(productID kernel.UUID, quantity int, unitPrice decimal.Decimal) (LineItem, error) {
	if err := productID.Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity < 1 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if unitPrice.IsNegative() {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"unitPrice is invalid",
			fmt.Errorf("%s is negative", unitPrice),
		)
	}

	return LineItem{
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

// ProductID returns the identity of the reserved inventory item.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Quantity returns the number of units reserved for this line.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the ledger price snapshot taken at reservation time.
func (li LineItem) UnitPrice() decimal.Decimal {
	return li.unitPrice
}

// Subtotal returns quantity × unit price.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.unitPrice.Mul(decimal.NewFromInt(int64(li.quantity)))
}
