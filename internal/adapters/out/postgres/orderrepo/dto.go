// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders span two tables: the order row itself and its
// line items, keyed by (order_id, position) to preserve the caller-supplied
// line order.
package orderrepo

import (
	"fulfillment/internal/adapters/out/postgres/auditrepo"
	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order number carries a unique index; the total amount is written once
// at creation and never recomputed.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderNumber string          `gorm:"uniqueIndex"`
	Customer    CustomerDTO     `gorm:"embedded;embeddedPrefix:customer_"`
	TotalAmount decimal.Decimal `gorm:"type:numeric"`
	Status      int
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO represents the embedded customer contact details within the
// order table.
type CustomerDTO struct {
	Name           string
	Email          string
	Phone          string
	AddressStreet  string
	AddressCity    string
	AddressState   string
	AddressZipCode string
}

// LineItemDTO represents one reserved product line of an order.
// Position preserves the caller-supplied ordering of the lines.
type LineItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for order line items.
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, []LineItemDTO) {
	customer := aggregate.Customer()
	address := customer.Address()

	dto := OrderDTO{
		ID:          aggregate.ID().Bytes(),
		OrderNumber: aggregate.OrderNumber(),
		Customer: CustomerDTO{
			Name:           customer.Name(),
			Email:          customer.Email(),
			Phone:          customer.Phone(),
			AddressStreet:  address.Street,
			AddressCity:    address.City,
			AddressState:   address.State,
			AddressZipCode: address.ZipCode,
		},
		TotalAmount: aggregate.TotalAmount(),
		Status:      int(aggregate.Status()),
	}

	items := aggregate.Items()
	lines := make([]LineItemDTO, 0, len(items))
	for i, item := range items {
		lines = append(lines, LineItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			Position:  i,
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return dto, lines
}

// toDomain converts database DTOs and an audit trail to an order aggregate.
func toDomain(dto OrderDTO, lines []LineItemDTO, history []audit.Entry) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(
		dto.Customer.Name,
		dto.Customer.Email,
		dto.Customer.Phone,
		order.Address{
			Street:  dto.Customer.AddressStreet,
			City:    dto.Customer.AddressCity,
			State:   dto.Customer.AddressState,
			ZipCode: dto.Customer.AddressZipCode,
		},
	)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(lines))
	for _, line := range lines {
		productID, lineErr := kernel.UUIDFromBytes(line.ProductID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		item, lineErr := order.NewLineItem(productID, line.Quantity, line.UnitPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		customer,
		items,
		dto.TotalAmount,
		order.Status(dto.Status),
		history,
	)
}

// ownerType is this aggregate's discriminator in the shared audit table.
const ownerType = auditrepo.OwnerTypeOrder
