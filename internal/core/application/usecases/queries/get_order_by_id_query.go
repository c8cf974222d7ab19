package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderByIDQueryIsNotConstructed = errors.New(
		"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
	)
)

// GetOrderByIDQuery retrieves a single order with its line items and full
// audit history.
type GetOrderByIDQuery struct {
	guard   guard.ConstructorGuard
	orderID kernel.UUID
}

// NewGetOrderByIDQuery creates a query for one order by its ID.
func NewGetOrderByIDQuery(orderID kernel.UUID) (GetOrderByIDQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderByIDQuery{}, err
	}

	return GetOrderByIDQuery{
		guard:   guard.NewConstructorGuard(),
		orderID: orderID,
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByIDQueryIsNotConstructed if validation fails.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// GetOrderByIDQueryResponse represents the complete read model for one order.
type GetOrderByIDQueryResponse struct {
	ID          kernel.UUID
	OrderNumber string
	Customer    OrderCustomerResponse
	Items       []OrderLineResponse
	TotalAmount decimal.Decimal
	Status      string
	History     []AuditEntryResponse
}

// OrderCustomerResponse carries the customer contact details of an order.
type OrderCustomerResponse struct {
	Name           string
	Email          string
	Phone          string
	AddressStreet  string
	AddressCity    string
	AddressState   string
	AddressZipCode string
}

// OrderLineResponse carries one reserved product line of an order.
type OrderLineResponse struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

// AuditEntryResponse carries one audit trail entry in the read model.
// Details preserve the shape recorded at write time; numeric values come
// back as float64 after the JSON round trip.
type AuditEntryResponse struct {
	ID        kernel.UUID
	Action    string
	Actor     kernel.UUID
	Timestamp time.Time
	Details   map[string]any
}
