package order

import (
	"errors"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer order in the system. It is the aggregate root
// that manages the order lifecycle from creation through dispatch to
// completion or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty order number
//   - Must contain at least one line item
//   - totalAmount equals the sum of quantity × unit price snapshot across
//     all line items, computed once at creation and never recomputed
//   - Status transitions follow the explicit transition table in Status
//   - Every mutation appends an audit entry; history is never rewritten
//   - Orders are never deleted
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the system-generated, immutable business identifier
	orderNumber string

	// customer identifies who placed the order
	customer Customer

	// items are the reserved line items in caller-supplied order
	items []LineItem

	// totalAmount is the sum of line subtotals, fixed at creation
	totalAmount decimal.Decimal

	// status represents the current state in the order lifecycle
	status Status

	// history is the append-only audit trail
	history []audit.Entry

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a new Order in Pending status and records a "created"
// audit entry attributed to actor.
//
// The caller is expected to have reserved stock for every line item already;
// the unit prices on the line items are the ledger snapshots returned by
// those reservations. totalAmount is computed here, once.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - orderNumber: System-generated business identifier (see GenerateNumber)
//   - customer: Validated customer value object
//   - items: At least one reserved line item, in caller-supplied order
//   - actor: Identity performing the creation
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customer Customer,
	items []LineItem,
	actor kernel.UUID,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setCustomer(customer),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	order.totalAmount = totalOf(items)

	entry, err := audit.NewEntry(audit.Created, actor, audit.Details{
		"orderNumber": orderNumber,
		"totalAmount": order.totalAmount.String(),
		"itemCount":   len(items),
	})
	if err != nil {
		return nil, err
	}
	order.history = append(order.history, entry)

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including its history.
// The persisted totalAmount is kept as-is; it was fixed at creation time.
// No audit entry is appended.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customer Customer,
	items []LineItem,
	totalAmount decimal.Decimal,
	status Status,
	history []audit.Entry,
) (*Order, error) {
	order := &Order{
		totalAmount:   totalAmount,
		history:       history,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setCustomer(customer),
		order.setItems(items),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the system-generated business identifier.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// Customer returns who placed the order.
func (o *Order) Customer() Customer {
	return o.customer
}

// Items returns the order's line items in caller-supplied order.
func (o *Order) Items() []LineItem {
	return o.items
}

// TotalAmount returns the sum of line subtotals fixed at creation time.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// History returns the order's append-only audit trail in insertion order.
func (o *Order) History() []audit.Entry {
	return o.history
}

// ChangeStatus transitions the order to newStatus if the transition table
// permits it, and appends a "status-changed" audit entry with
// {oldStatus, newStatus}.
//
// ChangeStatus only moves the status. Side effects of particular
// transitions, such as restoring stock on cancellation, are orchestrated
// by the command handlers within the same unit of work.
func (o *Order) ChangeStatus(newStatus Status, actor kernel.UUID) error {
	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	entry, err := audit.NewEntry(audit.StatusChanged, actor,
		audit.StatusChangeDetails(o.status.String(), next.String()))
	if err != nil {
		return err
	}

	o.status = next
	o.history = append(o.history, entry)
	return nil
}

// StartProcessing transitions the order to Processing.
// Called when a dispatch order is created for this order.
func (o *Order) StartProcessing(actor kernel.UUID) error {
	return o.ChangeStatus(Processing, actor)
}

// Complete transitions the order to Completed.
// Called when the associated dispatch order reaches Delivered.
func (o *Order) Complete(actor kernel.UUID) error {
	return o.ChangeStatus(Completed, actor)
}

// Cancel transitions the order to Cancelled.
// The caller is responsible for releasing reserved stock in the same
// unit of work.
func (o *Order) Cancel(actor kernel.UUID) error {
	return o.ChangeStatus(Cancelled, actor)
}

// totalOf computes the sum of quantity × unit price across line items.
func totalOf(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOrderNumber validates and sets the order's business identifier.
func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

// setCustomer validates and sets the customer.
// A zero-value customer (missing required fields) is rejected.
func (o *Order) setCustomer(customer Customer) error {
	if customer.Name() == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	o.customer = customer
	return nil
}

// setItems validates and sets the line items.
// At least one line item is required.
func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = items
	return nil
}

// setStatus validates and sets the status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
