package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// OrderLine is one requested product/quantity pair in an order creation
// request. It deliberately carries no price: the unit price is snapshotted
// from the stock ledger at reservation time, never taken from the caller.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a request to create a new customer order.
// Encapsulates the customer's contact details and the requested lines.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	customer order.Customer
	lines    []OrderLine
	actor    kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the order ID, the customer's required contact details, each
// requested line (known product, quantity of at least one), and the actor.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	customerEmail string,
	customerPhone string,
	address order.Address,
	lines []OrderLine,
	actor kernel.UUID,
) (CreateOrderCommand, error) {
	customer, err := order.NewCustomer(customerName, customerEmail, customerPhone, address)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand := CreateOrderCommand{
		customer: customer,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setLines(lines),
		orderCommand.setActor(actor),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Customer returns the validated customer placing the order.
func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

// Lines returns the requested product/quantity pairs in caller-supplied order.
func (c CreateOrderCommand) Lines() []OrderLine {
	return c.lines
}

// Actor returns the identity placing the order.
func (c CreateOrderCommand) Actor() kernel.UUID {
	return c.actor
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		if line.Quantity < 1 {
			return errs.NewValueIsOutOfRangeError("quantity", line.Quantity, 1, nil)
		}
	}

	c.lines = lines
	return nil
}

func (c *CreateOrderCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
