package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateDispatchOrderCommandIsNotConstructed = errors.New(
		"CreateDispatchOrderCommand must be created via NewCreateDispatchOrderCommand constructor",
	)
)

// CreateDispatchOrderCommand represents a request to create a dispatch order
// shipping an existing customer order. Each customer order may be shipped by
// at most one dispatch order.
type CreateDispatchOrderCommand struct { //nolint:recvcheck //using for validation
	dispatchID            kernel.UUID
	orderID               kernel.UUID
	vehicle               string
	estimatedDeliveryDate time.Time
	actor                 kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateDispatchOrderCommand creates a command to dispatch an order.
// Validates both identifiers, the assigned vehicle, the estimated delivery
// date, and the actor.
func NewCreateDispatchOrderCommand(
	dispatchID kernel.UUID,
	orderID kernel.UUID,
	vehicle string,
	estimatedDeliveryDate time.Time,
	actor kernel.UUID,
) (CreateDispatchOrderCommand, error) {
	dispatchCommand := CreateDispatchOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		dispatchCommand.setDispatchID(dispatchID),
		dispatchCommand.setOrderID(orderID),
		dispatchCommand.setVehicle(vehicle),
		dispatchCommand.setEstimatedDeliveryDate(estimatedDeliveryDate),
		dispatchCommand.setActor(actor),
	); err != nil {
		return CreateDispatchOrderCommand{}, err
	}

	return dispatchCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateDispatchOrderCommandIsNotConstructed)
}

// DispatchID returns the unique identifier for the new dispatch order.
func (c CreateDispatchOrderCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}

// OrderID returns the identifier of the customer order to ship.
func (c CreateDispatchOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Vehicle returns the assigned delivery vehicle.
func (c CreateDispatchOrderCommand) Vehicle() string {
	return c.vehicle
}

// EstimatedDeliveryDate returns when the shipment is expected to arrive.
func (c CreateDispatchOrderCommand) EstimatedDeliveryDate() time.Time {
	return c.estimatedDeliveryDate
}

// Actor returns the identity creating the dispatch order.
func (c CreateDispatchOrderCommand) Actor() kernel.UUID {
	return c.actor
}

func (c *CreateDispatchOrderCommand) setDispatchID(dispatchID kernel.UUID) error {
	if err := dispatchID.Validate(); err != nil {
		return err
	}

	c.dispatchID = dispatchID
	return nil
}

func (c *CreateDispatchOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateDispatchOrderCommand) setVehicle(vehicle string) error {
	if vehicle == "" {
		return errs.NewValueIsRequiredError("vehicle")
	}

	c.vehicle = vehicle
	return nil
}

func (c *CreateDispatchOrderCommand) setEstimatedDeliveryDate(estimatedDeliveryDate time.Time) error {
	if estimatedDeliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("estimatedDeliveryDate")
	}

	c.estimatedDeliveryDate = estimatedDeliveryDate
	return nil
}

func (c *CreateDispatchOrderCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
