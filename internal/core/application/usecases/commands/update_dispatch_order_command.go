package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/dispatch"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrUpdateDispatchOrderCommandIsNotConstructed = errors.New(
		"UpdateDispatchOrderCommand must be created via NewUpdateDispatchOrderCommand constructor",
	)
)

// UpdateDispatchOrderCommand represents a request to patch a dispatch order.
// The patch is an explicit allow-list covering the vehicle, the estimated
// delivery date, the tracking location, and the status.
type UpdateDispatchOrderCommand struct { //nolint:recvcheck //using for validation
	dispatchID kernel.UUID
	patch      dispatch.Patch
	actor      kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateDispatchOrderCommand creates a command to patch a dispatch order.
// An empty patch is valid and results in no change. Whether a requested
// status transition is permitted is decided by the aggregate.
func NewUpdateDispatchOrderCommand(
	dispatchID kernel.UUID,
	patch dispatch.Patch,
	actor kernel.UUID,
) (UpdateDispatchOrderCommand, error) {
	dispatchCommand := UpdateDispatchOrderCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		dispatchCommand.setDispatchID(dispatchID),
		dispatchCommand.setActor(actor),
	); err != nil {
		return UpdateDispatchOrderCommand{}, err
	}

	return dispatchCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDispatchOrderCommandIsNotConstructed)
}

// DispatchID returns the identifier of the dispatch order to patch.
func (c UpdateDispatchOrderCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}

// Patch returns the allow-listed field changes.
func (c UpdateDispatchOrderCommand) Patch() dispatch.Patch {
	return c.patch
}

// Actor returns the identity performing the update.
func (c UpdateDispatchOrderCommand) Actor() kernel.UUID {
	return c.actor
}

func (c *UpdateDispatchOrderCommand) setDispatchID(dispatchID kernel.UUID) error {
	if err := dispatchID.Validate(); err != nil {
		return err
	}

	c.dispatchID = dispatchID
	return nil
}

func (c *UpdateDispatchOrderCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
