package commands

import (
	"context"
)

// UpdateDispatchOrderCommandHandler handles dispatch order updates.
//
// When a patch moves the dispatch to Delivered, the shipped customer order
// is completed in the same transaction, so the two aggregates never disagree
// about whether the shipment arrived.
type UpdateDispatchOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewUpdateDispatchOrderCommandHandler creates a handler for dispatch order updates.
// Requires a DispatchUoWFactory for transactional persistence.
func NewUpdateDispatchOrderCommandHandler(uowFactory DispatchUoWFactory) UpdateDispatchOrderCommandHandler {
	return UpdateDispatchOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch order update command.
// Returns ObjectNotFound for unknown dispatch orders and InvalidTransition
// when the patch requests a forbidden status change.
func (h *UpdateDispatchOrderCommandHandler) Handle(ctx context.Context, cmd UpdateDispatchOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	dispatchRepo := uow.DispatchRepository()
	dispatchOrder, err := dispatchRepo.Get(ctx, cmd.DispatchID())
	if err != nil {
		return err
	}

	wasDelivered := dispatchOrder.IsDelivered()
	if err = dispatchOrder.ApplyPatch(cmd.Patch(), cmd.Actor()); err != nil {
		return err
	}

	if err = dispatchRepo.Update(ctx, dispatchOrder); err != nil {
		return err
	}

	if !wasDelivered && dispatchOrder.IsDelivered() {
		orderRepo := uow.OrderRepository()
		aggregate, err := orderRepo.Get(ctx, dispatchOrder.OrderID())
		if err != nil {
			return err
		}

		if err = aggregate.Complete(cmd.Actor()); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return commit(ctx, uow, "updateDispatchOrder")
}
