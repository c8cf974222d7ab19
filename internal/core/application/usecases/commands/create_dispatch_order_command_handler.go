package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/dispatch"
	"fulfillment/internal/pkg/errs"
)

// CreateDispatchOrderCommandHandler handles dispatch order creation.
//
// Creating a dispatch order transitions the shipped customer order from
// Pending to Processing in the same transaction. A second dispatch for the
// same order is rejected: detected up front via GetByOrderID and, against
// races, by the unique constraint on the order reference.
type CreateDispatchOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewCreateDispatchOrderCommandHandler creates a handler for dispatch order creation.
// Requires a DispatchUoWFactory for transactional persistence.
func NewCreateDispatchOrderCommandHandler(uowFactory DispatchUoWFactory) CreateDispatchOrderCommandHandler {
	return CreateDispatchOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch order creation command.
// Returns ObjectNotFound for an unknown order, DuplicateKey when the order
// already has a dispatch, and InvalidTransition when the order cannot move
// to Processing.
func (h *CreateDispatchOrderCommandHandler) Handle(ctx context.Context, cmd CreateDispatchOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	dispatchRepo := uow.DispatchRepository()
	if _, err = dispatchRepo.GetByOrderID(ctx, cmd.OrderID()); err == nil {
		return errs.NewDuplicateKeyError("orderId", cmd.OrderID().String())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	dispatchOrder, err := dispatch.NewDispatchOrder(
		cmd.DispatchID(),
		dispatch.GenerateNumber(),
		cmd.OrderID(),
		cmd.Vehicle(),
		cmd.EstimatedDeliveryDate(),
		cmd.Actor(),
	)
	if err != nil {
		return err
	}

	if err = dispatchRepo.Add(ctx, dispatchOrder); err != nil {
		return err
	}

	if err = aggregate.StartProcessing(cmd.Actor()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return commit(ctx, uow, "createDispatchOrder")
}
