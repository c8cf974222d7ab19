package commands

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles order status transitions.
//
// Cancellation restores every line item's reserved quantity through the
// ledger before the status write commits, all in one transaction. If a
// product was deleted after the order was placed, its restore is skipped
// with a warning and the cancellation still succeeds.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status changes.
// Requires an OrderUoWFactory for transactional persistence and a logger for
// skipped stock restores.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the order status change command.
// Returns ObjectNotFound for unknown orders and InvalidTransition when the
// order's transition table forbids the move.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	if err = aggregate.ChangeStatus(cmd.NewStatus(), cmd.Actor()); err != nil {
		return err
	}

	if cmd.NewStatus() == order.Cancelled {
		if err = h.releaseItems(ctx, uow, aggregate, cmd); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return commit(ctx, uow, "updateOrderStatus")
}

// releaseItems restores each line item's reserved quantity. A missing
// product means it was hard-deleted after the order was placed; its stock
// cannot be restored, so the release is skipped.
func (h *UpdateOrderStatusCommandHandler) releaseItems(
	ctx context.Context,
	uow OrderUoW,
	aggregate *order.Order,
	cmd UpdateOrderStatusCommand,
) error {
	inventoryRepo := uow.InventoryRepository()
	for _, item := range aggregate.Items() {
		err := inventoryRepo.Release(ctx, item.ProductID(), item.Quantity(), cmd.Actor(), aggregate.ID())
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				h.logger.WarnContext(ctx, "skipping stock restore for deleted product",
					"orderId", aggregate.ID().String(),
					"productId", item.ProductID().String(),
					"quantity", item.Quantity())
				continue
			}
			return err
		}
	}
	return nil
}
