package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
//
// For each requested line, in caller-supplied order, it reserves stock
// through the ledger and snapshots the price the ledger returns. The
// reservations and the order insert share one transaction: if any line
// cannot be reserved (insufficient stock, unknown product) the whole
// transaction rolls back and no quantity changes.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Reserves stock line by line, builds the order with ledger-priced line
// items and a generated order number, and persists it atomically.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	inventoryRepo := uow.InventoryRepository()

	items := make([]order.LineItem, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		unitPrice, err := inventoryRepo.Reserve(ctx, line.ProductID, line.Quantity, cmd.Actor(), cmd.OrderID())
		if err != nil {
			return err
		}

		item, err := order.NewLineItem(line.ProductID, line.Quantity, unitPrice)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), order.GenerateNumber(), cmd.Customer(), items, cmd.Actor())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return commit(ctx, uow, "createOrder")
}
