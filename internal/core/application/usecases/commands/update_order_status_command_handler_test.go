package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUpdateOrderStatusCommandHandler_Handle_CancelRestoresStock(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	productID := kernel.NewUUID()
	actor := kernel.NewUUID()
	aggregate := mustNewPendingOrder(orderID, productID, actor, 3, "5.00")

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Cancelled, actor)
	require.NoError(t, err)

	inventoryRepo := new(MockInventoryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(aggregate, nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("Release", mock.Anything, productID, 3, actor, orderID).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Cancelled, aggregate.Status())
	inventoryRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_CancelSkipsDeletedProducts(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	productID := kernel.NewUUID()
	actor := kernel.NewUUID()
	aggregate := mustNewPendingOrder(orderID, productID, actor, 3, "5.00")

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Cancelled, actor)
	require.NoError(t, err)

	inventoryRepo := new(MockInventoryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(aggregate, nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("Release", mock.Anything, productID, 3, actor, orderID).
			Return(errs.NewObjectNotFoundError("productId", productID.String())).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd), "cancellation must succeed even when a product was deleted")

	assert.Equal(t, order.Cancelled, aggregate.Status())
	inventoryRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	actor := kernel.NewUUID()
	aggregate := mustNewPendingOrder(orderID, kernel.NewUUID(), actor, 1, "1.00")

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Completed, actor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, discardLogger())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Pending, aggregate.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_CommitFailureIsTransactionAborted(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	actor := kernel.NewUUID()
	aggregate := mustNewPendingOrder(orderID, kernel.NewUUID(), actor, 1, "1.00")

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Processing, actor)
	require.NoError(t, err)

	driverErr := errors.New("pq: could not serialize access due to concurrent update")

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(driverErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, discardLogger())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrTransactionAborted)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Processing, kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(nil, errs.NewObjectNotFoundError("orderId", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, discardLogger())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
