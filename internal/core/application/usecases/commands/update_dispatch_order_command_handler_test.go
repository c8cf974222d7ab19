package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/dispatch"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustNewDispatchOrder(t *testing.T, orderID, actor kernel.UUID) *dispatch.DispatchOrder {
	t.Helper()
	dispatchOrder, err := dispatch.NewDispatchOrder(kernel.NewUUID(), dispatch.GenerateNumber(),
		orderID, "VAN-42", time.Now().Add(48*time.Hour), actor)
	require.NoError(t, err)
	return dispatchOrder
}

func TestUpdateDispatchOrderCommandHandler_Handle_TrackingUpdate(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	actor := kernel.NewUUID()
	dispatchOrder := mustNewDispatchOrder(t, orderID, actor)

	location := "Distribution Hub North"
	status := dispatch.InTransit
	cmd, err := commands.NewUpdateDispatchOrderCommand(dispatchOrder.ID(), dispatch.Patch{
		TrackingLocation: &location,
		Status:           &status,
	}, actor)
	require.NoError(t, err)

	dispatchRepo := new(MockDispatchRepository)
	uow := new(MockDispatchUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DispatchRepository").Return(dispatchRepo).Once(),
		dispatchRepo.On("Get", mock.Anything, dispatchOrder.ID()).Return(dispatchOrder, nil).Once(),
		dispatchRepo.On("Update", mock.Anything, dispatchOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDispatchOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, dispatch.InTransit, dispatchOrder.Status())
	assert.Equal(t, location, dispatchOrder.Tracking().CurrentLocation())
	uow.AssertNotCalled(t, "OrderRepository")
	dispatchRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateDispatchOrderCommandHandler_Handle_DeliveryCompletesOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	actor := kernel.NewUUID()
	dispatchOrder := mustNewDispatchOrder(t, orderID, actor)

	aggregate := mustNewPendingOrder(orderID, kernel.NewUUID(), actor, 1, "1.00")
	require.NoError(t, aggregate.StartProcessing(actor))

	status := dispatch.Delivered
	cmd, err := commands.NewUpdateDispatchOrderCommand(dispatchOrder.ID(), dispatch.Patch{Status: &status}, actor)
	require.NoError(t, err)

	dispatchRepo := new(MockDispatchRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockDispatchUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DispatchRepository").Return(dispatchRepo).Once(),
		dispatchRepo.On("Get", mock.Anything, dispatchOrder.ID()).Return(dispatchOrder, nil).Once(),
		dispatchRepo.On("Update", mock.Anything, dispatchOrder).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDispatchOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.True(t, dispatchOrder.IsDelivered())
	assert.Equal(t, order.Completed, aggregate.Status(), "delivery must complete the order in the same transaction")
	dispatchRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateDispatchOrderCommandHandler_Handle_ForbiddenTransition(t *testing.T) {
	ctx := t.Context()
	actor := kernel.NewUUID()
	dispatchOrder := mustNewDispatchOrder(t, kernel.NewUUID(), actor)
	delivered := dispatch.Delivered
	require.NoError(t, dispatchOrder.ApplyPatch(dispatch.Patch{Status: &delivered}, actor))

	inTransit := dispatch.InTransit
	cmd, err := commands.NewUpdateDispatchOrderCommand(dispatchOrder.ID(), dispatch.Patch{Status: &inTransit}, actor)
	require.NoError(t, err)

	dispatchRepo := new(MockDispatchRepository)
	uow := new(MockDispatchUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DispatchRepository").Return(dispatchRepo).Once(),
		dispatchRepo.On("Get", mock.Anything, dispatchOrder.ID()).Return(dispatchOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDispatchOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	dispatchRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
