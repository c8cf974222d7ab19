package commands_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateInventoryItemCommand(t *testing.T) commands.CreateInventoryItemCommand {
	t.Helper()
	cmd, err := commands.NewCreateInventoryItemCommand(
		kernel.NewUUID(), "Box of screws", "SKU-1", 10,
		decimal.RequireFromString("5.00"), "hardware", "Warehouse A", kernel.NewUUID())
	require.NoError(t, err)
	return cmd
}

func TestCreateInventoryItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateInventoryItemCommand(t)

	repo := new(MockInventoryRepository)
	uow := new(MockInventoryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InventoryRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*inventory.Item")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateInventoryItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateInventoryItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateInventoryItemCommand{} // not constructed properly
	factory := new(MockInventoryUoWFactory)
	h := commands.NewCreateInventoryItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateInventoryItemCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateInventoryItemCommand(t)

	repo := new(MockInventoryRepository)
	uow := new(MockInventoryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InventoryRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*inventory.Item")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateInventoryItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
