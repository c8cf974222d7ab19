package commands_test

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/dispatch"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) Add(ctx context.Context, item *inventory.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockInventoryRepository) Update(ctx context.Context, item *inventory.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockInventoryRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Item), args.Error(1)
}
func (m *MockInventoryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockInventoryRepository) Reserve(ctx context.Context, productID kernel.UUID, qty int, actor, orderID kernel.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, productID, qty, actor, orderID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockInventoryRepository) Release(ctx context.Context, productID kernel.UUID, qty int, actor, orderID kernel.UUID) error {
	args := m.Called(ctx, productID, qty, actor, orderID)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockDispatchRepository struct{ mock.Mock }

func (m *MockDispatchRepository) Add(ctx context.Context, d *dispatch.DispatchOrder) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDispatchRepository) Update(ctx context.Context, d *dispatch.DispatchOrder) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDispatchRepository) Get(ctx context.Context, id kernel.UUID) (*dispatch.DispatchOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispatch.DispatchOrder), args.Error(1)
}
func (m *MockDispatchRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*dispatch.DispatchOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispatch.DispatchOrder), args.Error(1)
}

type MockInventoryUoW struct{ mock.Mock }

func (m *MockInventoryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockInventoryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockInventoryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockInventoryUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

type MockInventoryUoWFactory struct{ mock.Mock }

func (m *MockInventoryUoWFactory) Create() commands.InventoryUoW {
	args := m.Called()
	return args.Get(0).(commands.InventoryUoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockOrderUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDispatchUoW struct{ mock.Mock }

func (m *MockDispatchUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDispatchUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDispatchUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDispatchUoW) DispatchRepository() ports.DispatchRepository {
	args := m.Called()
	return args.Get(0).(ports.DispatchRepository)
}
func (m *MockDispatchUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}

// Test fixtures shared across handler tests.

func mustNewPendingOrder(orderID, productID, actor kernel.UUID, qty int, price string) *order.Order {
	customer, err := order.NewCustomer("Ada Lovelace", "ada@example.com", "+1-555-0100", order.Address{})
	if err != nil {
		panic(err)
	}
	item, err := order.NewLineItem(productID, qty, decimal.RequireFromString(price))
	if err != nil {
		panic(err)
	}
	aggregate, err := order.NewOrder(orderID, order.GenerateNumber(), customer, []order.LineItem{item}, actor)
	if err != nil {
		panic(err)
	}
	return aggregate
}
