package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgres_adapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/auditrepo"
	"fulfillment/internal/adapters/out/postgres/dispatchrepo"
	"fulfillment/internal/adapters/out/postgres/inventoryrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/dispatch"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based Unit of Work against
// a real PostgreSQL database, including the stock ledger's behavior under
// rollback and concurrent contention.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&inventoryrepo.ItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&dispatchrepo.DispatchOrderDTO{},
		&auditrepo.EntryDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	for _, table := range []string{"inventory_items", "orders", "order_line_items", "dispatch_orders", "audit_entries"} {
		err := suite.db.Exec("TRUNCATE TABLE " + table + " CASCADE").Error
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createItem(code string, quantity int, price string) *inventory.Item {
	item, err := inventory.NewItem(kernel.NewUUID(), "Box of screws", code, quantity,
		decimal.RequireFromString(price), "hardware", "Warehouse A", kernel.NewUUID())
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	ctx := context.Background()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.InventoryRepository().Add(ctx, item))
	suite.Require().NoError(uow.Commit(ctx))
	return item
}

func (suite *UnitOfWorkIntegrationTestSuite) itemQuantity(id kernel.UUID) int {
	var quantity int
	err := suite.db.Raw("SELECT quantity FROM inventory_items WHERE id = ?", id.Bytes()).Scan(&quantity).Error
	suite.Require().NoError(err)
	return quantity
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackLeavesStockUntouched() {
	ctx := context.Background()
	item := suite.createItem("SKU-1", 10, "5.00")
	actor := kernel.NewUUID()
	orderID := kernel.NewUUID()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	price, err := uow.InventoryRepository().Reserve(ctx, item.ID(), 3, actor, orderID)
	suite.Require().NoError(err)
	suite.True(price.Equal(decimal.RequireFromString("5.00")))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(10, suite.itemQuantity(item.ID()), "rollback must restore the reserved quantity")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentReservationsNeverOversell() {
	ctx := context.Background()
	const workers = 8
	item := suite.createItem("SKU-1", workers-1, "5.00")

	var wg sync.WaitGroup
	failures := make(chan error, workers)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			uow := suite.factory.Create()
			if err := uow.Begin(ctx); err != nil {
				failures <- err
				return
			}
			defer func() { _ = uow.Rollback(ctx) }()

			_, err := uow.InventoryRepository().Reserve(ctx, item.ID(), 1, kernel.NewUUID(), kernel.NewUUID())
			if err != nil {
				failures <- err
				return
			}
			failures <- uow.Commit(ctx)
		}()
	}
	wg.Wait()
	close(failures)

	failed := 0
	for err := range failures {
		if err != nil {
			suite.Require().ErrorIs(err, errs.ErrInsufficientStock)
			failed++
		}
	}

	suite.Equal(1, failed, "stock of N-1 must reject exactly one of N unit reservations")
	suite.Equal(0, suite.itemQuantity(item.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderLifecycleAdjustsLedger() {
	ctx := context.Background()
	item := suite.createItem("SKU-1", 10, "5.00")
	actor := kernel.NewUUID()
	orderID := kernel.NewUUID()

	// Place an order for 3 units.
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	price, err := uow.InventoryRepository().Reserve(ctx, item.ID(), 3, actor, orderID)
	suite.Require().NoError(err)

	lineItem, err := order.NewLineItem(item.ID(), 3, price)
	suite.Require().NoError(err)
	customer, err := order.NewCustomer("Ada Lovelace", "ada@example.com", "+1-555-0100", order.Address{})
	suite.Require().NoError(err)
	aggregate, err := order.NewOrder(orderID, order.GenerateNumber(), customer, []order.LineItem{lineItem}, actor)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	suite.True(aggregate.TotalAmount().Equal(decimal.RequireFromString("15.00")))
	suite.Equal(7, suite.itemQuantity(item.ID()))

	// Cancel it: stock returns, both ledger adjustments remain in the trail.
	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loaded, err := uow.OrderRepository().Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Cancel(actor))

	for _, li := range loaded.Items() {
		suite.Require().NoError(uow.InventoryRepository().Release(ctx, li.ProductID(), li.Quantity(), actor, orderID))
	}
	suite.Require().NoError(uow.OrderRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(10, suite.itemQuantity(item.ID()))

	restored, err := suite.factory.Create().InventoryRepository().Get(ctx, item.ID())
	suite.Require().NoError(err)

	adjustments := 0
	for _, entry := range restored.History() {
		if entry.Action() == audit.StockAdjusted {
			adjustments++
		}
	}
	suite.Equal(2, adjustments, "reserve and release must each leave a stock-adjusted entry")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSecondDispatchForSameOrderRejected() {
	ctx := context.Background()
	actor := kernel.NewUUID()
	orderID := kernel.NewUUID()
	item := suite.createItem("SKU-1", 10, "5.00")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	price, err := uow.InventoryRepository().Reserve(ctx, item.ID(), 1, actor, orderID)
	suite.Require().NoError(err)
	lineItem, err := order.NewLineItem(item.ID(), 1, price)
	suite.Require().NoError(err)
	customer, err := order.NewCustomer("Ada Lovelace", "ada@example.com", "+1-555-0100", order.Address{})
	suite.Require().NoError(err)
	aggregate, err := order.NewOrder(orderID, order.GenerateNumber(), customer, []order.LineItem{lineItem}, actor)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	first, err := dispatch.NewDispatchOrder(kernel.NewUUID(), dispatch.GenerateNumber(), orderID,
		"VAN-42", time.Now().Add(48*time.Hour), actor)
	suite.Require().NoError(err)

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DispatchRepository().Add(ctx, first))
	suite.Require().NoError(uow.Commit(ctx))

	second, err := dispatch.NewDispatchOrder(kernel.NewUUID(), dispatch.GenerateNumber(), orderID,
		"TRUCK-7", time.Now().Add(24*time.Hour), actor)
	suite.Require().NoError(err)

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	err = uow.DispatchRepository().Add(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrDuplicateKey)
	suite.Require().NoError(uow.Rollback(ctx))

	// The first dispatch is unchanged.
	loaded, err := suite.factory.Create().DispatchRepository().GetByOrderID(ctx, orderID)
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(first))
	suite.Equal("VAN-42", loaded.Vehicle())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBeginFails() {
	uow := suite.factory.Create()
	err := uow.Commit(context.Background())
	suite.Require().Error(err)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
