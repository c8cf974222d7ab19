package queries_test

import (
	"context"
	"testing"

	"fulfillment/internal/adapters/out/postgres/auditrepo"
	"fulfillment/internal/adapters/out/postgres/inventoryrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type GetLowStockItemsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetLowStockItemsQueryHandler
	repo      *inventoryrepo.GormInventoryRepository
}

func (suite *GetLowStockItemsQueryHandlerTestSuite) SetupSuite() {
	suite.container, suite.db = startPostgres(&suite.Suite)

	err := suite.db.AutoMigrate(&inventoryrepo.ItemDTO{}, &auditrepo.EntryDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetLowStockItemsQueryHandler(suite.db)
	suite.repo = inventoryrepo.NewGormInventoryRepository(suite.db, noopTracker{})
}

func (suite *GetLowStockItemsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetLowStockItemsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE inventory_items CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE audit_entries CASCADE").Error)
}

func (suite *GetLowStockItemsQueryHandlerTestSuite) seedItem(code string, quantity int) {
	item, err := inventory.NewItem(kernel.NewUUID(), "Product "+code, code, quantity,
		decimal.RequireFromString("5.00"), "hardware", "Warehouse A", kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(context.Background(), item))
}

func (suite *GetLowStockItemsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetLowStockItemsQuery(5)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetLowStockItemsQueryHandlerTestSuite) TestHandle_ThresholdIsInclusive() {
	suite.seedItem("SKU-EMPTY", 0)
	suite.seedItem("SKU-AT", 5)
	suite.seedItem("SKU-ABOVE", 6)

	query, err := queries.NewGetLowStockItemsQuery(5)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("SKU-EMPTY", result[0].ProductCode, "emptiest shelf comes first")
	suite.Equal("SKU-AT", result[1].ProductCode)
}

func (suite *GetLowStockItemsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetLowStockItemsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetLowStockItemsQuery constructor")
}

func TestGetLowStockItemsQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(GetLowStockItemsQueryHandlerTestSuite))
}
