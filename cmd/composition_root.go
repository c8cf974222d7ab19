package cmd

import (
	"log/slog"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/auditrepo"
	"fulfillment/internal/adapters/out/postgres/dispatchrepo"
	"fulfillment/internal/adapters/out/postgres/inventoryrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

// MigrateSchema creates or updates every table the repositories use.
func (c *CompositionRoot) MigrateSchema() error {
	return c.gormDB.AutoMigrate(
		&inventoryrepo.ItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&dispatchrepo.DispatchOrderDTO{},
		&auditrepo.EntryDTO{},
	)
}

func (c *CompositionRoot) CreateCreateInventoryItemCommandHandler() commands.CreateInventoryItemCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateInventoryItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateInventoryItemCommandHandler() commands.UpdateInventoryItemCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateInventoryItemCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteInventoryItemCommandHandler() commands.DeleteInventoryItemCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteInventoryItemCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateCreateDispatchOrderCommandHandler() commands.CreateDispatchOrderCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDispatchOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDispatchOrderCommandHandler() commands.UpdateDispatchOrderCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDispatchOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetInventoryItemsQueryHandler() queries.GetInventoryItemsQueryHandler {
	return queries.NewGetInventoryItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockItemsQueryHandler() queries.GetLowStockItemsQueryHandler {
	return queries.NewGetLowStockItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDispatchOrdersQueryHandler() queries.GetDispatchOrdersQueryHandler {
	return queries.NewGetDispatchOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetLowStockItemsQueryHandler(),
		c.config.LowStockThreshold,
		c.logger,
	)
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}
