package cmd

import (
	"context"

	httpadapter "supplychain/internal/adapters/in/http"
	"supplychain/internal/adapters/out/postgres"
	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *zap.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateApplyTransitionCommandHandler() commands.ApplyTransitionCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyTransitionCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterStockCommandHandler() commands.RegisterStockCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterStockCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterPartnerCommandHandler() commands.RegisterPartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterPartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateDeactivatePartnerCommandHandler() commands.DeactivatePartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeactivatePartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateArchiveSettledOrdersCommandHandler() commands.ArchiveSettledOrdersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewArchiveSettledOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListStockQueryHandler() queries.ListStockQueryHandler {
	return queries.NewListStockQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the HTTP server.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	createOrder := c.CreateCreateOrderCommandHandler()
	applyTransition := c.CreateApplyTransitionCommandHandler()
	deleteOrder := c.CreateDeleteOrderCommandHandler()
	registerStock := c.CreateRegisterStockCommandHandler()
	registerPartner := c.CreateRegisterPartnerCommandHandler()
	deactivatePartner := c.CreateDeactivatePartnerCommandHandler()

	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:       &createOrder,
		ApplyTransition:   &applyTransition,
		DeleteOrder:       &deleteOrder,
		RegisterStock:     &registerStock,
		RegisterPartner:   &registerPartner,
		DeactivatePartner: &deactivatePartner,
		ListOrders:        c.CreateListOrdersQueryHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		ListStock:         c.CreateListStockQueryHandler(),
		Capabilities:      queries.NewCapabilitiesQueryHandler(),
		Health:            c.ping,
	})
}

func (c *CompositionRoot) CreateTokenVerifier() *httpadapter.TokenVerifier {
	return httpadapter.NewTokenVerifier(c.cfg.JWTSecret, c.cfg.JWTIssuer)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	archive := c.CreateArchiveSettledOrdersCommandHandler()
	return jobs.NewJobManager(&archive, c.cfg.Archive, c.logger)
}

func (c *CompositionRoot) ping(ctx context.Context) error {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
