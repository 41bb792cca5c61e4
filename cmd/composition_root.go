package cmd

import (
	httpin "tms/internal/adapters/in/http"
	"tms/internal/adapters/out/postgres"
	"tms/internal/adapters/out/postgres/userrepo"
	"tms/internal/auth"
	"tms/internal/core/application/usecases/commands"
	"tms/internal/core/application/usecases/queries"
	"tms/internal/jobs"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	log        logrus.FieldLogger
	uowFactory *postgres.GormUnitOfWorkFactory
	auth       *auth.Service

	exportMaxRows int
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, log logrus.FieldLogger) (*CompositionRoot, error) {
	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return nil, err
	}
	users := userrepo.NewGormUserRepository(gormDB)

	return &CompositionRoot{
		gormDB:     gormDB,
		log:        log,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, log),
		auth:       auth.NewService(users, users, tokens, log),

		exportMaxRows: cfg.ExportMaxRows,
	}, nil
}

func (c *CompositionRoot) AuthService() *auth.Service {
	return c.auth
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.auth,
		httpin.CommandHandlers{
			CreateDriver:       c.CreateCreateDriverCommandHandler(),
			UpdateDriver:       c.CreateUpdateDriverCommandHandler(),
			ToggleDriverActive: c.CreateToggleDriverActiveCommandHandler(),
			CreateOrder:        c.CreateCreateOrderCommandHandler(),
			UpdateOrder:        c.CreateUpdateOrderCommandHandler(),
			AdvanceOrderStatus: c.CreateAdvanceOrderStatusCommandHandler(),
			DeleteOrder:        c.CreateDeleteOrderCommandHandler(),
		},
		httpin.QueryHandlers{
			GetAllDrivers: c.CreateGetAllDriversQueryHandler(),
			GetDriver:     c.CreateGetDriverQueryHandler(),
			ListOrders:    c.CreateListOrdersQueryHandler(),
			GetOrder:      c.CreateGetOrderQueryHandler(),
			GetDashboard:  c.CreateGetDashboardQueryHandler(),
			ExportOrders:  c.CreateExportOrdersQueryHandler(),
		},
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.auth, c.log)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	return commands.NewCreateDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDriverCommandHandler() commands.UpdateDriverCommandHandler {
	return commands.NewUpdateDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateToggleDriverActiveCommandHandler() commands.ToggleDriverActiveCommandHandler {
	return commands.NewToggleDriverActiveCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	return commands.NewAdvanceOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetAllDriversQueryHandler() queries.GetAllDriversQueryHandler {
	return queries.NewGetAllDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverQueryHandler() queries.GetDriverQueryHandler {
	return queries.NewGetDriverQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateExportOrdersQueryHandler() queries.ExportOrdersQueryHandler {
	return queries.NewExportOrdersQueryHandler(c.gormDB, c.exportMaxRows)
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
