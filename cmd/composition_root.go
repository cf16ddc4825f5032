package cmd

import (
	"context"
	"log/slog"

	httpadapter "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	registry   *prometheus.Registry
	uowFactory *postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot wires every component around one database handle and
// one metrics registry.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		registry:   registry,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.config.OrderStatusStrictTransitions)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateFindOrderByIDQueryHandler() queries.FindOrderByIDQueryHandler {
	return queries.NewFindOrderByIDQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB, c.logger))
}

func (c *CompositionRoot) CreateFindOrdersByCustomerIDQueryHandler() queries.FindOrdersByCustomerIDQueryHandler {
	return queries.NewFindOrdersByCustomerIDQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB, c.logger))
}

func (c *CompositionRoot) CreateGetOrderStatusSummaryQueryHandler() queries.GetOrderStatusSummaryQueryHandler {
	return queries.NewGetOrderStatusSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer(ctx context.Context) (*httpadapter.Server, error) {
	createOrder := c.CreateCreateOrderCommandHandler()
	updateStatus := c.CreateUpdateOrderStatusCommandHandler()
	deleteOrder := c.CreateDeleteOrderCommandHandler()

	return httpadapter.NewServer(ctx, httpadapter.Handlers{
		CreateOrder:            &createOrder,
		FindOrderByID:          c.CreateFindOrderByIDQueryHandler(),
		FindOrdersByCustomerID: c.CreateFindOrdersByCustomerIDQueryHandler(),
		UpdateOrderStatus:      &updateStatus,
		DeleteOrder:            &deleteOrder,
	}, c.registry, c.logger)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	backlogJob, err := jobs.NewOrderBacklogJob(
		c.CreateGetOrderStatusSummaryQueryHandler(),
		c.config.OrderBacklogSchedule,
		c.registry,
		c.logger,
	)
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(backlogJob), nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
