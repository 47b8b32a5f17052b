package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	adapterhttp "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/notifier"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/jobs"
	"ordering/internal/notifications"
	"ordering/internal/pkg/monitoring"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	policy     services.TransitionPolicy
	queue      *notifications.Queue
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	latency, err := notifierLatency(config)
	if err != nil {
		return CompositionRoot{}, err
	}

	metrics := monitoring.NewNotificationMetrics(prometheus.DefaultRegisterer)

	dispatcher, err := notifier.NewLogNotifier(latency, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	queue, err := notifications.NewQueue(dispatcher, logger, metrics)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     services.NewTransitionPolicy(),
		queue:      queue,
		logger:     logger,
	}, nil
}

func notifierLatency(config Config) (time.Duration, error) {
	if config.NotifierLatencyMS == "" {
		return 0, nil
	}

	ms, err := strconv.Atoi(config.NotifierLatencyMS)
	if err != nil {
		return 0, fmt.Errorf("invalid NOTIFIER_LATENCY_MS: %w", err)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// NotificationQueue exposes the queue port for jobs and the HTTP adapter.
func (c *CompositionRoot) NotificationQueue() ports.NotificationQueue {
	return c.queue
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.policy, c.queue)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderStatusCommandHandler(f, c.policy, c.queue)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateRestockProductCommandHandler() commands.RestockProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRestockProductCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatisticsQueryHandler() queries.GetOrderStatisticsQueryHandler {
	return queries.NewGetOrderStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() (*adapterhttp.Server, error) {
	return adapterhttp.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAdvanceOrderStatusCommandHandler(),
		c.CreateCreateProductCommandHandler(),
		c.CreateRestockProductCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetUserOrdersQueryHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetOrderStatisticsQueryHandler(),
		c.CreateGetProductsQueryHandler(),
		c.CreateGetProductQueryHandler(),
		c.queue,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.queue, c.CreateGetOrderStatisticsQueryHandler(), c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
