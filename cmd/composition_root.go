package cmd

import (
	"gorm.io/gorm"

	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/userrepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/metrics"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	directory  ports.UserDirectory
	publisher  *kafka.NotificationPublisher
	metrics    *metrics.Registry
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		directory:  userrepo.NewGormUserDirectory(gormDB),
		publisher:  kafka.NewNotificationPublisher(configs.KafkaHost, configs.KafkaNotificationTopic),
		metrics:    metrics.NewRegistry(),
	}
}

func (c *CompositionRoot) Metrics() *metrics.Registry {
	return c.metrics
}

func (c *CompositionRoot) ClosePublisher() error {
	return c.publisher.Close()
}

func (c *CompositionRoot) commandUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSetRequestStatusCommandHandler() commands.SetRequestStatusCommandHandler {
	return commands.NewSetRequestStatusCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	return commands.NewSetOrderStatusCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateCreateAlertCommandHandler() commands.CreateAlertCommandHandler {
	return commands.NewCreateAlertCommandHandler(c.commandUoWFactory(), c.directory)
}

func (c *CompositionRoot) CreateDeleteAlertCommandHandler() commands.DeleteAlertCommandHandler {
	return commands.NewDeleteAlertCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateBookProcurementCommandHandler() commands.BookProcurementCommandHandler {
	return commands.NewBookProcurementCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateCompleteProcurementCommandHandler() commands.CompleteProcurementCommandHandler {
	return commands.NewCompleteProcurementCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateDispatchNotificationsCommandHandler() commands.DispatchNotificationsCommandHandler {
	return commands.NewDispatchNotificationsCommandHandler(c.commandUoWFactory(), c.publisher, c.metrics)
}

func (c *CompositionRoot) CreateGetAvailableInventoryQueryHandler() queries.GetAvailableInventoryQueryHandler {
	return queries.NewGetAvailableInventoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateSetRequestStatusCommandHandler(),
		c.CreateSetOrderStatusCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateCreateAlertCommandHandler(),
		c.CreateDeleteAlertCommandHandler(),
		c.CreateBookProcurementCommandHandler(),
		c.CreateCompleteProcurementCommandHandler(),
		c.CreateGetAvailableInventoryQueryHandler(),
		c.directory,
		c.metrics,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
