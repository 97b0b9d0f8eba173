package cmd

import (
	"log/slog"

	"bloodlink/internal/adapters/out/postgres"
	"bloodlink/internal/adapters/out/postgres/userdirectory"
	"bloodlink/internal/core/application/usecases/commands"
	"bloodlink/internal/core/application/usecases/queries"
	"bloodlink/internal/core/domain/services"
	"bloodlink/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. Each Create method hands out
// a ready handler; handlers are cheap and built per call.
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

func (c *CompositionRoot) allocationUoWFactory() commands.AllocationUoWFactory {
	return FuncAllocationUoWFactory(func() commands.AllocationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) lifecycleUoWFactory() commands.LifecycleUoWFactory {
	return FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) dispatchUoWFactory() commands.DispatchUoWFactory {
	return FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.allocationUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.allocationUoWFactory())
}

func (c *CompositionRoot) CreateUpdateStatusCommandHandler() commands.UpdateStatusCommandHandler {
	return commands.NewUpdateStatusCommandHandler(c.lifecycleUoWFactory())
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	return commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateMarkAllNotificationsReadCommandHandler() commands.MarkAllNotificationsReadCommandHandler {
	return commands.NewMarkAllNotificationsReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateDispatchNotificationsCommandHandler() commands.DispatchNotificationsCommandHandler {
	return commands.NewDispatchNotificationsCommandHandler(
		c.dispatchUoWFactory(),
		userdirectory.NewGormUserDirectory(c.gormDB),
		services.NewAlertDispatcher(),
		c.logger,
	)
}

func (c *CompositionRoot) CreatePurgeOutboxCommandHandler() commands.PurgeOutboxCommandHandler {
	return commands.NewPurgeOutboxCommandHandler(c.lifecycleUoWFactory())
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveriesQueryHandler() queries.GetDeliveriesQueryHandler {
	return queries.NewGetDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBloodUnitQueryHandler() queries.GetBloodUnitQueryHandler {
	return queries.NewGetBloodUnitQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBloodUnitsQueryHandler() queries.GetBloodUnitsQueryHandler {
	return queries.NewGetBloodUnitsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnreadCountQueryHandler() queries.GetUnreadCountQueryHandler {
	return queries.NewGetUnreadCountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateDispatchNotificationsCommandHandler(),
		c.CreatePurgeOutboxCommandHandler(),
		c.config.DispatchBatchSize,
		c.config.OutboxRetention,
		c.logger,
	)
}

type FuncAllocationUoWFactory func() commands.AllocationUoW

func (f FuncAllocationUoWFactory) Create() commands.AllocationUoW {
	return f()
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}
