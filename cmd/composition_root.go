package cmd

import (
	"log/slog"
	"time"

	httpin "staffing/internal/adapters/in/http"
	"staffing/internal/adapters/out/notify"
	"staffing/internal/adapters/out/postgres"
	"staffing/internal/adapters/out/postgres/outboxrepo"
	"staffing/internal/adapters/out/postgres/settingsrepo"
	"staffing/internal/core/application/notification"
	"staffing/internal/core/application/usecases/commands"
	"staffing/internal/core/application/usecases/queries"
	"staffing/internal/core/ports"
	"staffing/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	sender     ports.NotificationSender
	outbox     *outboxrepo.GormOutboxRepository
	dispatcher *notification.Dispatcher
	location   *time.Location
	logger     *slog.Logger
}

// NewCompositionRoot wires the adapters. redisClient may be nil when the
// log notifier is configured.
func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) CompositionRoot {
	var sender ports.NotificationSender
	if config.Notifier == NotifierRedis && redisClient != nil {
		sender = notify.NewRedisStreamSender(redisClient, config.NotificationStream, config.NotificationStreamLen)
	} else {
		sender = notify.NewLogSender(logger)
	}

	location := config.Location()
	outbox := outboxrepo.NewGormOutboxRepository(gormDB)
	dispatcher := notification.NewDispatcher(
		sender,
		settingsrepo.NewGormSettingsRepository(gormDB),
		outbox,
		location,
		logger,
	)

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		sender:     sender,
		outbox:     outbox,
		dispatcher: dispatcher,
		location:   location,
		logger:     logger,
	}
}

func (c *CompositionRoot) assignmentUoWFactory() commands.AssignmentUoWFactory {
	return FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAssignApplicationCommandHandler() commands.AssignApplicationCommandHandler {
	return commands.NewAssignApplicationCommandHandler(c.assignmentUoWFactory(), c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateAssignApplicationsCommandHandler() commands.AssignApplicationsCommandHandler {
	return commands.NewAssignApplicationsCommandHandler(c.assignmentUoWFactory(), c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateAssignWorkerToJobsCommandHandler() commands.AssignWorkerToJobsCommandHandler {
	return commands.NewAssignWorkerToJobsCommandHandler(c.assignmentUoWFactory(), c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateRescheduleApplicationCommandHandler() commands.RescheduleApplicationCommandHandler {
	var f commands.ApplicationUoWFactory = FuncApplicationUoWFactory(func() commands.ApplicationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRescheduleApplicationCommandHandler(f)
}

func (c *CompositionRoot) ingestionUoWFactory() commands.IngestionUoWFactory {
	return FuncIngestionUoWFactory(func() commands.IngestionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateBulkCreateJobsCommandHandler() commands.BulkCreateJobsCommandHandler {
	return commands.NewBulkCreateJobsCommandHandler(c.ingestionUoWFactory(), c.location, c.logger)
}

func (c *CompositionRoot) CreateBulkUpdateJobsCommandHandler() commands.BulkUpdateJobsCommandHandler {
	return commands.NewBulkUpdateJobsCommandHandler(c.ingestionUoWFactory(), c.location, c.logger)
}

func (c *CompositionRoot) CreateRedeliverNotificationsCommandHandler() commands.RedeliverNotificationsCommandHandler {
	return commands.NewRedeliverNotificationsCommandHandler(c.outbox, c.sender, c.logger)
}

func (c *CompositionRoot) CreateGetJobApplicationsQueryHandler() queries.GetJobApplicationsQueryHandler {
	return queries.NewGetJobApplicationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		SetStatus:          c.CreateAssignApplicationCommandHandler(),
		Reschedule:         c.CreateRescheduleApplicationCommandHandler(),
		AssignApplications: c.CreateAssignApplicationsCommandHandler(),
		AssignWorker:       c.CreateAssignWorkerToJobsCommandHandler(),
		BulkCreate:         c.CreateBulkCreateJobsCommandHandler(),
		BulkUpdate:         c.CreateBulkUpdateJobsCommandHandler(),
		JobApplications:    c.CreateGetJobApplicationsQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	command, err := commands.NewRedeliverNotificationsCommand(c.config.NotificationMaxAttempts, c.config.NotificationBatchSize)
	if err != nil {
		return nil, err
	}
	redelivery := jobs.NewNotificationRedeliveryJob(
		c.CreateRedeliverNotificationsCommandHandler(),
		command,
		c.config.NotificationRetrySchedule,
		c.logger,
	)
	return jobs.NewJobManager(redelivery), nil
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncApplicationUoWFactory func() commands.ApplicationUoW

func (f FuncApplicationUoWFactory) Create() commands.ApplicationUoW {
	return f()
}

type FuncIngestionUoWFactory func() commands.IngestionUoW

func (f FuncIngestionUoWFactory) Create() commands.IngestionUoW {
	return f()
}
