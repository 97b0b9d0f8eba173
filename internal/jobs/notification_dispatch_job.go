package jobs

import (
	"context"
	"log/slog"

	"bloodlink/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NotificationDispatchJob manages the scheduled draining of the notification
// outbox. Runs every second to fan status change events out to hospital and
// center staff.
type NotificationDispatchJob struct {
	handler   commands.DispatchNotificationsCommandHandler
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewNotificationDispatchJob creates a new job for dispatching notifications.
// Uses DispatchNotificationsCommandHandler to drain up to batchSize events
// per pass.
func NewNotificationDispatchJob(
	handler commands.DispatchNotificationsCommandHandler,
	batchSize int,
	logger *slog.Logger,
) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		handler:   handler,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "notification_dispatch_job"),
	}
}

// Start begins the notification dispatch job to run every second.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewDispatchNotificationsCommand(j.batchSize)
		if err != nil {
			j.logger.ErrorContext(ctx, "Notification dispatch job misconfigured", "error", err)
			return
		}

		processed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Notification dispatch job failed", "error", err)
			return
		}

		if processed > 0 {
			j.logger.InfoContext(ctx, "Dispatched notification events", "processed", processed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started (running every second)")
	return nil
}

// Stop stops the notification dispatch job.
func (j *NotificationDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}
