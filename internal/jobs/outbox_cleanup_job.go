package jobs

import (
	"context"
	"log/slog"
	"time"

	"bloodlink/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OutboxCleanupJob manages the scheduled deletion of processed outbox
// events. Runs hourly; events are kept for the retention window so recent
// dispatch activity stays inspectable.
type OutboxCleanupJob struct {
	handler   commands.PurgeOutboxCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxCleanupJob creates a new job for purging the notification outbox.
func NewOutboxCleanupJob(
	handler commands.PurgeOutboxCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *OutboxCleanupJob {
	return &OutboxCleanupJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "outbox_cleanup_job"),
	}
}

// Start begins the outbox cleanup job to run at the top of every hour.
func (j *OutboxCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewPurgeOutboxCommand(j.retention)
		if err != nil {
			j.logger.ErrorContext(ctx, "Outbox cleanup job misconfigured", "error", err)
			return
		}

		deleted, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Outbox cleanup job failed", "error", err)
			return
		}

		if deleted > 0 {
			j.logger.InfoContext(ctx, "Purged processed outbox events", "deleted", deleted)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox cleanup job started (running hourly)")
	return nil
}

// Stop stops the outbox cleanup job.
func (j *OutboxCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox cleanup job stopped")
}
