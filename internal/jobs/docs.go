// Package jobs provides scheduled background tasks for the blood delivery
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment service.
//
// # Available Jobs
//
// 1. NotificationDispatchJob - Runs every second to drain the notification
// outbox and fan status change events out to hospital and center staff
// 2. OutboxCleanupJob - Runs hourly to delete processed outbox events past
// their retention window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchHandler, purgeHandler, batchSize, retention, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatch job uses the cron expression "* * * * * *" and runs every
// second, which keeps notification latency low without polling from request
// handlers. The cleanup job runs at the top of every hour.
package jobs
