// Package jobs provides scheduled background tasks for the procurement system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the procurement service.
//
// # Available Jobs
//
// 1. OverdueDeliveryJob - Runs hourly to flag deliveries whose scheduled date
// has passed without a delivery confirmation
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(overdueDeliveriesHandler, logger)
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
// The overdue sweep uses the cron expression "0 0 * * * *", running at the
// top of every hour. Overdue detection is read-only: the sweep logs flagged
// orders for follow-up and never mutates order state.
//
// # Error Handling
//
// - Sweep failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
