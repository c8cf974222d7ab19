// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment service.
//
// # Available Jobs
//
// 1. LowStockAlertJob - Runs every minute to surface inventory items whose
// quantity has fallen to or below the replenishment threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getLowStockItemsHandler, threshold, logger)
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
// The alert job uses the cron expression "0 * * * * *", running at the top
// of every minute. Replenishment is a human follow-up, not a tight loop.
//
// # Error Handling
//
// - Query failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
