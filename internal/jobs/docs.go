// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the storefront service.
//
// # Available Jobs
//
// 1. CatalogReconciliationJob - Runs every ten minutes to detect drift between the category directory and the physical catalog partitions
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(divergenceHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Reconciliation failures are logged and retried on the next tick
// - Detected drift is logged as a warning; resolving it is an operator decision
// - Failed job starts will stop any already running jobs
package jobs
