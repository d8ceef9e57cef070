// Package jobs provides scheduled background tasks for the billing core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the billing workflow.
//
// # Available Jobs
//
// 1. InvoiceOverdueJob - Flags pending invoices past their due date as overdue
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(markOverdueHandler, "0 2 * * *", logger)
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
// The overdue sweep uses a standard five-field cron expression taken from
// configuration. Daily in the early morning is the expected cadence; the
// sweep is idempotent, so a more frequent schedule is safe.
//
// # Error Handling
//
// The overdue sweep runs in one transaction. A failed run logs the error and
// leaves every invoice untouched; the next run picks them all up again.
package jobs
