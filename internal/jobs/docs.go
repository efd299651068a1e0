// Package jobs provides scheduled background tasks for the orders service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OrderProgressJob moves every unfinished order one step forward per tick,
// standing in for the pharmacy and the lab updating their orders.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	progress := jobs.NewOrderProgressJob("@every 30s", listOrdersHandler, advanceHandler, logger)
//	jobManager := jobs.NewJobManager(progress)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The schedule comes from ORDER_PROGRESS_SCHEDULE. When it is empty the job is
// not created and orders only move through POST /api/v1/orders/{id}/advance.
// Overlapping ticks are skipped.
package jobs
