// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations:
//
// 1. QueueMonitorJob - Runs every five seconds and logs the notification
// queue backlog whenever events are pending or a drain is in flight.
// 2. OrderStatisticsJob - Runs every minute and logs order counts per status.
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(queue, statisticsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// Both jobs are read-only observers. They never mutate orders or the queue,
// so a failed run is logged and skipped rather than retried.
package jobs
