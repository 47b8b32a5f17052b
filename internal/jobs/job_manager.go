package jobs

import (
	"fmt"
	"log/slog"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	queueMonitorJob    *QueueMonitorJob
	orderStatisticsJob *OrderStatisticsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	queue ports.NotificationQueue,
	statisticsHandler queries.GetOrderStatisticsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		queueMonitorJob:    NewQueueMonitorJob(queue, logger),
		orderStatisticsJob: NewOrderStatisticsJob(statisticsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.queueMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start queue monitor job: %w", err)
	}

	if err := jm.orderStatisticsJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.queueMonitorJob.Stop()
		return fmt.Errorf("failed to start order statistics job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderStatisticsJob.Stop()
	jm.queueMonitorJob.Stop()
}
