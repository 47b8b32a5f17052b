package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// QueueMonitorJob periodically reports the notification queue state. Runs
// every five seconds and stays silent while the queue is empty and idle.
type QueueMonitorJob struct {
	queue  ports.NotificationQueue
	cron   *cron.Cron
	logger *slog.Logger
}

// NewQueueMonitorJob creates a job that watches the notification queue.
func NewQueueMonitorJob(queue ports.NotificationQueue, logger *slog.Logger) *QueueMonitorJob {
	return &QueueMonitorJob{
		queue:  queue,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "queue_monitor_job"),
	}
}

// Start begins the queue monitor job to run every five seconds.
func (j *QueueMonitorJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		status := j.queue.Status()
		if status.Pending == 0 && !status.IsDraining {
			return
		}

		j.logger.InfoContext(context.Background(), "Notification queue backlog",
			"pending", status.Pending,
			"draining", status.IsDraining,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Queue monitor job started (running every 5 seconds)")
	return nil
}

// Stop stops the queue monitor job.
func (j *QueueMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Queue monitor job stopped")
}
