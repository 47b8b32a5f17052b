package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderStatisticsJob logs order counts per status once a minute. The numbers
// give operators a heartbeat of the shop without opening the dashboard.
type OrderStatisticsJob struct {
	handler queries.GetOrderStatisticsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderStatisticsJob creates a job that reports order statistics.
func NewOrderStatisticsJob(handler queries.GetOrderStatisticsQueryHandler,
	logger *slog.Logger) *OrderStatisticsJob {
	return &OrderStatisticsJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_statistics_job"),
	}
}

// Start begins the order statistics job to run every minute.
func (j *OrderStatisticsJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		resp, err := j.handler.Handle(ctx, queries.NewGetOrderStatisticsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Order statistics job failed", "error", err)
			return
		}

		attrs := make([]any, 0, 2*len(resp.ByStatus)+2)
		attrs = append(attrs, "total", resp.Total)
		for status, count := range resp.ByStatus {
			attrs = append(attrs, status.String(), count)
		}

		j.logger.InfoContext(ctx, "Order statistics", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order statistics job started (running every minute)")
	return nil
}

// Stop stops the order statistics job.
func (j *OrderStatisticsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order statistics job stopped")
}
