package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatisticsQueryHandler computes order counts per status from the
// database.
type GetOrderStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatisticsQueryHandler creates a handler for the statistics
// query.
func NewGetOrderStatisticsQueryHandler(db *gorm.DB) GetOrderStatisticsQueryHandler {
	return GetOrderStatisticsQueryHandler{db: db}
}

// Handle executes the query. The response includes every known status with
// a zero count when no orders are in it.
func (h GetOrderStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatisticsQuery,
) (GetOrderStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}

	resp := GetOrderStatisticsQueryResponse{
		ByStatus: map[order.Status]int64{
			order.Pending:    0,
			order.Processing: 0,
			order.Shipped:    0,
			order.Delivered:  0,
			order.Cancelled:  0,
		},
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status int
		var count int64

		if err = rows.Scan(&status, &count); err != nil {
			return GetOrderStatisticsQueryResponse{}, err
		}

		resp.ByStatus[order.Status(status)] = count
		resp.Total += count
	}

	if err = rows.Err(); err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}

	return resp, nil
}
