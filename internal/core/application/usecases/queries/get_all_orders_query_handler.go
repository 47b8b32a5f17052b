package queries

import (
	"context"

	"ordering/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves the staff-facing order listing from
// the database.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the all-orders listing.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query. Only managers and admins may list all orders.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Actor().IsStaff() {
		return nil, services.ErrActorNotAllowed
	}

	sql := `
		SELECT
			o.id,
			o.owner_id,
			o.status,
			o.created_at,
			COUNT(i.product_id),
			COALESCE(SUM(i.quantity * i.unit_price), 0)
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
	`
	args := make([]any, 0, 3)
	if filter := query.StatusFilter(); filter != nil {
		sql += ` WHERE o.status = ?`
		args = append(args, int(*filter))
	}
	sql += `
		GROUP BY o.id, o.owner_id, o.status, o.created_at
		ORDER BY o.created_at DESC, o.id
		LIMIT ? OFFSET ?
	`
	args = append(args, query.Limit(), query.Offset())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
