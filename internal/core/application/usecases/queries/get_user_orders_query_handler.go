package queries

import (
	"context"
	"database/sql"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler retrieves a user's order history from the
// database as order summaries.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for order history queries.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the query. Customers may only see their own history.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	act := query.Actor()
	if !query.UserID().IsEqual(act.UserID()) && !act.IsStaff() {
		return nil, services.ErrActorNotAllowed
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.owner_id,
			o.status,
			o.created_at,
			COUNT(i.product_id),
			COALESCE(SUM(i.quantity * i.unit_price), 0)
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.owner_id = ?
		GROUP BY o.id, o.owner_id, o.status, o.created_at
		ORDER BY o.created_at DESC, o.id
		LIMIT ? OFFSET ?
	`, query.UserID().Bytes(), query.Limit(), query.Offset()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

// scanOrderSummaries reads order summary rows produced by the listing
// queries; the column order is fixed across them.
func scanOrderSummaries(rows *sql.Rows) ([]OrderSummaryResponse, error) {
	summaries := make([]OrderSummaryResponse, 0)

	for rows.Next() {
		var id, ownerID uuid.UUID
		var status int
		var createdAt time.Time
		var itemCount int
		var total int64

		if err := rows.Scan(&id, &ownerID, &status, &createdAt, &itemCount, &total); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		owner, err := kernel.UUIDFromBytes(ownerID[:])
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, OrderSummaryResponse{
			ID:        orderID,
			OwnerID:   owner,
			Status:    order.Status(status),
			CreatedAt: createdAt,
			ItemCount: itemCount,
			Total:     total,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
