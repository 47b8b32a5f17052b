package queries

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its lines from the
// database, applying the read policy before returning anything.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when the order does
// not exist and services.ErrActorNotAllowed when the actor is neither the
// owner nor staff.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var row struct {
		ID        uuid.UUID
		OwnerID   uuid.UUID
		Status    int
		CreatedAt time.Time
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			status,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Scan(&row)
	if result.Error != nil {
		return GetOrderQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	orderID, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(row.OwnerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	act := query.Actor()
	if !ownerID.IsEqual(act.UserID()) && !act.IsStaff() {
		return GetOrderQueryResponse{}, services.ErrActorNotAllowed
	}

	resp := GetOrderQueryResponse{
		ID:        orderID,
		OwnerID:   ownerID,
		Status:    order.Status(row.Status),
		CreatedAt: row.CreatedAt,
	}

	if resp.Items, err = h.loadItems(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}
	for _, item := range resp.Items {
		resp.Total += item.Total
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context,
	orderID kernel.UUID) ([]OrderItemResponse, error) {
	items := make([]OrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var productID uuid.UUID
		var quantity int
		var unitPrice int64

		if err = rows.Scan(&productID, &quantity, &unitPrice); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		items = append(items, OrderItemResponse{
			ProductID: id,
			Quantity:  quantity,
			UnitPrice: unitPrice,
			Total:     int64(quantity) * unitPrice,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
