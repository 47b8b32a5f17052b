package http

import (
	"time"

	"ordering/internal/core/application/usecases/queries"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderRequest is the body of POST /api/v1/orders.
type NewOrderRequest struct {
	Items []NewOrderItemRequest `json:"items"`
}

// NewOrderItemRequest is one requested order line.
type NewOrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// UpdateOrderStatusRequest is the body of PUT /api/v1/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// NewProductRequest is the body of POST /api/v1/products.
type NewProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Stock       int    `json:"stock"`
}

// RestockProductRequest is the body of POST /api/v1/products/:id/restock.
type RestockProductRequest struct {
	Quantity int `json:"quantity"`
}

// OrderCreatedResponse is returned by POST /api/v1/orders.
type OrderCreatedResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// OrderItemResponse is one order line in read responses. Prices in cents.
type OrderItemResponse struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	Total     int64  `json:"total"`
}

// OrderResponse is the full order read model.
type OrderResponse struct {
	ID        string              `json:"id"`
	OwnerID   string              `json:"ownerId"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
	Total     int64               `json:"total"`
	Items     []OrderItemResponse `json:"items"`
}

// OrderSummaryResponse is one order in listings.
type OrderSummaryResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	ItemCount int       `json:"itemCount"`
	Total     int64     `json:"total"`
}

// OrderStatisticsResponse holds order counts keyed by status name.
type OrderStatisticsResponse struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
}

// ProductResponse is a catalog product. Price in cents.
type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Stock       int    `json:"stock"`
}

// ProductCreatedResponse is returned by POST /api/v1/products.
type ProductCreatedResponse struct {
	ID string `json:"id"`
}

// HealthResponse reports process liveness and the notification queue state.
type HealthResponse struct {
	Status        string `json:"status"`
	QueuePending  int    `json:"queuePending"`
	QueueDraining bool   `json:"queueDraining"`
}

func orderResponseFromQuery(resp queries.GetOrderQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total,
		})
	}

	return OrderResponse{
		ID:        resp.ID.String(),
		OwnerID:   resp.OwnerID.String(),
		Status:    resp.Status.String(),
		CreatedAt: resp.CreatedAt,
		Total:     resp.Total,
		Items:     items,
	}
}

func orderSummariesFromQuery(summaries []queries.OrderSummaryResponse) []OrderSummaryResponse {
	response := make([]OrderSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		response = append(response, OrderSummaryResponse{
			ID:        summary.ID.String(),
			OwnerID:   summary.OwnerID.String(),
			Status:    summary.Status.String(),
			CreatedAt: summary.CreatedAt,
			ItemCount: summary.ItemCount,
			Total:     summary.Total,
		})
	}
	return response
}

func productResponseFromQuery(resp queries.ProductResponse) ProductResponse {
	return ProductResponse{
		ID:          resp.ID.String(),
		Name:        resp.Name,
		Description: resp.Description,
		Price:       resp.Price,
		Stock:       resp.Stock,
	}
}
