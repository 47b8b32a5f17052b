// Package http is the inbound REST adapter. It translates requests into
// commands and queries, resolves the acting identity from headers, and maps
// application errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/monitoring"

	"github.com/labstack/echo/v4"
)

var ErrServerIsNotConstructed = errors.New("Server must be created via NewServer constructor")

// Server wires HTTP routes to the application layer.
type Server struct {
	createOrderHandler        commands.CreateOrderCommandHandler
	advanceOrderStatusHandler commands.AdvanceOrderStatusCommandHandler
	createProductHandler      commands.CreateProductCommandHandler
	restockProductHandler     commands.RestockProductCommandHandler

	getOrderHandler      queries.GetOrderQueryHandler
	getUserOrdersHandler queries.GetUserOrdersQueryHandler
	getAllOrdersHandler  queries.GetAllOrdersQueryHandler
	getStatisticsHandler queries.GetOrderStatisticsQueryHandler
	getProductsHandler   queries.GetProductsQueryHandler
	getProductHandler    queries.GetProductQueryHandler

	queue ports.NotificationQueue

	isConstructed bool
}

// NewServer creates the REST adapter.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	advanceOrderStatusHandler commands.AdvanceOrderStatusCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	restockProductHandler commands.RestockProductCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getStatisticsHandler queries.GetOrderStatisticsQueryHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	getProductHandler queries.GetProductQueryHandler,
	queue ports.NotificationQueue,
) (*Server, error) {
	if queue == nil {
		return nil, errs.NewValueIsRequiredError("queue")
	}

	return &Server{
		createOrderHandler:        createOrderHandler,
		advanceOrderStatusHandler: advanceOrderStatusHandler,
		createProductHandler:      createProductHandler,
		restockProductHandler:     restockProductHandler,
		getOrderHandler:           getOrderHandler,
		getUserOrdersHandler:      getUserOrdersHandler,
		getAllOrdersHandler:       getAllOrdersHandler,
		getStatisticsHandler:      getStatisticsHandler,
		getProductsHandler:        getProductsHandler,
		getProductHandler:         getProductHandler,
		queue:                     queue,
		isConstructed:             true,
	}, nil
}

func (s *Server) Validate() error {
	if !s.isConstructed {
		return ErrServerIsNotConstructed
	}
	return nil
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/my", s.GetMyOrders)
	api.GET("/orders/statistics", s.GetOrderStatistics)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders", s.GetAllOrders)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.GET("/products", s.GetProducts)
	api.GET("/products/:id", s.GetProduct)
	api.POST("/products", s.CreateProduct)
	api.POST("/products/:id/restock", s.RestockProduct)

	e.GET("/health", s.GetHealth)
	e.GET("/metrics", echo.WrapHandler(monitoring.Handler()))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	act, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, http.StatusUnauthorized, err)
	}

	var request NewOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	lines := make([]commands.OrderLine, 0, len(request.Items))
	for _, item := range request.Items {
		productID, parseErr := kernel.UUIDFromString(item.ProductID)
		if parseErr != nil {
			return respondError(ctx, http.StatusBadRequest, parseErr)
		}
		line, lineErr := commands.NewOrderLine(productID, item.Quantity)
		if lineErr != nil {
			return problem(ctx, lineErr)
		}
		lines = append(lines, line)
	}

	orderID := kernel.NewUUID()
	createCommand, err := commands.NewCreateOrderCommand(orderID, act, lines)
	if err != nil {
		return problem(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), createCommand); err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreatedResponse{
		ID:     orderID.String(),
		Status: order.Pending.String(),
	})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	act, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, http.StatusUnauthorized, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, act)
	if err != nil {
		return problem(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromQuery(resp))
}

// GetMyOrders handles GET /api/v1/orders/my.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	act, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, http.StatusUnauthorized, err)
	}

	page, limit, err := paging(ctx)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	query, err := queries.NewGetUserOrdersQuery(act.UserID(), act, page, limit)
	if err != nil {
		return problem(ctx, err)
	}

	summaries, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderSummariesFromQuery(summaries))
}

// GetAllOrders handles GET /api/v1/orders. Staff only, optional status filter.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	act, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, http.StatusUnauthorized, err)
	}

	page, limit, err := paging(ctx)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, parseErr := order.StatusFromString(raw)
		if parseErr != nil {
			return respondError(ctx, http.StatusBadRequest, parseErr)
		}
		statusFilter = &status
	}

	query, err := queries.NewGetAllOrdersQuery(act, page, limit, statusFilter)
	if err != nil {
		return problem(ctx, err)
	}

	summaries, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderSummariesFromQuery(summaries))
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var request UpdateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	newStatus, err := order.StatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	return s.advanceOrder(ctx, newStatus)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.advanceOrder(ctx, order.Cancelled)
}

func (s *Server) advanceOrder(ctx echo.Context, newStatus order.Status) error {
	act, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, http.StatusUnauthorized, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	statusCommand, err := commands.NewAdvanceOrderStatusCommand(orderID, newStatus, act)
	if err != nil {
		return problem(ctx, err)
	}

	if err = s.advanceOrderStatusHandler.Handle(ctx.Request().Context(), statusCommand); err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderCreatedResponse{
		ID:     orderID.String(),
		Status: newStatus.String(),
	})
}

// GetOrderStatistics handles GET /api/v1/orders/statistics. Staff only; the
// underlying query is actorless because the reporting job shares it, so the
// role check lives here.
func (s *Server) GetOrderStatistics(ctx echo.Context) error {
	act, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, http.StatusUnauthorized, err)
	}
	if !act.IsStaff() {
		return problem(ctx, services.ErrActorNotAllowed)
	}

	resp, err := s.getStatisticsHandler.Handle(ctx.Request().Context(),
		queries.NewGetOrderStatisticsQuery())
	if err != nil {
		return problem(ctx, err)
	}

	byStatus := make(map[string]int64, len(resp.ByStatus))
	for status, count := range resp.ByStatus {
		byStatus[status.String()] = count
	}

	return ctx.JSON(http.StatusOK, OrderStatisticsResponse{
		Total:    resp.Total,
		ByStatus: byStatus,
	})
}

// GetProducts handles GET /api/v1/products. The catalog is readable without
// identity headers.
func (s *Server) GetProducts(ctx echo.Context) error {
	page, limit, err := paging(ctx)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	query, err := queries.NewGetProductsQuery(page, limit, ctx.QueryParam("search"))
	if err != nil {
		return problem(ctx, err)
	}

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	response := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, productResponseFromQuery(p))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetProduct handles GET /api/v1/products/:id.
func (s *Server) GetProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return problem(ctx, err)
	}

	resp, err := s.getProductHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productResponseFromQuery(resp))
}

// CreateProduct handles POST /api/v1/products. Admin only.
func (s *Server) CreateProduct(ctx echo.Context) error {
	act, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, http.StatusUnauthorized, err)
	}

	var request NewProductRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	productID := kernel.NewUUID()
	productCommand, err := commands.NewCreateProductCommand(productID, request.Name,
		request.Description, request.Price, request.Stock, act)
	if err != nil {
		return problem(ctx, err)
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), productCommand); err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ProductCreatedResponse{ID: productID.String()})
}

// RestockProduct handles POST /api/v1/products/:id/restock. Admin only.
func (s *Server) RestockProduct(ctx echo.Context) error {
	act, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, http.StatusUnauthorized, err)
	}

	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	var request RestockProductRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	restockCommand, err := commands.NewRestockProductCommand(productID, request.Quantity, act)
	if err != nil {
		return problem(ctx, err)
	}

	if err = s.restockProductHandler.Handle(ctx.Request().Context(), restockCommand); err != nil {
		return problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	status := s.queue.Status()
	return ctx.JSON(http.StatusOK, HealthResponse{
		Status:        "ok",
		QueuePending:  status.Pending,
		QueueDraining: status.IsDraining,
	})
}

func paging(ctx echo.Context) (int, int, error) {
	page := 1
	limit := queries.DefaultPageSize

	if raw := ctx.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errs.NewValueIsInvalidErrorWithCause("page", err)
		}
		page = parsed
	}

	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errs.NewValueIsInvalidErrorWithCause("limit", err)
		}
		limit = parsed
	}

	return page, limit, nil
}
