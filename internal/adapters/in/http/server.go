// Package http exposes the order lifecycle over a JSON REST API.
// It translates requests into commands and queries, and maps the
// application's sentinel errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"vinylshop/internal/core/application/usecases/commands"
	"vinylshop/internal/core/application/usecases/queries"
	"vinylshop/internal/core/domain/model/kernel"
	"vinylshop/internal/core/domain/model/order"
	"vinylshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the order API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	createOrderWithIDHandler commands.CreateOrderWithIDCommandHandler
	addItemsHandler          commands.AddItemsToOrderCommandHandler
	payOrderHandler          commands.PayOrderCommandHandler

	// Query handlers
	getOrderHandler queries.GetOrderQueryHandler

	metrics *Metrics
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	createOrderWithIDHandler commands.CreateOrderWithIDCommandHandler,
	addItemsHandler commands.AddItemsToOrderCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	metrics *Metrics,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		createOrderWithIDHandler: createOrderWithIDHandler,
		addItemsHandler:          addItemsHandler,
		payOrderHandler:          payOrderHandler,
		getOrderHandler:          getOrderHandler,
		metrics:                  metrics,
	}
}

// RegisterRoutes binds the order API onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", s.CreateOrder)
	e.PUT("/orders/:orderId", s.UpsertOrder)
	e.PUT("/orders/:orderId/items", s.AddItems)
	e.POST("/orders/:orderId/payment", s.PayOrder)
	e.GET("/orders/:orderId", s.GetOrder)
}

// CreateOrder handles POST /orders - creates a new order with a generated id.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body CreateOrderJSON
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	clientID, err := kernel.UUIDFromString(body.ClientID)
	if err != nil {
		return badRequest(ctx, "Invalid client id: "+err.Error())
	}

	items, err := itemsFromJSON(body.Items)
	if err != nil {
		return badRequest(ctx, "Invalid order items: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(clientID, items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, OrderCreatedJSON{OrderID: orderID.String()})
}

// UpsertOrder handles PUT /orders/{orderId} - creates an order under a
// client-supplied id. The operation is idempotent on the order id.
func (s *Server) UpsertOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body CreateOrderJSON
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	clientID, err := kernel.UUIDFromString(body.ClientID)
	if err != nil {
		return badRequest(ctx, "Invalid client id: "+err.Error())
	}

	items, err := itemsFromJSON(body.Items)
	if err != nil {
		return badRequest(ctx, "Invalid order items: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderWithIDCommand(orderID, clientID, items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderWithIDHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, OrderCreatedJSON{OrderID: orderID.String()})
}

// AddItems handles PUT /orders/{orderId}/items - appends items to an order.
// Adding to an unknown order is accepted and dropped; adding to a paid order
// is rejected with 409.
func (s *Server) AddItems(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body OrderItemsJSON
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items, err := itemsFromJSON(body.Items)
	if err != nil {
		return badRequest(ctx, "Invalid order items: "+err.Error())
	}

	cmd, err := commands.NewAddItemsToOrderCommand(orderID, items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.addItemsHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, order.ErrCanNotModifyPaidOrder) {
			return conflict(ctx, "Order is already paid and can not be modified")
		}
		return internalError(ctx, "Failed to add items to order")
	}

	return ctx.NoContent(http.StatusAccepted)
}

// PayOrder handles POST /orders/{orderId}/payment - settles an order.
func (s *Server) PayOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body PayOrderJSON
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	clientID, err := kernel.UUIDFromString(body.ClientID)
	if err != nil {
		return badRequest(ctx, "Invalid client id: "+err.Error())
	}

	amount, err := kernel.MoneyFromString(body.Amount.Amount, body.Amount.Currency)
	if err != nil {
		return badRequest(ctx, "Invalid amount: "+err.Error())
	}

	cmd, err := commands.NewPayOrderCommand(clientID, orderID, amount)
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	handleErr := s.payOrderHandler.Handle(ctx.Request().Context(), cmd)
	s.metrics.ObservePayment(handleErr)

	switch {
	case handleErr == nil:
		return ctx.NoContent(http.StatusOK)
	case errors.Is(handleErr, commands.ErrOrderNotFound):
		return notFound(ctx, "Order not found")
	case errors.Is(handleErr, commands.ErrOrderAlreadyPaid):
		return conflict(ctx, "Order is already paid")
	case errors.Is(handleErr, commands.ErrIncorrectAmount):
		return unprocessable(ctx, "Amount does not match order value plus delivery")
	case errors.Is(handleErr, kernel.ErrCurrencyMismatch):
		return unprocessable(ctx, "Payment currency does not match order currency")
	default:
		return internalError(ctx, "Failed to pay order")
	}
}

// GetOrder handles GET /orders/{orderId} - retrieves one order with its items.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Order not found")
		}
		return internalError(ctx, "Failed to retrieve order")
	}

	items := make([]OrderItemJSON, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = OrderItemJSON{
			ProductID: item.ProductID,
			Cost:      moneyToJSON(item.Price),
		}
	}

	return ctx.JSON(http.StatusOK, OrderJSON{
		OrderID:  resp.ID.String(),
		ClientID: resp.ClientID.String(),
		Status:   resp.Status,
		Items:    items,
		Total:    moneyToJSON(resp.Total),
	})
}

// itemsFromJSON converts request items into domain items.
func itemsFromJSON(jsonItems []OrderItemJSON) ([]order.Item, error) {
	items := make([]order.Item, 0, len(jsonItems))
	for _, it := range jsonItems {
		productID, err := order.NewProductID(it.ProductID)
		if err != nil {
			return nil, err
		}

		price, err := kernel.MoneyFromString(it.Cost.Amount, it.Cost.Currency)
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(productID, price)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

func moneyToJSON(m kernel.Money) MoneyJSON {
	return MoneyJSON{
		Amount:   m.Amount().String(),
		Currency: m.Currency(),
	}
}

func badRequest(ctx echo.Context, message string) error {
	return errorResponse(ctx, http.StatusBadRequest, message)
}

func notFound(ctx echo.Context, message string) error {
	return errorResponse(ctx, http.StatusNotFound, message)
}

func conflict(ctx echo.Context, message string) error {
	return errorResponse(ctx, http.StatusConflict, message)
}

func unprocessable(ctx echo.Context, message string) error {
	return errorResponse(ctx, http.StatusUnprocessableEntity, message)
}

func internalError(ctx echo.Context, message string) error {
	return errorResponse(ctx, http.StatusInternalServerError, message)
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorJSON{Code: code, Message: message})
}
