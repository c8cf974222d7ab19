// Package http exposes the command and query handlers over a thin echo
// front end. Authentication lives outside this service; the acting user
// arrives as an opaque identifier in the X-Actor-ID header.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// actorHeader carries the identity of the acting user, supplied by the
// external auth layer in front of this service.
const actorHeader = "X-Actor-ID"

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// IDResponse is the JSON body returned when a resource is created.
type IDResponse struct {
	ID string `json:"id"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createInventoryItemHandler commands.CreateInventoryItemCommandHandler
	updateInventoryItemHandler commands.UpdateInventoryItemCommandHandler
	deleteInventoryItemHandler commands.DeleteInventoryItemCommandHandler
	createOrderHandler         commands.CreateOrderCommandHandler
	updateOrderStatusHandler   commands.UpdateOrderStatusCommandHandler
	createDispatchOrderHandler commands.CreateDispatchOrderCommandHandler
	updateDispatchOrderHandler commands.UpdateDispatchOrderCommandHandler

	// Query handlers
	getInventoryItemsHandler queries.GetInventoryItemsQueryHandler
	getOrdersHandler         queries.GetOrdersQueryHandler
	getOrderByIDHandler      queries.GetOrderByIDQueryHandler
	getDispatchOrdersHandler queries.GetDispatchOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createInventoryItemHandler commands.CreateInventoryItemCommandHandler,
	updateInventoryItemHandler commands.UpdateInventoryItemCommandHandler,
	deleteInventoryItemHandler commands.DeleteInventoryItemCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	createDispatchOrderHandler commands.CreateDispatchOrderCommandHandler,
	updateDispatchOrderHandler commands.UpdateDispatchOrderCommandHandler,
	getInventoryItemsHandler queries.GetInventoryItemsQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getDispatchOrdersHandler queries.GetDispatchOrdersQueryHandler,
) *Server {
	return &Server{
		createInventoryItemHandler: createInventoryItemHandler,
		updateInventoryItemHandler: updateInventoryItemHandler,
		deleteInventoryItemHandler: deleteInventoryItemHandler,
		createOrderHandler:         createOrderHandler,
		updateOrderStatusHandler:   updateOrderStatusHandler,
		createDispatchOrderHandler: createDispatchOrderHandler,
		updateDispatchOrderHandler: updateDispatchOrderHandler,
		getInventoryItemsHandler:   getInventoryItemsHandler,
		getOrdersHandler:           getOrdersHandler,
		getOrderByIDHandler:        getOrderByIDHandler,
		getDispatchOrdersHandler:   getDispatchOrdersHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/inventory", s.GetInventoryItems)
	api.POST("/inventory", s.CreateInventoryItem)
	api.PUT("/inventory/:id", s.UpdateInventoryItem)
	api.DELETE("/inventory/:id", s.DeleteInventoryItem)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrderByID)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)

	api.GET("/dispatch", s.GetDispatchOrders)
	api.POST("/dispatch", s.CreateDispatchOrder)
	api.PUT("/dispatch/:id", s.UpdateDispatchOrder)
}

// actorFromRequest extracts the acting user's ID from the request header.
func actorFromRequest(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(actorHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(actorHeader)
	}

	actor, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(actorHeader, err)
	}
	return actor, nil
}

// idFromPath extracts and validates a UUID path parameter.
func idFromPath(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// paginationFromRequest parses the page and limit query parameters,
// defaulting to the first page of twenty rows.
func paginationFromRequest(ctx echo.Context) (int, int, error) {
	page, limit := 1, 20

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

// respondError maps the error kinds of the core to HTTP status codes.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrDuplicateKey),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, errs.ErrTransactionAborted):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
