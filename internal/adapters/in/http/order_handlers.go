package http

import (
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the JSON body for POST /api/v1/orders.
// Lines carry no price; the stock ledger snapshots the unit price at
// reservation time.
type CreateOrderRequest struct {
	Customer CustomerRequest    `json:"customer"`
	Items    []OrderLineRequest `json:"items"`
}

// CustomerRequest carries the ordering customer's contact details.
type CustomerRequest struct {
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Phone   string         `json:"phone"`
	Address AddressRequest `json:"address"`
}

// AddressRequest carries the optional delivery address.
type AddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// OrderLineRequest carries one requested product line.
type OrderLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// UpdateOrderStatusRequest is the JSON body for PATCH /api/v1/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderSummaryResponse is one order row in list responses.
type OrderSummaryResponse struct {
	ID           string          `json:"id"`
	OrderNumber  string          `json:"orderNumber"`
	CustomerName string          `json:"customerName"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Status       string          `json:"status"`
}

// OrderResponse is the full order returned by GET /api/v1/orders/:id.
type OrderResponse struct {
	ID          string               `json:"id"`
	OrderNumber string               `json:"orderNumber"`
	Customer    CustomerResponse     `json:"customer"`
	Items       []OrderLineResponse  `json:"items"`
	TotalAmount decimal.Decimal      `json:"totalAmount"`
	Status      string               `json:"status"`
	History     []AuditEntryResponse `json:"history"`
}

// CustomerResponse mirrors CustomerRequest in responses.
type CustomerResponse struct {
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Address AddressResponse `json:"address"`
}

// AddressResponse mirrors AddressRequest in responses.
type AddressResponse struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// OrderLineResponse is one reserved product line with its price snapshot.
type OrderLineResponse struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// AuditEntryResponse is one audit trail entry.
type AuditEntryResponse struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	Actor     string         `json:"actor"`
	Timestamp time.Time      `json:"timestamp"`
	Details   map[string]any `json:"details"`
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	page, limit, err := paginationFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrdersQuery(
		ctx.QueryParam("status"), page, limit, ctx.QueryParam("sortBy"))
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(orders))
	for i, row := range orders {
		response[i] = OrderSummaryResponse{
			ID:           row.ID.String(),
			OrderNumber:  row.OrderNumber,
			CustomerName: row.CustomerName,
			TotalAmount:  row.TotalAmount,
			Status:       row.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByID handles GET /api/v1/orders/:id.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	orderID, err := idFromPath(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]OrderLineResponse, len(result.Items))
	for i, line := range result.Items {
		items[i] = OrderLineResponse{
			ProductID: line.ProductID.String(),
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		}
	}

	history := make([]AuditEntryResponse, len(result.History))
	for i, entry := range result.History {
		history[i] = AuditEntryResponse{
			ID:        entry.ID.String(),
			Action:    entry.Action,
			Actor:     entry.Actor.String(),
			Timestamp: entry.Timestamp,
			Details:   entry.Details,
		}
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		ID:          result.ID.String(),
		OrderNumber: result.OrderNumber,
		Customer: CustomerResponse{
			Name:  result.Customer.Name,
			Email: result.Customer.Email,
			Phone: result.Customer.Phone,
			Address: AddressResponse{
				Street:  result.Customer.AddressStreet,
				City:    result.Customer.AddressCity,
				State:   result.Customer.AddressState,
				ZipCode: result.Customer.AddressZipCode,
			},
		},
		Items:       items,
		TotalAmount: result.TotalAmount,
		Status:      result.Status,
		History:     history,
	})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request CreateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	lines := make([]commands.OrderLine, 0, len(request.Items))
	for _, item := range request.Items {
		productID, lineErr := kernel.UUIDFromString(item.ProductID)
		if lineErr != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid product ID: " + item.ProductID,
			})
		}
		lines = append(lines, commands.OrderLine{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		request.Customer.Name,
		request.Customer.Email,
		request.Customer.Phone,
		order.Address{
			Street:  request.Customer.Address.Street,
			City:    request.Customer.Address.City,
			State:   request.Customer.Address.State,
			ZipCode: request.Customer.Address.ZipCode,
		},
		lines,
		actor,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: orderID.String()})
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := idFromPath(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdateOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	newStatus, err := order.StatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, newStatus, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
