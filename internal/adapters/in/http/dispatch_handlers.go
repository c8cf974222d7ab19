package http

import (
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/dispatch"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateDispatchOrderRequest is the JSON body for POST /api/v1/dispatch.
type CreateDispatchOrderRequest struct {
	OrderID               string    `json:"orderId"`
	Vehicle               string    `json:"vehicle"`
	EstimatedDeliveryDate time.Time `json:"estimatedDeliveryDate"`
}

// UpdateDispatchOrderRequest is the JSON body for PUT /api/v1/dispatch/:id.
// Absent fields are left unchanged.
type UpdateDispatchOrderRequest struct {
	Vehicle               *string    `json:"vehicle"`
	EstimatedDeliveryDate *time.Time `json:"estimatedDeliveryDate"`
	TrackingLocation      *string    `json:"trackingLocation"`
	Status                *string    `json:"status"`
}

// DispatchOrderResponse is one dispatch order in list responses.
type DispatchOrderResponse struct {
	ID                    string    `json:"id"`
	DispatchNumber        string    `json:"dispatchNumber"`
	OrderID               string    `json:"orderId"`
	Vehicle               string    `json:"vehicle"`
	EstimatedDeliveryDate time.Time `json:"estimatedDeliveryDate"`
	TrackingLocation      string    `json:"trackingLocation"`
	TrackingLastUpdated   time.Time `json:"trackingLastUpdated"`
	Status                string    `json:"status"`
}

// GetDispatchOrders handles GET /api/v1/dispatch.
func (s *Server) GetDispatchOrders(ctx echo.Context) error {
	page, limit, err := paginationFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDispatchOrdersQuery(ctx.QueryParam("status"), page, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	dispatches, err := s.getDispatchOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]DispatchOrderResponse, len(dispatches))
	for i, row := range dispatches {
		response[i] = DispatchOrderResponse{
			ID:                    row.ID.String(),
			DispatchNumber:        row.DispatchNumber,
			OrderID:               row.OrderID.String(),
			Vehicle:               row.Vehicle,
			EstimatedDeliveryDate: row.EstimatedDeliveryDate,
			TrackingLocation:      row.TrackingLocation,
			TrackingLastUpdated:   row.TrackingLastUpdated,
			Status:                row.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDispatchOrder handles POST /api/v1/dispatch.
func (s *Server) CreateDispatchOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request CreateDispatchOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + request.OrderID,
		})
	}

	dispatchID := kernel.NewUUID()
	cmd, err := commands.NewCreateDispatchOrderCommand(
		dispatchID,
		orderID,
		request.Vehicle,
		request.EstimatedDeliveryDate,
		actor,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createDispatchOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: dispatchID.String()})
}

// UpdateDispatchOrder handles PUT /api/v1/dispatch/:id.
func (s *Server) UpdateDispatchOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	dispatchID, err := idFromPath(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdateDispatchOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	patch := dispatch.Patch{
		Vehicle:               request.Vehicle,
		EstimatedDeliveryDate: request.EstimatedDeliveryDate,
		TrackingLocation:      request.TrackingLocation,
	}
	if request.Status != nil {
		status, statusErr := dispatch.StatusFromString(*request.Status)
		if statusErr != nil {
			return respondError(ctx, statusErr)
		}
		patch.Status = &status
	}

	cmd, err := commands.NewUpdateDispatchOrderCommand(dispatchID, patch, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateDispatchOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
