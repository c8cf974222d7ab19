package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest is the JSON body for POST /api/v1/inventory.
type CreateInventoryItemRequest struct {
	ProductName     string          `json:"productName"`
	ProductCode     string          `json:"productCode"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Category        string          `json:"category"`
	StorageLocation string          `json:"storageLocation"`
}

// UpdateInventoryItemRequest is the JSON body for PUT /api/v1/inventory/:id.
// Absent fields are left unchanged; quantity is not patchable at all, only
// the stock ledger moves it.
type UpdateInventoryItemRequest struct {
	ProductName     *string          `json:"productName"`
	Category        *string          `json:"category"`
	StorageLocation *string          `json:"storageLocation"`
	UnitPrice       *decimal.Decimal `json:"unitPrice"`
}

// InventoryItemResponse is one inventory item in list responses.
type InventoryItemResponse struct {
	ID              string          `json:"id"`
	ProductName     string          `json:"productName"`
	ProductCode     string          `json:"productCode"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Category        string          `json:"category"`
	StorageLocation string          `json:"storageLocation"`
}

// GetInventoryItems handles GET /api/v1/inventory.
func (s *Server) GetInventoryItems(ctx echo.Context) error {
	page, limit, err := paginationFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetInventoryItemsQuery(ctx.QueryParam("category"), page, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	items, err := s.getInventoryItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]InventoryItemResponse, len(items))
	for i, item := range items {
		response[i] = InventoryItemResponse{
			ID:              item.ID.String(),
			ProductName:     item.ProductName,
			ProductCode:     item.ProductCode,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			Category:        item.Category,
			StorageLocation: item.StorageLocation,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateInventoryItem handles POST /api/v1/inventory.
func (s *Server) CreateInventoryItem(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request CreateInventoryItemRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateInventoryItemCommand(
		itemID,
		request.ProductName,
		request.ProductCode,
		request.Quantity,
		request.UnitPrice,
		request.Category,
		request.StorageLocation,
		actor,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createInventoryItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: itemID.String()})
}

// UpdateInventoryItem handles PUT /api/v1/inventory/:id.
func (s *Server) UpdateInventoryItem(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	itemID, err := idFromPath(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdateInventoryItemRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateInventoryItemCommand(itemID, inventory.Patch{
		ProductName:     request.ProductName,
		Category:        request.Category,
		StorageLocation: request.StorageLocation,
		UnitPrice:       request.UnitPrice,
	}, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateInventoryItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteInventoryItem handles DELETE /api/v1/inventory/:id.
func (s *Server) DeleteInventoryItem(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	itemID, err := idFromPath(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteInventoryItemCommand(itemID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteInventoryItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
