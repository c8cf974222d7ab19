package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLowStockItemsQueryHandler retrieves items needing replenishment.
type GetLowStockItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockItemsQueryHandler creates a handler for low stock queries.
// Requires a GORM database connection for query execution.
func NewGetLowStockItemsQueryHandler(db *gorm.DB) GetLowStockItemsQueryHandler {
	return GetLowStockItemsQueryHandler{db: db}
}

// Handle executes the query to retrieve items at or below the threshold.
// Results are sorted by quantity, the emptiest shelf first.
func (h GetLowStockItemsQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockItemsQuery,
) ([]GetLowStockItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetLowStockItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_name,
			product_code,
			quantity,
			storage_location
		FROM inventory_items
		WHERE quantity <= ?
		ORDER BY quantity, product_code
	`, query.threshold).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetLowStockItemsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&item.ProductName,
			&item.ProductCode,
			&item.Quantity,
			&item.StorageLocation,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = itemID
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
