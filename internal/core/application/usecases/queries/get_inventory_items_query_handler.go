package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInventoryItemsQueryHandler retrieves inventory item pages from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetInventoryItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetInventoryItemsQueryHandler creates a handler for inventory item queries.
// Requires a GORM database connection for query execution.
func NewGetInventoryItemsQueryHandler(db *gorm.DB) GetInventoryItemsQueryHandler {
	return GetInventoryItemsQueryHandler{db: db}
}

// Handle executes the query to retrieve a page of inventory items.
// Results are sorted by product code for stable pagination.
func (h GetInventoryItemsQueryHandler) Handle(
	ctx context.Context,
	query GetInventoryItemsQuery,
) ([]GetInventoryItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetInventoryItemsQueryResponse, 0)

	sql := `
		SELECT
			id,
			product_name,
			product_code,
			quantity,
			unit_price,
			category,
			storage_location
		FROM inventory_items
	`
	args := make([]any, 0, 3)
	if query.category != "" {
		sql += ` WHERE category = ?`
		args = append(args, query.category)
	}
	sql += `
		ORDER BY product_code
		LIMIT ? OFFSET ?
	`
	args = append(args, query.limit, (query.page-1)*query.limit)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetInventoryItemsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&item.ProductName,
			&item.ProductCode,
			&item.Quantity,
			&item.UnitPrice,
			&item.Category,
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
