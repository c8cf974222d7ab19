package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetLowStockItemsQueryIsNotConstructed = errors.New(
		"GetLowStockItemsQuery must be created via NewGetLowStockItemsQuery constructor",
	)
)

// GetLowStockItemsQuery retrieves every inventory item whose quantity is at or
// below the given threshold. Feeds the periodic replenishment alert.
type GetLowStockItemsQuery struct {
	guard     guard.ConstructorGuard
	threshold int
}

// NewGetLowStockItemsQuery creates a query for items at or below threshold.
func NewGetLowStockItemsQuery(threshold int) (GetLowStockItemsQuery, error) {
	if threshold < 0 {
		return GetLowStockItemsQuery{}, errs.NewValueIsOutOfRangeError("threshold", threshold, 0, nil)
	}

	return GetLowStockItemsQuery{
		guard:     guard.NewConstructorGuard(),
		threshold: threshold,
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLowStockItemsQueryIsNotConstructed if validation fails.
func (q GetLowStockItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockItemsQueryIsNotConstructed)
}

// GetLowStockItemsQueryResponse represents one item needing replenishment.
type GetLowStockItemsQueryResponse struct {
	ID              kernel.UUID
	ProductName     string
	ProductCode     string
	Quantity        int
	StorageLocation string
}
