// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Pagination bounds shared by the list queries.
const (
	minPage  = 1
	minLimit = 1
	maxLimit = 100
)

var (
	ErrGetInventoryItemsQueryIsNotConstructed = errors.New(
		"GetInventoryItemsQuery must be created via NewGetInventoryItemsQuery constructor",
	)
)

// GetInventoryItemsQuery retrieves a page of inventory items, optionally
// narrowed to a single category.
//
// Example:
//
//	query, err := NewGetInventoryItemsQuery("hardware", 1, 20)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetInventoryItemsQueryHandler(db)
//
//	items, err := handler.Handle(ctx, query)
type GetInventoryItemsQuery struct {
	guard    guard.ConstructorGuard
	category string
	page     int
	limit    int
}

// NewGetInventoryItemsQuery creates a query for a page of inventory items.
// An empty category matches every item.
func NewGetInventoryItemsQuery(category string, page, limit int) (GetInventoryItemsQuery, error) {
	if page < minPage {
		return GetInventoryItemsQuery{}, errs.NewValueIsOutOfRangeError("page", page, minPage, nil)
	}
	if limit < minLimit || limit > maxLimit {
		return GetInventoryItemsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, minLimit, maxLimit)
	}

	return GetInventoryItemsQuery{
		guard:    guard.NewConstructorGuard(),
		category: category,
		page:     page,
		limit:    limit,
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetInventoryItemsQueryIsNotConstructed if validation fails.
func (q GetInventoryItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryItemsQueryIsNotConstructed)
}

// GetInventoryItemsQueryResponse represents one inventory item in the read model.
type GetInventoryItemsQueryResponse struct {
	ID              kernel.UUID
	ProductName     string
	ProductCode     string
	Quantity        int
	UnitPrice       decimal.Decimal
	Category        string
	StorageLocation string
}
