package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// getOrderSortColumns maps the caller-facing sort keys to column names.
// Only columns in this allow-list ever reach the SQL text.
func getOrderSortColumns() map[string]string {
	return map[string]string{
		"orderNumber": "order_number",
		"totalAmount": "total_amount",
		"status":      "status",
	}
}

// GetOrdersQuery retrieves a page of orders, optionally narrowed to a single
// status and sorted by one of the allow-listed keys.
//
// Example:
//
//	query, err := NewGetOrdersQuery("pending", 1, 20, "orderNumber")
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	guard      guard.ConstructorGuard
	status     order.Status
	page       int
	limit      int
	sortColumn string
}

// NewGetOrdersQuery creates a query for a page of orders. An empty status
// matches every order; an empty sortBy sorts by order number.
func NewGetOrdersQuery(status string, page, limit int, sortBy string) (GetOrdersQuery, error) {
	parsedStatus := order.Unknown
	if status != "" {
		var err error
		parsedStatus, err = order.StatusFromString(status)
		if err != nil {
			return GetOrdersQuery{}, err
		}
	}

	if page < minPage {
		return GetOrdersQuery{}, errs.NewValueIsOutOfRangeError("page", page, minPage, nil)
	}
	if limit < minLimit || limit > maxLimit {
		return GetOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, minLimit, maxLimit)
	}

	if sortBy == "" {
		sortBy = "orderNumber"
	}
	sortColumn, ok := getOrderSortColumns()[sortBy]
	if !ok {
		return GetOrdersQuery{}, errs.NewValueIsInvalidError("sortBy")
	}

	return GetOrdersQuery{
		guard:      guard.NewConstructorGuard(),
		status:     parsedStatus,
		page:       page,
		limit:      limit,
		sortColumn: sortColumn,
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryResponse represents one order row in the read model.
// Line items and history are deliberately omitted; GetOrderByIDQuery
// returns the full picture for a single order.
type GetOrdersQueryResponse struct {
	ID           kernel.UUID
	OrderNumber  string
	CustomerName string
	TotalAmount  decimal.Decimal
	Status       string
}
