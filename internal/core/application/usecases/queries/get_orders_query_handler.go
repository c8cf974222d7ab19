package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order pages from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve a page of orders.
// The sort column comes from the constructor's allow-list, with the order
// number as a tiebreaker for stable pagination.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersQueryResponse, 0)

	sql := `
		SELECT
			id,
			order_number,
			customer_name,
			total_amount,
			status
		FROM orders
	`
	args := make([]any, 0, 3)
	if query.status != order.Unknown {
		sql += ` WHERE status = ?`
		args = append(args, int(query.status))
	}
	sql += ` ORDER BY ` + query.sortColumn + `, order_number LIMIT ? OFFSET ?`
	args = append(args, query.limit, (query.page-1)*query.limit)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrdersQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&resp.OrderNumber,
			&resp.CustomerName,
			&resp.TotalAmount,
			&status,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status).String()
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
