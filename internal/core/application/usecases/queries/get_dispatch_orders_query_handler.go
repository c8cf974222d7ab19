package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/dispatch"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDispatchOrdersQueryHandler retrieves dispatch order pages from the database.
type GetDispatchOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDispatchOrdersQueryHandler creates a handler for dispatch order queries.
// Requires a GORM database connection for query execution.
func NewGetDispatchOrdersQueryHandler(db *gorm.DB) GetDispatchOrdersQueryHandler {
	return GetDispatchOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve a page of dispatch orders.
// Results are sorted by dispatch number for stable pagination.
func (h GetDispatchOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDispatchOrdersQuery,
) ([]GetDispatchOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dispatches := make([]GetDispatchOrdersQueryResponse, 0)

	sql := `
		SELECT
			id,
			dispatch_number,
			order_id,
			vehicle,
			estimated_delivery_date,
			tracking_current_location,
			tracking_last_updated,
			status
		FROM dispatch_orders
	`
	args := make([]any, 0, 3)
	if query.status != dispatch.Unknown {
		sql += ` WHERE status = ?`
		args = append(args, int(query.status))
	}
	sql += `
		ORDER BY dispatch_number, id
		LIMIT ? OFFSET ?
	`
	args = append(args, query.limit, (query.page-1)*query.limit)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDispatchOrdersQueryResponse
		var id, orderID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&resp.DispatchNumber,
			&orderID,
			&resp.Vehicle,
			&resp.EstimatedDeliveryDate,
			&resp.TrackingLocation,
			&resp.TrackingLastUpdated,
			&status,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.OrderID, err = kernel.UUIDFromBytes(orderID[:])
		if err != nil {
			return nil, err
		}
		resp.Status = dispatch.Status(status).String()
		dispatches = append(dispatches, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return dispatches, nil
}
