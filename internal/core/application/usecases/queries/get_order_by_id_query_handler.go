package queries

import (
	"context"
	"encoding/json"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler retrieves one order with lines and history.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the query to retrieve one order by ID.
// Returns an ObjectNotFound error when no order carries the ID.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (GetOrderByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	resp, err := h.loadOrder(ctx, query.orderID)
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	resp.Items, err = h.loadLines(ctx, query.orderID)
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	resp.History, err = h.loadHistory(ctx, query.orderID)
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderByIDQueryHandler) loadOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (GetOrderByIDQueryResponse, error) {
	var resp GetOrderByIDQueryResponse
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			order_number,
			customer_name,
			customer_email,
			customer_phone,
			customer_address_street,
			customer_address_city,
			customer_address_state,
			customer_address_zip_code,
			total_amount,
			status
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	err := row.Scan(
		&resp.OrderNumber,
		&resp.Customer.Name,
		&resp.Customer.Email,
		&resp.Customer.Phone,
		&resp.Customer.AddressStreet,
		&resp.Customer.AddressCity,
		&resp.Customer.AddressState,
		&resp.Customer.AddressZipCode,
		&resp.TotalAmount,
		&status,
	)
	if err != nil {
		return GetOrderByIDQueryResponse{}, errs.NewObjectNotFoundErrorWithCause("orderId", orderID.String(), err)
	}

	resp.ID = orderID
	resp.Status = order.Status(status).String()
	return resp, nil
}

func (h GetOrderByIDQueryHandler) loadLines(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderLineResponse, error) {
	lines := make([]OrderLineResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_price
		FROM order_line_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderLineResponse
		var productID uuid.UUID

		if err = rows.Scan(&productID, &line.Quantity, &line.UnitPrice); err != nil {
			return nil, err
		}

		line.ProductID, err = kernel.UUIDFromBytes(productID[:])
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

func (h GetOrderByIDQueryHandler) loadHistory(
	ctx context.Context,
	orderID kernel.UUID,
) ([]AuditEntryResponse, error) {
	entries := make([]AuditEntryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			action,
			actor,
			timestamp,
			details
		FROM audit_entries
		WHERE owner_id = ? AND owner_type = ?
		ORDER BY seq
	`, orderID.Bytes(), "order").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry AuditEntryResponse
		var id, actor uuid.UUID
		var action int
		var details []byte

		if err = rows.Scan(&id, &action, &actor, &entry.Timestamp, &details); err != nil {
			return nil, err
		}

		entry.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		entry.Actor, err = kernel.UUIDFromBytes(actor[:])
		if err != nil {
			return nil, err
		}
		entry.Action = audit.Action(action).String()

		if len(details) > 0 {
			if err = json.Unmarshal(details, &entry.Details); err != nil {
				return nil, err
			}
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
