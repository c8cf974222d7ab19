package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/dispatch"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetDispatchOrdersQueryIsNotConstructed = errors.New(
		"GetDispatchOrdersQuery must be created via NewGetDispatchOrdersQuery constructor",
	)
)

// GetDispatchOrdersQuery retrieves a page of dispatch orders, optionally
// narrowed to a single status.
type GetDispatchOrdersQuery struct {
	guard  guard.ConstructorGuard
	status dispatch.Status
	page   int
	limit  int
}

// NewGetDispatchOrdersQuery creates a query for a page of dispatch orders.
// An empty status matches every dispatch order.
func NewGetDispatchOrdersQuery(status string, page, limit int) (GetDispatchOrdersQuery, error) {
	parsedStatus := dispatch.Unknown
	if status != "" {
		var err error
		parsedStatus, err = dispatch.StatusFromString(status)
		if err != nil {
			return GetDispatchOrdersQuery{}, err
		}
	}

	if page < minPage {
		return GetDispatchOrdersQuery{}, errs.NewValueIsOutOfRangeError("page", page, minPage, nil)
	}
	if limit < minLimit || limit > maxLimit {
		return GetDispatchOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, minLimit, maxLimit)
	}

	return GetDispatchOrdersQuery{
		guard:  guard.NewConstructorGuard(),
		status: parsedStatus,
		page:   page,
		limit:  limit,
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDispatchOrdersQueryIsNotConstructed if validation fails.
func (q GetDispatchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDispatchOrdersQueryIsNotConstructed)
}

// GetDispatchOrdersQueryResponse represents one dispatch order in the read model.
type GetDispatchOrdersQueryResponse struct {
	ID                    kernel.UUID
	DispatchNumber        string
	OrderID               kernel.UUID
	Vehicle               string
	EstimatedDeliveryDate time.Time
	TrackingLocation      string
	TrackingLastUpdated   time.Time
	Status                string
}
