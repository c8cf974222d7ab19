// Package dispatchrepo provides data transfer objects and mapping functions
// for dispatch order persistence. The unique index on order_id is what
// ultimately enforces the one-dispatch-per-order rule under concurrency.
package dispatchrepo

import (
	"time"

	"fulfillment/internal/adapters/out/postgres/auditrepo"
	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/dispatch"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DispatchOrderDTO represents the database structure for persisting dispatch
// orders. Tracking is embedded; its two columns always change together.
type DispatchOrderDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	DispatchNumber        string
	OrderID               uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Vehicle               string
	EstimatedDeliveryDate time.Time
	Tracking              TrackingDTO `gorm:"embedded;embeddedPrefix:tracking_"`
	Status                int
}

// TableName specifies the database table name for dispatch orders.
func (DispatchOrderDTO) TableName() string {
	return "dispatch_orders"
}

// TrackingDTO represents the embedded tracking state within the dispatch
// order table.
type TrackingDTO struct {
	CurrentLocation string
	LastUpdated     time.Time
}

// fromDomain converts a dispatch order aggregate to its database representation.
func fromDomain(aggregate *dispatch.DispatchOrder) DispatchOrderDTO {
	return DispatchOrderDTO{
		ID:                    aggregate.ID().Bytes(),
		DispatchNumber:        aggregate.DispatchNumber(),
		OrderID:               aggregate.OrderID().Bytes(),
		Vehicle:               aggregate.Vehicle(),
		EstimatedDeliveryDate: aggregate.EstimatedDeliveryDate(),
		Tracking: TrackingDTO{
			CurrentLocation: aggregate.Tracking().CurrentLocation(),
			LastUpdated:     aggregate.Tracking().LastUpdated(),
		},
		Status: int(aggregate.Status()),
	}
}

// toDomain converts a database DTO and an audit trail to a dispatch order aggregate.
func toDomain(dto DispatchOrderDTO, history []audit.Entry) (*dispatch.DispatchOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	tracking, err := dispatch.RestoreTracking(dto.Tracking.CurrentLocation, dto.Tracking.LastUpdated)
	if err != nil {
		return nil, err
	}

	return dispatch.RestoreDispatchOrder(
		id,
		dto.DispatchNumber,
		orderID,
		dto.Vehicle,
		dto.EstimatedDeliveryDate,
		tracking,
		dispatch.Status(dto.Status),
		history,
	)
}

// ownerType is this aggregate's discriminator in the shared audit table.
const ownerType = auditrepo.OwnerTypeDispatchOrder
