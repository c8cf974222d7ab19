package dispatchrepo

import (
	"context"
	"errors"

	"fulfillment/internal/adapters/out/postgres/auditrepo"
	"fulfillment/internal/core/domain/model/dispatch"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDispatchRepository implements DispatchRepository using GORM.
type GormDispatchRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDispatchRepository creates a new GORM dispatch repository.
func NewGormDispatchRepository(db *gorm.DB, tracker aggregateTracker) *GormDispatchRepository {
	return &GormDispatchRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new dispatch order and its history to the database.
// A second dispatch for the same order violates the unique index on
// order_id and surfaces as a DuplicateKey error.
func (r *GormDispatchRepository) Add(ctx context.Context, aggregate *dispatch.DispatchOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateKeyErrorWithCause("orderId", aggregate.OrderID().String(), err)
		}
		return err
	}

	if err := auditrepo.SaveHistory(ctx, r.db, aggregate.ID(), ownerType, aggregate.History()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing dispatch order and any new history entries.
func (r *GormDispatchRepository) Update(ctx context.Context, aggregate *dispatch.DispatchOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DispatchOrderDTO{}).Where("id = ?", dto.ID).
		Select("vehicle", "estimated_delivery_date", "tracking_current_location", "tracking_last_updated", "status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dispatchId", aggregate.ID().String())
	}

	if err := auditrepo.SaveHistory(ctx, r.db, aggregate.ID(), ownerType, aggregate.History()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a dispatch order by ID, including its audit history.
func (r *GormDispatchRepository) Get(ctx context.Context, id kernel.UUID) (*dispatch.DispatchOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DispatchOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dispatchId", id.String())
		}
		return nil, err
	}

	return r.restore(ctx, dto)
}

// GetByOrderID retrieves the dispatch order shipping the given customer order.
func (r *GormDispatchRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*dispatch.DispatchOrder, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto DispatchOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", orderID.String())
		}
		return nil, err
	}

	return r.restore(ctx, dto)
}

func (r *GormDispatchRepository) restore(ctx context.Context, dto DispatchOrderDTO) (*dispatch.DispatchOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	history, err := auditrepo.LoadHistory(ctx, r.db, id, ownerType)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, history)
}
