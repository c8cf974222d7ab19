package inventoryrepo

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/adapters/out/postgres/auditrepo"
	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new inventory item and its history to the database.
// A product code collision surfaces as a DuplicateKey error.
func (r *GormInventoryRepository) Add(ctx context.Context, aggregate *inventory.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateKeyErrorWithCause("productCode", aggregate.ProductCode(), err)
		}
		return err
	}

	if err := auditrepo.SaveHistory(ctx, r.db, aggregate.ID(), ownerType, aggregate.History()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing inventory item and any new history entries.
func (r *GormInventoryRepository) Update(ctx context.Context, aggregate *inventory.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ItemDTO{}).Where("id = ?", dto.ID).
		Select("product_name", "unit_price", "category", "storage_location").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("itemId", aggregate.ID().String())
	}

	if err := auditrepo.SaveHistory(ctx, r.db, aggregate.ID(), ownerType, aggregate.History()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an inventory item by ID, including its audit history.
func (r *GormInventoryRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("itemId", id.String())
		}
		return nil, err
	}

	history, err := auditrepo.LoadHistory(ctx, r.db, id, ownerType)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, history)
}

// Delete removes an inventory item and its audit trail permanently.
func (r *GormInventoryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("itemId", id.String())
	}

	return auditrepo.DeleteHistory(ctx, r.db, id, ownerType)
}

// Reserve atomically decrements the item's quantity and returns the stored
// unit price as the authoritative snapshot for the reserving order.
//
// The decrement is a single conditional UPDATE; the quantity check and the
// write cannot interleave with a concurrent reservation, so the stored
// quantity can never go negative regardless of contention.
func (r *GormInventoryRepository) Reserve(
	ctx context.Context,
	productID kernel.UUID,
	qty int,
	actor, orderID kernel.UUID,
) (decimal.Decimal, error) {
	if qty < 1 {
		return decimal.Zero, errs.NewValueIsOutOfRangeError("quantity", qty, 1, nil)
	}

	var unitPrice decimal.Decimal
	row := r.db.WithContext(ctx).Raw(`
		UPDATE inventory_items
		SET quantity = quantity - ?
		WHERE id = ? AND quantity >= ?
		RETURNING unit_price
	`, qty, productID.Bytes(), qty).Row()

	if err := row.Scan(&unitPrice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, r.classifyReserveFailure(ctx, productID, qty)
		}
		return decimal.Zero, err
	}

	entry, err := audit.NewEntry(audit.StockAdjusted, actor, audit.ReservationDetails(orderID, qty))
	if err != nil {
		return decimal.Zero, err
	}

	if err = auditrepo.SaveHistory(ctx, r.db, productID, ownerType, []audit.Entry{entry}); err != nil {
		return decimal.Zero, err
	}

	return unitPrice, nil
}

// Release atomically increments the item's quantity, restoring a reservation.
func (r *GormInventoryRepository) Release(
	ctx context.Context,
	productID kernel.UUID,
	qty int,
	actor, orderID kernel.UUID,
) error {
	if qty < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", qty, 1, nil)
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE inventory_items
		SET quantity = quantity + ?
		WHERE id = ?
	`, qty, productID.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("productId", productID.String())
	}

	entry, err := audit.NewEntry(audit.StockAdjusted, actor, audit.RestorationDetails(orderID, qty))
	if err != nil {
		return err
	}

	return auditrepo.SaveHistory(ctx, r.db, productID, ownerType, []audit.Entry{entry})
}

// classifyReserveFailure distinguishes a missing item from insufficient stock
// after the conditional decrement matched no row.
func (r *GormInventoryRepository) classifyReserveFailure(ctx context.Context, productID kernel.UUID, qty int) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ItemDTO{}).
		Where("id = ?", productID.Bytes()).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("productId", productID.String())
	}
	return errs.NewInsufficientStockError(productID.String(), qty)
}
