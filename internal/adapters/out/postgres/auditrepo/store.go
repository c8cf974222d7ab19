package auditrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SaveHistory persists an aggregate's audit trail. Entries already stored
// are skipped via conflict-do-nothing, so re-saving a whole history after
// each aggregate mutation only inserts the new tail.
func SaveHistory(ctx context.Context, db *gorm.DB, ownerID kernel.UUID, ownerType string, history []audit.Entry) error {
	if len(history) == 0 {
		return nil
	}

	dtos := make([]EntryDTO, 0, len(history))
	for _, entry := range history {
		dto, err := FromDomain(ownerID, ownerType, entry)
		if err != nil {
			return err
		}
		dtos = append(dtos, dto)
	}

	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dtos).Error
}

// LoadHistory retrieves an aggregate's audit trail in insertion order.
// Ordering by seq rather than timestamp keeps entries written within the
// same timestamp tick in the order they were inserted.
func LoadHistory(ctx context.Context, db *gorm.DB, ownerID kernel.UUID, ownerType string) ([]audit.Entry, error) {
	var dtos []EntryDTO
	err := db.WithContext(ctx).
		Where("owner_id = ? AND owner_type = ?", ownerID.Bytes(), ownerType).
		Order("seq").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	history := make([]audit.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		history = append(history, entry)
	}

	return history, nil
}

// DeleteHistory removes an aggregate's audit trail. Used only when the
// owning aggregate itself is hard-deleted.
func DeleteHistory(ctx context.Context, db *gorm.DB, ownerID kernel.UUID, ownerType string) error {
	return db.WithContext(ctx).
		Where("owner_id = ? AND owner_type = ?", ownerID.Bytes(), ownerType).
		Delete(&EntryDTO{}).Error
}
