// Package auditrepo persists audit trail entries for every aggregate type in
// a single append-only table. Rows are insert-only: aggregate repositories
// re-save whole histories and rely on conflict-do-nothing so already
// persisted entries are never rewritten.
package auditrepo

import (
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// Owner type discriminators for the shared audit_entries table.
const (
	OwnerTypeInventoryItem = "inventory_item"
	OwnerTypeOrder         = "order"
	OwnerTypeDispatchOrder = "dispatch_order"
)

// EntryDTO represents the database structure for persisting audit entries.
// The owning aggregate is identified by (owner_type, owner_id); details are
// stored as JSONB to keep the per-action payload shape flexible. Seq is a
// database-assigned monotonic counter: histories load ordered by seq, which
// preserves insertion order even when two entries share a timestamp.
type EntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq       int64     `gorm:"autoIncrement"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index:idx_audit_entries_owner"`
	OwnerType string    `gorm:"index:idx_audit_entries_owner"`
	Action    int
	Actor     uuid.UUID `gorm:"type:uuid"`
	Timestamp time.Time
	Details   []byte `gorm:"type:jsonb"`
}

// TableName specifies the database table name for audit entries.
func (EntryDTO) TableName() string {
	return "audit_entries"
}

// FromDomain converts an audit entry to its database representation,
// attached to the given owner.
func FromDomain(ownerID kernel.UUID, ownerType string, entry audit.Entry) (EntryDTO, error) {
	details, err := json.Marshal(entry.Details())
	if err != nil {
		return EntryDTO{}, err
	}

	return EntryDTO{
		ID:        entry.ID().Bytes(),
		OwnerID:   ownerID.Bytes(),
		OwnerType: ownerType,
		Action:    int(entry.Action()),
		Actor:     entry.Actor().Bytes(),
		Timestamp: entry.Timestamp(),
		Details:   details,
	}, nil
}

// ToDomain converts a database DTO back to an audit entry.
// JSON numbers in details come back as float64; consumers that need the
// original integer values must convert.
func ToDomain(dto EntryDTO) (audit.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return audit.Entry{}, err
	}

	actor, err := kernel.UUIDFromBytes(dto.Actor[:])
	if err != nil {
		return audit.Entry{}, err
	}

	var details audit.Details
	if len(dto.Details) > 0 {
		if err = json.Unmarshal(dto.Details, &details); err != nil {
			return audit.Entry{}, err
		}
	}

	return audit.RestoreEntry(id, audit.Action(dto.Action), actor, dto.Timestamp, details)
}
