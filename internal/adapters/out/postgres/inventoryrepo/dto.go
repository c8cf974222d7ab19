// Package inventoryrepo provides data transfer objects and mapping functions
// for inventory item persistence, plus the stock ledger operations that are
// the only way stored quantities change after an item is created.
package inventoryrepo

import (
	"fulfillment/internal/adapters/out/postgres/auditrepo"
	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemDTO represents the database structure for persisting inventory items.
// The product code carries a unique index; quantity is guarded against
// negative values by the conditional decrement in Reserve, never by a check
// constraint alone.
type ItemDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductName     string
	ProductCode     string `gorm:"uniqueIndex"`
	Quantity        int
	UnitPrice       decimal.Decimal `gorm:"type:numeric"`
	Category        string
	StorageLocation string
}

// TableName specifies the database table name for inventory items.
func (ItemDTO) TableName() string {
	return "inventory_items"
}

// fromDomain converts an inventory item aggregate to its database representation.
func fromDomain(item *inventory.Item) ItemDTO {
	return ItemDTO{
		ID:              item.ID().Bytes(),
		ProductName:     item.ProductName(),
		ProductCode:     item.ProductCode(),
		Quantity:        item.Quantity(),
		UnitPrice:       item.UnitPrice(),
		Category:        item.Category(),
		StorageLocation: item.StorageLocation(),
	}
}

// toDomain converts a database DTO and its audit trail to an inventory item aggregate.
func toDomain(dto ItemDTO, history []audit.Entry) (*inventory.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return inventory.RestoreItem(
		id,
		dto.ProductName,
		dto.ProductCode,
		dto.Quantity,
		dto.UnitPrice,
		dto.Category,
		dto.StorageLocation,
		history,
	)
}

// ownerType is this aggregate's discriminator in the shared audit table.
const ownerType = auditrepo.OwnerTypeInventoryItem
