// Package tablerepo persists order tables and table groups with GORM.
// Group membership is the table_group_id column of order_tables; a group row
// only records identity and creation time.
package tablerepo

import (
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"

	"github.com/google/uuid"
)

type OrderTableDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name           string     `gorm:"type:varchar(255);not null"`
	NumberOfGuests int        `gorm:"not null"`
	Empty          bool       `gorm:"not null"`
	TableGroupID   *uuid.UUID `gorm:"type:uuid;index"`
}

func (OrderTableDTO) TableName() string {
	return "order_tables"
}

type TableGroupDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time       `gorm:"not null"`
	Tables    []OrderTableDTO `gorm:"foreignKey:TableGroupID;constraint:OnDelete:SET NULL"`
}

func (TableGroupDTO) TableName() string {
	return "table_groups"
}

func tableFromDomain(t *table.OrderTable) OrderTableDTO {
	var groupID *uuid.UUID
	if id := t.TableGroupID(); id != nil {
		raw := id.Bytes()
		groupID = &raw
	}

	return OrderTableDTO{
		ID:             t.ID().Bytes(),
		Name:           t.Name(),
		NumberOfGuests: t.NumberOfGuests(),
		Empty:          t.IsEmpty(),
		TableGroupID:   groupID,
	}
}

func tableToDomain(dto OrderTableDTO) (*table.OrderTable, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var groupID *kernel.UUID
	if dto.TableGroupID != nil {
		gID, groupErr := kernel.UUIDFromBytes((*dto.TableGroupID)[:])
		if groupErr != nil {
			return nil, groupErr
		}
		groupID = &gID
	}

	return table.RestoreOrderTable(id, dto.Name, dto.NumberOfGuests, dto.Empty, groupID)
}

func groupToDomain(dto TableGroupDTO) (*table.TableGroup, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tableIDs := make([]kernel.UUID, 0, len(dto.Tables))
	for _, t := range dto.Tables {
		tableID, idErr := kernel.UUIDFromBytes(t.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		tableIDs = append(tableIDs, tableID)
	}

	return table.RestoreTableGroup(id, tableIDs, dto.CreatedAt)
}
