package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
)

// OrderTableRepository defines the persistence contract for order tables.
type OrderTableRepository interface {
	Add(ctx context.Context, aggregate *table.OrderTable) error
	Update(ctx context.Context, aggregate *table.OrderTable) error
	Get(ctx context.Context, id kernel.UUID) (*table.OrderTable, error)

	// GetAllByIDs returns the tables found for ids; unknown ids are skipped.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*table.OrderTable, error)

	// GetAllByTableGroup returns the members of a table group.
	GetAllByTableGroup(ctx context.Context, groupID kernel.UUID) ([]*table.OrderTable, error)

	GetAll(ctx context.Context) ([]*table.OrderTable, error)
}

// TableGroupRepository defines the persistence contract for table groups.
// Membership is stored on the tables; Get derives TableIDs from them.
type TableGroupRepository interface {
	Add(ctx context.Context, aggregate *table.TableGroup) error
	Get(ctx context.Context, id kernel.UUID) (*table.TableGroup, error)
	Delete(ctx context.Context, id kernel.UUID) error
}
