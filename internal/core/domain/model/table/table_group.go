package table

import (
	"errors"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

// MinGroupSize is the smallest number of tables a group can hold.
const MinGroupSize = 2

var ErrTableGroupIsNotConstructed = errors.New("TableGroup must be created via NewTableGroup constructor")

// TableGroup merges tables for shared occupancy and billing. It only references its
// tables; the tables point back at the group through their TableGroupID.
type TableGroup struct {
	id        kernel.UUID
	createdAt time.Time
	tableIDs  []kernel.UUID

	guard guard.ConstructorGuard
}

func NewTableGroup(id kernel.UUID, tableIDs []kernel.UUID, createdAt time.Time) (*TableGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	distinct := kernel.DistinctUUIDs(tableIDs)
	if len(distinct) < MinGroupSize {
		return nil, errs.NewValueIsOutOfRangeError("table group size", len(distinct), MinGroupSize, "unbounded")
	}
	for _, tableID := range distinct {
		if err := tableID.Validate(); err != nil {
			return nil, err
		}
	}

	return &TableGroup{
		id:        id,
		createdAt: createdAt,
		tableIDs:  distinct,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreTableGroup rebuilds a persisted group.
func RestoreTableGroup(id kernel.UUID, tableIDs []kernel.UUID, createdAt time.Time) (*TableGroup, error) {
	return NewTableGroup(id, tableIDs, createdAt)
}

func (g *TableGroup) Validate() error {
	if g == nil {
		return ErrTableGroupIsNotConstructed
	}
	return g.guard.Validate(ErrTableGroupIsNotConstructed)
}

func (g *TableGroup) ID() kernel.UUID {
	return g.id
}

func (g *TableGroup) CreatedAt() time.Time {
	return g.createdAt
}

// TableIDs returns a copy of the member ids.
func (g *TableGroup) TableIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(g.tableIDs))
	copy(ids, g.tableIDs)
	return ids
}
