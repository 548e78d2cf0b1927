package memory

import (
	"context"
	"sort"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"
)

type OrderTableRepository struct {
	uow *UnitOfWork
}

func (r *OrderTableRepository) Add(_ context.Context, aggregate *table.OrderTable) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.run(func(d *dataset) error {
		if _, ok := d.orderTables[aggregate.ID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause("order table", errDuplicateKey)
		}
		if err := checkGroupReference(d, aggregate.TableGroupID()); err != nil {
			return err
		}
		d.orderTables[aggregate.ID()] = tableToRecord(aggregate)
		return nil
	})
}

// Update rejects a group id that is not stored, like the table_group_id foreign key.
func (r *OrderTableRepository) Update(_ context.Context, aggregate *table.OrderTable) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.run(func(d *dataset) error {
		if _, ok := d.orderTables[aggregate.ID()]; !ok {
			return errs.NewObjectNotFoundError("order table", aggregate.ID().String())
		}
		if err := checkGroupReference(d, aggregate.TableGroupID()); err != nil {
			return err
		}
		d.orderTables[aggregate.ID()] = tableToRecord(aggregate)
		return nil
	})
}

func (r *OrderTableRepository) Get(_ context.Context, id kernel.UUID) (*table.OrderTable, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var found *table.OrderTable
	err := r.uow.run(func(d *dataset) error {
		rec, ok := d.orderTables[id]
		if !ok {
			return errs.NewObjectNotFoundError("order table", id.String())
		}

		var err error
		found, err = rec.toDomain()
		return err
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

func (r *OrderTableRepository) GetAllByIDs(_ context.Context, ids []kernel.UUID) ([]*table.OrderTable, error) {
	tables := make([]*table.OrderTable, 0, len(ids))
	err := r.uow.run(func(d *dataset) error {
		for _, id := range kernel.DistinctUUIDs(ids) {
			rec, ok := d.orderTables[id]
			if !ok {
				continue
			}
			t, err := rec.toDomain()
			if err != nil {
				return err
			}
			tables = append(tables, t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return tables, nil
}

func (r *OrderTableRepository) GetAllByTableGroup(
	_ context.Context,
	groupID kernel.UUID,
) ([]*table.OrderTable, error) {
	if err := groupID.Validate(); err != nil {
		return nil, err
	}

	var tables []*table.OrderTable
	err := r.uow.run(func(d *dataset) error {
		var err error
		tables, err = membersOf(d, groupID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return tables, nil
}

// GetAll returns the tables sorted by name.
func (r *OrderTableRepository) GetAll(_ context.Context) ([]*table.OrderTable, error) {
	var tables []*table.OrderTable
	err := r.uow.run(func(d *dataset) error {
		tables = make([]*table.OrderTable, 0, len(d.orderTables))
		for _, rec := range d.orderTables {
			t, err := rec.toDomain()
			if err != nil {
				return err
			}
			tables = append(tables, t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(tables, func(i, j int) bool { return tables[i].Name() < tables[j].Name() })
	return tables, nil
}

func checkGroupReference(d *dataset, groupID *kernel.UUID) error {
	if groupID == nil {
		return nil
	}
	if _, ok := d.tableGroups[*groupID]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("table group", errMissingReference)
	}
	return nil
}

func membersOf(d *dataset, groupID kernel.UUID) ([]*table.OrderTable, error) {
	members := make([]*table.OrderTable, 0)
	for _, rec := range d.orderTables {
		if rec.tableGroupID == nil || !rec.tableGroupID.IsEqual(groupID) {
			continue
		}
		t, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		members = append(members, t)
	}

	sort.Slice(members, func(i, j int) bool { return members[i].Name() < members[j].Name() })
	return members, nil
}

type TableGroupRepository struct {
	uow *UnitOfWork
}

// Add stores the group itself. Members join it through OrderTableRepository.Update.
func (r *TableGroupRepository) Add(_ context.Context, aggregate *table.TableGroup) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.run(func(d *dataset) error {
		if _, ok := d.tableGroups[aggregate.ID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause("table group", errDuplicateKey)
		}
		d.tableGroups[aggregate.ID()] = tableGroupRecord{id: aggregate.ID(), createdAt: aggregate.CreatedAt()}
		return nil
	})
}

func (r *TableGroupRepository) Get(_ context.Context, id kernel.UUID) (*table.TableGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var found *table.TableGroup
	err := r.uow.run(func(d *dataset) error {
		rec, ok := d.tableGroups[id]
		if !ok {
			return errs.NewObjectNotFoundError("table group", id.String())
		}

		members, err := membersOf(d, id)
		if err != nil {
			return err
		}
		tableIDs := make([]kernel.UUID, 0, len(members))
		for _, t := range members {
			tableIDs = append(tableIDs, t.ID())
		}

		found, err = table.RestoreTableGroup(rec.id, tableIDs, rec.createdAt)
		return err
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// Delete removes the group and detaches any table still pointing at it.
func (r *TableGroupRepository) Delete(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.uow.run(func(d *dataset) error {
		if _, ok := d.tableGroups[id]; !ok {
			return errs.NewObjectNotFoundError("table group", id.String())
		}
		delete(d.tableGroups, id)

		for key, rec := range d.orderTables {
			if rec.tableGroupID != nil && rec.tableGroupID.IsEqual(id) {
				rec.tableGroupID = nil
				d.orderTables[key] = rec
			}
		}
		return nil
	})
}
