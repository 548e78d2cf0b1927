package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateTableGroupCommandIsNotConstructed = errors.New(
	"CreateTableGroupCommand must be created via NewCreateTableGroupCommand constructor",
)

// CreateTableGroupCommand merges at least two tables into a new group.
type CreateTableGroupCommand struct { //nolint:recvcheck //using for validation
	tableGroupID kernel.UUID
	tableIDs     []kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateTableGroupCommand(tableGroupID kernel.UUID, tableIDs []kernel.UUID) (CreateTableGroupCommand, error) {
	cmd := CreateTableGroupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableGroupID(tableGroupID),
		cmd.setTableIDs(tableIDs),
	); err != nil {
		return CreateTableGroupCommand{}, err
	}

	return cmd, nil
}

func (c CreateTableGroupCommand) Validate() error {
	return c.guard.Validate(ErrCreateTableGroupCommandIsNotConstructed)
}

func (c CreateTableGroupCommand) TableGroupID() kernel.UUID {
	return c.tableGroupID
}

// TableIDs returns the requested ids as given, duplicates included.
func (c CreateTableGroupCommand) TableIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.tableIDs))
	copy(ids, c.tableIDs)
	return ids
}

func (c *CreateTableGroupCommand) setTableGroupID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.tableGroupID = id
	return nil
}

func (c *CreateTableGroupCommand) setTableIDs(ids []kernel.UUID) error {
	if len(ids) < table.MinGroupSize {
		return errs.NewValueIsOutOfRangeError("table group size", len(ids), table.MinGroupSize, "unbounded")
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.tableIDs = make([]kernel.UUID, len(ids))
	copy(c.tableIDs, ids)
	return nil
}
