package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrDeleteTableGroupCommandIsNotConstructed = errors.New(
	"DeleteTableGroupCommand must be created via NewDeleteTableGroupCommand constructor",
)

// DeleteTableGroupCommand splits a table group back into separate tables.
type DeleteTableGroupCommand struct {
	tableGroupID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteTableGroupCommand(tableGroupID kernel.UUID) (DeleteTableGroupCommand, error) {
	if err := tableGroupID.Validate(); err != nil {
		return DeleteTableGroupCommand{}, err
	}

	return DeleteTableGroupCommand{
		tableGroupID: tableGroupID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteTableGroupCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTableGroupCommandIsNotConstructed)
}

func (c DeleteTableGroupCommand) TableGroupID() kernel.UUID {
	return c.tableGroupID
}
