package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrChangeTableOccupancyCommandIsNotConstructed = errors.New(
	"ChangeTableOccupancyCommand must be created via NewSitTableCommand or NewClearTableCommand",
)

// ChangeTableOccupancyCommand seats guests at a table or clears it.
type ChangeTableOccupancyCommand struct {
	tableID kernel.UUID
	clear   bool

	guard guard.ConstructorGuard
}

// NewSitTableCommand marks a table as occupied.
func NewSitTableCommand(tableID kernel.UUID) (ChangeTableOccupancyCommand, error) {
	return newChangeTableOccupancyCommand(tableID, false)
}

// NewClearTableCommand empties a table and resets its guest count.
func NewClearTableCommand(tableID kernel.UUID) (ChangeTableOccupancyCommand, error) {
	return newChangeTableOccupancyCommand(tableID, true)
}

func newChangeTableOccupancyCommand(tableID kernel.UUID, clearTable bool) (ChangeTableOccupancyCommand, error) {
	if err := tableID.Validate(); err != nil {
		return ChangeTableOccupancyCommand{}, err
	}

	return ChangeTableOccupancyCommand{
		tableID: tableID,
		clear:   clearTable,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeTableOccupancyCommand) Validate() error {
	return c.guard.Validate(ErrChangeTableOccupancyCommandIsNotConstructed)
}

func (c ChangeTableOccupancyCommand) TableID() kernel.UUID {
	return c.tableID
}

// IsClear is true for clear requests and false for sit requests.
func (c ChangeTableOccupancyCommand) IsClear() bool {
	return c.clear
}
