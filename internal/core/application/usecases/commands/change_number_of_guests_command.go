package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrChangeNumberOfGuestsCommandIsNotConstructed = errors.New(
	"ChangeNumberOfGuestsCommand must be created via NewChangeNumberOfGuestsCommand constructor",
)

type ChangeNumberOfGuestsCommand struct { //nolint:recvcheck //using for validation
	tableID        kernel.UUID
	numberOfGuests int

	guard guard.ConstructorGuard
}

func NewChangeNumberOfGuestsCommand(tableID kernel.UUID, numberOfGuests int) (ChangeNumberOfGuestsCommand, error) {
	cmd := ChangeNumberOfGuestsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setNumberOfGuests(numberOfGuests),
	); err != nil {
		return ChangeNumberOfGuestsCommand{}, err
	}

	return cmd, nil
}

func (c ChangeNumberOfGuestsCommand) Validate() error {
	return c.guard.Validate(ErrChangeNumberOfGuestsCommandIsNotConstructed)
}

func (c ChangeNumberOfGuestsCommand) TableID() kernel.UUID {
	return c.tableID
}

func (c ChangeNumberOfGuestsCommand) NumberOfGuests() int {
	return c.numberOfGuests
}

func (c *ChangeNumberOfGuestsCommand) setTableID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.tableID = id
	return nil
}

func (c *ChangeNumberOfGuestsCommand) setNumberOfGuests(n int) error {
	if n < 0 {
		return errs.NewValueIsOutOfRangeError("number of guests", n, 0, "unbounded")
	}

	c.numberOfGuests = n
	return nil
}
