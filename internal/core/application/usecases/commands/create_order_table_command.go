package commands

import (
	"errors"
	"strings"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateOrderTableCommandIsNotConstructed = errors.New(
	"CreateOrderTableCommand must be created via NewCreateOrderTableCommand constructor",
)

// CreateOrderTableCommand registers a new, empty table.
type CreateOrderTableCommand struct { //nolint:recvcheck //using for validation
	tableID kernel.UUID
	name    string

	guard guard.ConstructorGuard
}

func NewCreateOrderTableCommand(tableID kernel.UUID, name string) (CreateOrderTableCommand, error) {
	cmd := CreateOrderTableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setName(name),
	); err != nil {
		return CreateOrderTableCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderTableCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderTableCommandIsNotConstructed)
}

func (c CreateOrderTableCommand) TableID() kernel.UUID {
	return c.tableID
}

func (c CreateOrderTableCommand) Name() string {
	return c.name
}

func (c *CreateOrderTableCommand) setTableID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.tableID = id
	return nil
}

func (c *CreateOrderTableCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return table.ErrNameIsRequired
	}

	c.name = name
	return nil
}
