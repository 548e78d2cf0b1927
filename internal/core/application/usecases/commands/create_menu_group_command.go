package commands

import (
	"errors"
	"strings"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateMenuGroupCommandIsNotConstructed = errors.New(
	"CreateMenuGroupCommand must be created via NewCreateMenuGroupCommand constructor",
)

type CreateMenuGroupCommand struct { //nolint:recvcheck //using for validation
	menuGroupID kernel.UUID
	name        string

	guard guard.ConstructorGuard
}

func NewCreateMenuGroupCommand(menuGroupID kernel.UUID, name string) (CreateMenuGroupCommand, error) {
	cmd := CreateMenuGroupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuGroupID(menuGroupID),
		cmd.setName(name),
	); err != nil {
		return CreateMenuGroupCommand{}, err
	}

	return cmd, nil
}

func (c CreateMenuGroupCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuGroupCommandIsNotConstructed)
}

func (c CreateMenuGroupCommand) MenuGroupID() kernel.UUID {
	return c.menuGroupID
}

func (c CreateMenuGroupCommand) Name() string {
	return c.name
}

func (c *CreateMenuGroupCommand) setMenuGroupID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.menuGroupID = id
	return nil
}

func (c *CreateMenuGroupCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return menu.ErrGroupNameIsRequired
	}

	c.name = name
	return nil
}
