package commands

import (
	"errors"
	"strings"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateMenuCommandIsNotConstructed = errors.New(
	"CreateMenuCommand must be created via NewCreateMenuCommand constructor",
)

// CreateMenuCommand adds a menu to an existing menu group.
//
// Example:
//
//	cmd, err := NewCreateMenuCommand(kernel.NewUUID(), "Fried chicken", kernel.MustMoney("16000"), groupID, true)
type CreateMenuCommand struct { //nolint:recvcheck //using for validation
	menuID      kernel.UUID
	name        string
	price       kernel.Money
	menuGroupID kernel.UUID
	displayed   bool

	guard guard.ConstructorGuard
}

func NewCreateMenuCommand(
	menuID kernel.UUID,
	name string,
	price kernel.Money,
	menuGroupID kernel.UUID,
	displayed bool,
) (CreateMenuCommand, error) {
	cmd := CreateMenuCommand{
		price:     price,
		displayed: displayed,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuID(menuID),
		cmd.setName(name),
		cmd.setMenuGroupID(menuGroupID),
	); err != nil {
		return CreateMenuCommand{}, err
	}

	return cmd, nil
}

func (c CreateMenuCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuCommandIsNotConstructed)
}

func (c CreateMenuCommand) MenuID() kernel.UUID {
	return c.menuID
}

func (c CreateMenuCommand) Name() string {
	return c.name
}

func (c CreateMenuCommand) Price() kernel.Money {
	return c.price
}

func (c CreateMenuCommand) MenuGroupID() kernel.UUID {
	return c.menuGroupID
}

func (c CreateMenuCommand) Displayed() bool {
	return c.displayed
}

func (c *CreateMenuCommand) setMenuID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.menuID = id
	return nil
}

func (c *CreateMenuCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return menu.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateMenuCommand) setMenuGroupID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.menuGroupID = id
	return nil
}
