package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrChangeMenuCommandIsNotConstructed = errors.New(
	"ChangeMenuCommand must be created via NewDisplayMenuCommand, NewHideMenuCommand or NewChangeMenuPriceCommand",
)

type menuChange int

const (
	displayMenu menuChange = iota + 1
	hideMenu
	changeMenuPrice
)

// ChangeMenuCommand displays or hides a menu, or changes its price.
// Orders placed earlier keep the price they were placed with.
type ChangeMenuCommand struct {
	menuID kernel.UUID
	change menuChange
	price  kernel.Money

	guard guard.ConstructorGuard
}

func NewDisplayMenuCommand(menuID kernel.UUID) (ChangeMenuCommand, error) {
	return newChangeMenuCommand(menuID, displayMenu, kernel.Money{})
}

func NewHideMenuCommand(menuID kernel.UUID) (ChangeMenuCommand, error) {
	return newChangeMenuCommand(menuID, hideMenu, kernel.Money{})
}

// NewChangeMenuPriceCommand takes a validated price; kernel.Money cannot be negative.
func NewChangeMenuPriceCommand(menuID kernel.UUID, price kernel.Money) (ChangeMenuCommand, error) {
	return newChangeMenuCommand(menuID, changeMenuPrice, price)
}

func newChangeMenuCommand(menuID kernel.UUID, change menuChange, price kernel.Money) (ChangeMenuCommand, error) {
	if err := menuID.Validate(); err != nil {
		return ChangeMenuCommand{}, err
	}

	return ChangeMenuCommand{
		menuID: menuID,
		change: change,
		price:  price,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeMenuCommand) Validate() error {
	return c.guard.Validate(ErrChangeMenuCommandIsNotConstructed)
}

func (c ChangeMenuCommand) MenuID() kernel.UUID {
	return c.menuID
}

// Price is only meaningful for price changes.
func (c ChangeMenuCommand) Price() kernel.Money {
	return c.price
}
