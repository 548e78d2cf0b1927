package menu

import (
	"errors"
	"strings"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrNameIsRequired       = errs.NewValueIsRequiredError("menu name")
	ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu constructor")
)

// Menu is a sellable item.
//
// Invariants:
//   - Name is not blank
//   - Price is never negative, enforced by kernel.Money
//   - Belongs to one menu group, whose existence is checked by the caller
type Menu struct {
	id          kernel.UUID
	name        string
	price       kernel.Money
	displayed   bool
	menuGroupID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMenu creates a menu. The group is referenced by id only.
//
// Example:
//
//	m, err := menu.NewMenu(kernel.NewUUID(), "Fried chicken", kernel.MustMoney("16000"), groupID, true)
func NewMenu(id kernel.UUID, name string, price kernel.Money, menuGroupID kernel.UUID, displayed bool) (*Menu, error) {
	m := &Menu{
		price:     price,
		displayed: displayed,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setMenuGroup(menuGroupID),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMenu rebuilds a persisted menu.
func RestoreMenu(id kernel.UUID, name string, price kernel.Money, menuGroupID kernel.UUID, displayed bool) (*Menu, error) {
	return NewMenu(id, name, price, menuGroupID, displayed)
}

func (m *Menu) Validate() error {
	if m == nil {
		return ErrMenuIsNotConstructed
	}
	return m.guard.Validate(ErrMenuIsNotConstructed)
}

func (m *Menu) ID() kernel.UUID {
	return m.id
}

func (m *Menu) Name() string {
	return m.name
}

func (m *Menu) Price() kernel.Money {
	return m.price
}

func (m *Menu) IsDisplayed() bool {
	return m.displayed
}

func (m *Menu) MenuGroupID() kernel.UUID {
	return m.menuGroupID
}

func (m *Menu) Display() {
	m.displayed = true
}

func (m *Menu) Hide() {
	m.displayed = false
}

// ChangePrice replaces the price. Existing orders keep their snapshot.
func (m *Menu) ChangePrice(price kernel.Money) {
	m.price = price
}

func (m *Menu) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Menu) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrNameIsRequired
	}
	m.name = trimmed
	return nil
}

func (m *Menu) setMenuGroup(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("menu group", err)
	}
	m.menuGroupID = id
	return nil
}
