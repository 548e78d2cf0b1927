package menu

import (
	"errors"
	"strings"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrGroupNameIsRequired       = errs.NewValueIsRequiredError("menu group name")
	ErrMenuGroupIsNotConstructed = errors.New("MenuGroup must be created via NewMenuGroup constructor")
)

// MenuGroup categorises menus, e.g. "Set menus" or "Drinks".
type MenuGroup struct {
	id   kernel.UUID
	name string

	guard guard.ConstructorGuard
}

func NewMenuGroup(id kernel.UUID, name string) (*MenuGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrGroupNameIsRequired
	}

	return &MenuGroup{
		id:    id,
		name:  trimmed,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreMenuGroup rebuilds a persisted group.
func RestoreMenuGroup(id kernel.UUID, name string) (*MenuGroup, error) {
	return NewMenuGroup(id, name)
}

func (g *MenuGroup) Validate() error {
	if g == nil {
		return ErrMenuGroupIsNotConstructed
	}
	return g.guard.Validate(ErrMenuGroupIsNotConstructed)
}

func (g *MenuGroup) ID() kernel.UUID {
	return g.id
}

func (g *MenuGroup) Name() string {
	return g.name
}
