package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/menu"
)

type ChangeMenuCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewChangeMenuCommandHandler(uowFactory MenuUoWFactory) ChangeMenuCommandHandler {
	return ChangeMenuCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ChangeMenuCommandHandler) Handle(ctx context.Context, cmd ChangeMenuCommand) (*menu.Menu, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()
	m, err := menuRepo.Get(ctx, cmd.MenuID())
	if err != nil {
		return nil, err
	}

	switch cmd.change {
	case displayMenu:
		m.Display()
	case hideMenu:
		m.Hide()
	case changeMenuPrice:
		m.ChangePrice(cmd.Price())
	}

	if err = menuRepo.Update(ctx, m); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return m, nil
}
