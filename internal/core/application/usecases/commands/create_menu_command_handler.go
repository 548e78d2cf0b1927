package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/menu"
)

// CreateMenuCommandHandler stores a new menu after checking that its group exists.
type CreateMenuCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewCreateMenuCommandHandler(uowFactory MenuUoWFactory) CreateMenuCommandHandler {
	return CreateMenuCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateMenuCommandHandler) Handle(ctx context.Context, cmd CreateMenuCommand) (*menu.Menu, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	m, err := menu.NewMenu(cmd.MenuID(), cmd.Name(), cmd.Price(), cmd.MenuGroupID(), cmd.Displayed())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.MenuGroupRepository().Get(ctx, cmd.MenuGroupID()); err != nil {
		return nil, err
	}

	if err = uow.MenuRepository().Add(ctx, m); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return m, nil
}
