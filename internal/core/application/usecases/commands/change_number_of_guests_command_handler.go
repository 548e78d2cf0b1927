package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/table"
)

// ChangeNumberOfGuestsCommandHandler updates the guest count of an occupied table.
type ChangeNumberOfGuestsCommandHandler struct {
	uowFactory TableUoWFactory
}

func NewChangeNumberOfGuestsCommandHandler(uowFactory TableUoWFactory) ChangeNumberOfGuestsCommandHandler {
	return ChangeNumberOfGuestsCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ChangeNumberOfGuestsCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeNumberOfGuestsCommand,
) (*table.OrderTable, error) {
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

	tableRepo := uow.OrderTableRepository()
	t, err := tableRepo.Get(ctx, cmd.TableID())
	if err != nil {
		return nil, err
	}

	if err = t.ChangeNumberOfGuests(cmd.NumberOfGuests()); err != nil {
		return nil, err
	}

	if err = tableRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return t, nil
}
