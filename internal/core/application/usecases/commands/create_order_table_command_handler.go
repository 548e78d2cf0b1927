package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/table"
)

type CreateOrderTableCommandHandler struct {
	uowFactory TableUoWFactory
}

func NewCreateOrderTableCommandHandler(uowFactory TableUoWFactory) CreateOrderTableCommandHandler {
	return CreateOrderTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores a new empty table with no guests.
func (h *CreateOrderTableCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderTableCommand,
) (*table.OrderTable, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	t, err := table.NewOrderTable(cmd.TableID(), cmd.Name())
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

	if err = uow.OrderTableRepository().Add(ctx, t); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return t, nil
}
