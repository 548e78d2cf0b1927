package commands

import (
	"context"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"
)

// ChangeTableOccupancyCommandHandler sits or clears tables. A table cannot be cleared
// while it is grouped or while any of its orders is not completed.
type ChangeTableOccupancyCommandHandler struct {
	uowFactory TableUoWFactory
}

func NewChangeTableOccupancyCommandHandler(uowFactory TableUoWFactory) ChangeTableOccupancyCommandHandler {
	return ChangeTableOccupancyCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ChangeTableOccupancyCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeTableOccupancyCommand,
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

	if cmd.IsClear() {
		if err = h.clear(ctx, uow, t); err != nil {
			return nil, err
		}
	} else {
		t.Sit()
	}

	if err = tableRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return t, nil
}

func (h *ChangeTableOccupancyCommandHandler) clear(ctx context.Context, uow TableUoW, t *table.OrderTable) error {
	if err := t.Clear(); err != nil {
		return err
	}

	open, err := uow.OrderRepository().ExistsByTablesAndStatusNot(ctx, []kernel.UUID{t.ID()}, order.Completed)
	if err != nil {
		return err
	}
	if open {
		return errs.NewIllegalStateErrorWithCause(
			"order table",
			fmt.Errorf("table %s has orders that are not completed", t.ID()),
		)
	}
	return nil
}
