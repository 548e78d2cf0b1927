package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/services"
)

// DeleteTableGroupCommandHandler ungroups tables. It is refused while any member
// table has an order that is not completed. Member tables keep their empty flag.
type DeleteTableGroupCommandHandler struct {
	uowFactory TableUoWFactory
	grouper    services.TableGrouper
}

func NewDeleteTableGroupCommandHandler(uowFactory TableUoWFactory) DeleteTableGroupCommandHandler {
	return DeleteTableGroupCommandHandler{
		uowFactory: uowFactory,
		grouper:    services.NewTableGrouper(),
	}
}

func (h *DeleteTableGroupCommandHandler) Handle(ctx context.Context, cmd DeleteTableGroupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	groupRepo := uow.TableGroupRepository()
	if _, err := groupRepo.Get(ctx, cmd.TableGroupID()); err != nil {
		return err
	}

	tableRepo := uow.OrderTableRepository()
	tables, err := tableRepo.GetAllByTableGroup(ctx, cmd.TableGroupID())
	if err != nil {
		return err
	}

	tableIDs := make([]kernel.UUID, 0, len(tables))
	for _, t := range tables {
		tableIDs = append(tableIDs, t.ID())
	}

	open, err := uow.OrderRepository().ExistsByTablesAndStatusNot(ctx, tableIDs, order.Completed)
	if err != nil {
		return err
	}

	if err = h.grouper.Ungroup(tables, open); err != nil {
		return err
	}

	for _, t := range tables {
		if err = tableRepo.Update(ctx, t); err != nil {
			return err
		}
	}

	if err = groupRepo.Delete(ctx, cmd.TableGroupID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
