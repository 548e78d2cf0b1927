package commands

import (
	"context"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/core/domain/services"
)

// CreateTableGroupCommandHandler groups tables. The group row is stored before the
// member tables, which reference it.
type CreateTableGroupCommandHandler struct {
	uowFactory TableUoWFactory
	grouper    services.TableGrouper
	now        func() time.Time
}

func NewCreateTableGroupCommandHandler(uowFactory TableUoWFactory) CreateTableGroupCommandHandler {
	return CreateTableGroupCommandHandler{
		uowFactory: uowFactory,
		grouper:    services.NewTableGrouper(),
		now:        time.Now,
	}
}

func (h *CreateTableGroupCommandHandler) Handle(
	ctx context.Context,
	cmd CreateTableGroupCommand,
) (*table.TableGroup, error) {
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
	tables, err := tableRepo.GetAllByIDs(ctx, kernel.DistinctUUIDs(cmd.TableIDs()))
	if err != nil {
		return nil, err
	}

	group, err := h.grouper.Group(cmd.TableGroupID(), cmd.TableIDs(), tables, h.now())
	if err != nil {
		return nil, err
	}

	if err = uow.TableGroupRepository().Add(ctx, group); err != nil {
		return nil, err
	}

	for _, t := range tables {
		if err = tableRepo.Update(ctx, t); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return group, nil
}
