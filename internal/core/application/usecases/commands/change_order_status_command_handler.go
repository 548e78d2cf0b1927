package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler applies lifecycle transitions to stored orders.
//
// Two transitions have side effects:
//   - Accepting a delivery order requests a rider through the DeliveryDispatcher
//     before anything is stored; a dispatch failure aborts the whole operation.
//   - Completing a dine-in order empties its table once no other order placed at
//     that table is still open.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, dispatcher)
//	cmd, _ := NewAcceptOrderCommand(orderID)
//	o, err := handler.Handle(ctx, cmd)
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher ports.DeliveryDispatcher
}

func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher ports.DeliveryDispatcher,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle loads the order, applies the transition and stores the result.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.apply(o, cmd.Transition()); err != nil {
		return nil, err
	}

	if cmd.Transition() == order.Accept && o.Type() == order.Delivery {
		if err = h.dispatcher.RequestDelivery(ctx, o.ID(), o.TotalAmount(), o.DeliveryAddress()); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if cmd.Transition() == order.Complete && o.Type() == order.DineIn {
		if err = h.releaseTable(ctx, uow, *o.TableID()); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

func (h *ChangeOrderStatusCommandHandler) apply(o *order.Order, transition order.Transition) error {
	switch transition {
	case order.Accept:
		return o.Accept()
	case order.Serve:
		return o.Serve()
	case order.StartDelivery:
		return o.StartDelivery()
	case order.CompleteDelivery:
		return o.CompleteDelivery()
	case order.Complete:
		return o.Complete()
	default:
		return errs.NewValueIsInvalidError("order transition")
	}
}

// releaseTable vacates the table unless another order placed there is still open.
// Runs after the completed order was updated, so that order no longer counts.
func (h *ChangeOrderStatusCommandHandler) releaseTable(ctx context.Context, uow OrderUoW, tableID kernel.UUID) error {
	open, err := uow.OrderRepository().ExistsByTablesAndStatusNot(ctx, []kernel.UUID{tableID}, order.Completed)
	if err != nil {
		return err
	}
	if open {
		return nil
	}

	tableRepo := uow.OrderTableRepository()
	t, err := tableRepo.Get(ctx, tableID)
	if err != nil {
		return err
	}

	t.Vacate()
	return tableRepo.Update(ctx, t)
}
