package commands

import (
	"context"
	"fmt"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/services"
	"kitchenpos/internal/pkg/errs"
)

// CreateOrderCommandHandler places new orders.
//
// Checks run in a fixed order: line items against the stored menus
// (services.MenuChecker), then the delivery address, then the table. The order is
// stored in WAITING status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	o, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	menuChecker services.MenuChecker
	now         func() time.Time
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		menuChecker: services.NewMenuChecker(),
		now:         time.Now,
	}
}

// Handle validates the request against stored menus and tables and persists the order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	lineItems := make([]*order.LineItem, 0, len(cmd.LineItems()))
	for _, req := range cmd.LineItems() {
		item, err := order.NewLineItem(req.MenuID, req.Quantity, req.Price)
		if err != nil {
			return nil, err
		}
		lineItems = append(lineItems, item)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menus, err := uow.MenuRepository().GetAllByIDs(ctx, cmd.MenuIDs())
	if err != nil {
		return nil, err
	}

	if err = h.menuChecker.Check(cmd.OrderType(), lineItems, menus); err != nil {
		return nil, err
	}

	var address kernel.Address
	if cmd.OrderType() == order.Delivery {
		if address, err = kernel.NewAddress(cmd.DeliveryAddress()); err != nil {
			return nil, err
		}
	}

	if cmd.OrderType() == order.DineIn {
		if err = h.checkTable(ctx, uow, cmd.TableID()); err != nil {
			return nil, err
		}
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.OrderType(), lineItems, cmd.TableID(), address, h.now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

func (h *CreateOrderCommandHandler) checkTable(ctx context.Context, uow OrderUoW, tableID *kernel.UUID) error {
	if tableID == nil {
		return errs.NewValueIsRequiredError("order table")
	}

	t, err := uow.OrderTableRepository().Get(ctx, *tableID)
	if err != nil {
		return err
	}

	if t.IsEmpty() {
		return errs.NewIllegalStateErrorWithCause(
			"order table",
			fmt.Errorf("dine-in orders cannot be placed at empty table %s", t.ID()),
		)
	}
	return nil
}
