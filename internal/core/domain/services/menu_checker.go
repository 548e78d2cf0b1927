package services

import (
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"
)

// MenuChecker verifies that the line items of a new order can be sold as requested.
//
// Business rules, checked in this order:
//   - Every line item references a different menu and every menu was found
//   - Non dine-in orders need a quantity of at least 1 on every item
//   - Each referenced menu is displayed
//   - Each item's price equals the current menu price exactly
//
// Example usage:
//
//	checker := services.NewMenuChecker()
//	menus, _ := menuRepo.GetAllByIDs(ctx, menuIDs)
//	if err := checker.Check(order.Takeout, items, menus); err != nil {
//	    return nil, err
//	}
type MenuChecker struct{}

func NewMenuChecker() MenuChecker {
	return MenuChecker{}
}

// Check returns an invalid-argument error for duplicate, unknown or hidden menus,
// bad quantities and stale prices, and a not-found error when a menu is missing
// from menus.
func (c MenuChecker) Check(orderType order.Type, items []*order.LineItem, menus []*menu.Menu) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order line items")
	}

	if len(menus) != len(items) {
		return errs.NewValueIsInvalidErrorWithCause(
			"order line items",
			fmt.Errorf("%d line items reference %d distinct existing menus", len(items), len(menus)),
		)
	}

	if orderType != order.DineIn {
		for _, item := range items {
			if item.Quantity() < 1 {
				return errs.NewValueIsOutOfRangeError("quantity", item.Quantity(), 1, "unbounded")
			}
		}
	}

	byID := c.index(menus)
	for _, item := range items {
		m, ok := byID[item.MenuID()]
		if !ok {
			return errs.NewObjectNotFoundError("menu", item.MenuID())
		}
		if !m.IsDisplayed() {
			return errs.NewValueIsInvalidErrorWithCause(
				"menu",
				fmt.Errorf("menu %s is not displayed", m.ID()),
			)
		}
		if !m.Price().IsEqual(item.Price()) {
			return errs.NewValueIsInvalidErrorWithCause(
				"price",
				fmt.Errorf("menu %s costs %s, line item says %s", m.ID(), m.Price(), item.Price()),
			)
		}
	}

	return nil
}

func (c MenuChecker) index(menus []*menu.Menu) map[kernel.UUID]*menu.Menu {
	byID := make(map[kernel.UUID]*menu.Menu, len(menus))
	for _, m := range menus {
		byID[m.ID()] = m
	}
	return byID
}
