package order

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one row of an order. It is owned by its Order and never shared.
// The price is a snapshot of the menu price taken when the order is placed.
type LineItem struct {
	seq      int
	menuID   kernel.UUID
	quantity int64
	price    kernel.Money

	guard guard.ConstructorGuard
}

// NewLineItem creates an unattached line item. The sequence number is assigned when
// the item is added to an order. Quantity is checked by the order, since the rule
// depends on the order type.
func NewLineItem(menuID kernel.UUID, quantity int64, price kernel.Money) (*LineItem, error) {
	if err := menuID.Validate(); err != nil {
		return nil, err
	}

	return &LineItem{
		menuID:   menuID,
		quantity: quantity,
		price:    price,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreLineItem rebuilds a persisted line item.
func RestoreLineItem(seq int, menuID kernel.UUID, quantity int64, price kernel.Money) (*LineItem, error) {
	if seq < 1 {
		return nil, errs.NewValueIsOutOfRangeError("seq", seq, 1, "unbounded")
	}

	item, err := NewLineItem(menuID, quantity, price)
	if err != nil {
		return nil, err
	}
	item.seq = seq
	return item, nil
}

func (l *LineItem) Validate() error {
	if l == nil {
		return ErrLineItemIsNotConstructed
	}
	return l.guard.Validate(ErrLineItemIsNotConstructed)
}

// Seq is the 1-based position of the item in its order, 0 before it is attached.
func (l *LineItem) Seq() int {
	return l.seq
}

func (l *LineItem) MenuID() kernel.UUID {
	return l.menuID
}

func (l *LineItem) Quantity() int64 {
	return l.quantity
}

func (l *LineItem) Price() kernel.Money {
	return l.price
}

// Amount is price x quantity.
func (l *LineItem) Amount() decimal.Decimal {
	return l.price.Times(l.quantity)
}

// validateQuantity applies the quantity rule of orderType.
func (l *LineItem) validateQuantity(orderType Type) error {
	if orderType != DineIn && l.quantity < 1 {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"quantity", l.quantity, 1, "unbounded",
			fmt.Errorf("%s orders need at least one of menu %s", orderType, l.menuID),
		)
	}
	return nil
}
