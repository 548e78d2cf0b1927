package order

import (
	"errors"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the order lifecycle.
//
// Order follows these invariants:
//   - Has a valid identifier, a valid type and at least one line item
//   - Delivery orders have a delivery address, dine-in orders have a table
//   - Status only changes through the transitions defined by Status.Next
type Order struct {
	id              kernel.UUID
	orderType       Type
	status          Status
	lineItems       []*LineItem
	tableID         *kernel.UUID
	deliveryAddress kernel.Address
	orderedAt       time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order in WAITING status. tableID is only kept for dine-in orders
// and deliveryAddress only for delivery orders.
//
// Parameters:
//   - id: identifier chosen by the caller
//   - orderType: DELIVERY, TAKEOUT or EAT_IN
//   - lineItems: at least one item; items are numbered in the given order
//   - tableID: required for EAT_IN, ignored otherwise
//   - deliveryAddress: required for DELIVERY, ignored otherwise
//   - orderedAt: placement time, used to order the board and listings
//
// Returns:
//   - *Order: the new order in WAITING status
//   - error: ValueIsRequiredError or ValueIsInvalidError naming the first broken invariant
//
// Example:
//
//	item, _ := order.NewLineItem(menuID, 2, kernel.MustMoney("16000"))
//	o, err := order.NewOrder(kernel.NewUUID(), order.Takeout, []*order.LineItem{item}, nil, kernel.Address{}, time.Now())
func NewOrder(
	id kernel.UUID,
	orderType Type,
	lineItems []*LineItem,
	tableID *kernel.UUID,
	deliveryAddress kernel.Address,
	orderedAt time.Time,
) (*Order, error) {
	return build(id, orderType, Waiting, lineItems, tableID, deliveryAddress, orderedAt, true)
}

// RestoreOrder reconstructs a persisted order in any status. Line items keep the
// sequence numbers they were stored with.
func RestoreOrder(
	id kernel.UUID,
	orderType Type,
	status Status,
	lineItems []*LineItem,
	tableID *kernel.UUID,
	deliveryAddress kernel.Address,
	orderedAt time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return build(id, orderType, status, lineItems, tableID, deliveryAddress, orderedAt, false)
}

func build(
	id kernel.UUID,
	orderType Type,
	status Status,
	lineItems []*LineItem,
	tableID *kernel.UUID,
	deliveryAddress kernel.Address,
	orderedAt time.Time,
	numberItems bool,
) (*Order, error) {
	o := &Order{
		status:    status,
		orderedAt: orderedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setType(orderType),
	); err != nil {
		return nil, err
	}

	if err := errors.Join(
		o.setLineItems(lineItems, numberItems),
		o.setTable(tableID),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Type() Type {
	return o.orderType
}

func (o *Order) Status() Status {
	return o.status
}

// LineItems returns a copy of the item slice; the items themselves are immutable.
func (o *Order) LineItems() []*LineItem {
	items := make([]*LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// TableID is nil unless the order is dine-in.
func (o *Order) TableID() *kernel.UUID {
	return o.tableID
}

// DeliveryAddress is the zero Address unless the order is a delivery.
func (o *Order) DeliveryAddress() kernel.Address {
	return o.deliveryAddress
}

func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

// TotalAmount sums price x quantity over every line item.
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.lineItems {
		total = total.Add(item.Amount())
	}
	return total
}

// Accept moves a WAITING order to ACCEPTED.
//
// Returns:
//   - error: IllegalStateError if the order is not WAITING
func (o *Order) Accept() error {
	return o.apply(Accept)
}

func (o *Order) Serve() error {
	return o.apply(Serve)
}

// StartDelivery moves a SERVED delivery order to DELIVERING. Other order types
// get an IllegalStateError.
func (o *Order) StartDelivery() error {
	return o.apply(StartDelivery)
}

func (o *Order) CompleteDelivery() error {
	return o.apply(CompleteDelivery)
}

// Complete closes the order.
//
// Business Rules:
//   - Delivery orders complete from DELIVERED
//   - Takeout and eat-in orders complete from SERVED
//   - Vacating the table of an eat-in order is left to the command handler
//
// Returns:
//   - error: IllegalStateError if the current status does not allow completion
func (o *Order) Complete() error {
	return o.apply(Complete)
}

func (o *Order) apply(t Transition) error {
	next, err := o.status.Next(t, o.orderType)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setLineItems(lineItems []*LineItem, numberItems bool) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("order line items")
	}

	items := make([]*LineItem, 0, len(lineItems))
	for i, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
		if err := item.validateQuantity(o.orderType); err != nil {
			return err
		}

		attached := *item
		if numberItems {
			attached.seq = i + 1
		}
		items = append(items, &attached)
	}

	o.lineItems = items
	return nil
}

func (o *Order) setTable(tableID *kernel.UUID) error {
	if o.orderType != DineIn {
		return nil
	}
	if tableID == nil {
		return errs.NewValueIsRequiredError("order table")
	}
	if err := tableID.Validate(); err != nil {
		return err
	}

	id := *tableID
	o.tableID = &id
	return nil
}

func (o *Order) setDeliveryAddress(address kernel.Address) error {
	if o.orderType != Delivery {
		return nil
	}
	if err := address.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = address
	return nil
}
