package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrLineItemsAreRequired = errs.NewValueIsRequiredError("order line items")
)

// OrderLineItemRequest is one requested line: the menu, how many, and the price the
// client saw when ordering.
type OrderLineItemRequest struct {
	MenuID   kernel.UUID
	Quantity int64
	Price    kernel.Money
}

// CreateOrderCommand represents a request to place a new order.
// Only the type and the presence of line items are checked here; everything that
// needs stored menus or tables is checked by the handler.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), order.Delivery,
//	    []OrderLineItemRequest{{MenuID: menuID, Quantity: 2, Price: kernel.MustMoney("16000")}},
//	    nil, "12 Baker Street")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	orderType       order.Type
	lineItems       []OrderLineItemRequest
	tableID         *kernel.UUID
	deliveryAddress string

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderType order.Type,
	lineItems []OrderLineItemRequest,
	tableID *kernel.UUID,
	deliveryAddress string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		tableID:         tableID,
		deliveryAddress: deliveryAddress,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderType(orderType),
		cmd.setLineItems(lineItems),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// LineItems returns a copy of the requested lines.
func (c CreateOrderCommand) LineItems() []OrderLineItemRequest {
	items := make([]OrderLineItemRequest, len(c.lineItems))
	copy(items, c.lineItems)
	return items
}

// TableID may be nil; it is only used for dine-in orders.
func (c CreateOrderCommand) TableID() *kernel.UUID {
	return c.tableID
}

// DeliveryAddress is the raw address; it is only used for delivery orders.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// MenuIDs returns the distinct menus referenced by the line items.
func (c CreateOrderCommand) MenuIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(c.lineItems))
	for _, item := range c.lineItems {
		ids = append(ids, item.MenuID)
	}
	return kernel.DistinctUUIDs(ids)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setLineItems(lineItems []OrderLineItemRequest) error {
	if len(lineItems) == 0 {
		return ErrLineItemsAreRequired
	}

	c.lineItems = make([]OrderLineItemRequest, len(lineItems))
	copy(c.lineItems, lineItems)
	return nil
}
