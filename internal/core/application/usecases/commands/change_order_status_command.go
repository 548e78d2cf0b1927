package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via one of the order transition constructors",
)

// ChangeOrderStatusCommand moves an order along its lifecycle. It is built by
// NewAcceptOrderCommand, NewServeOrderCommand, NewStartDeliveryCommand,
// NewCompleteDeliveryCommand or NewCompleteOrderCommand.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	transition order.Transition

	guard guard.ConstructorGuard
}

func NewAcceptOrderCommand(orderID kernel.UUID) (ChangeOrderStatusCommand, error) {
	return newChangeOrderStatusCommand(orderID, order.Accept)
}

func NewServeOrderCommand(orderID kernel.UUID) (ChangeOrderStatusCommand, error) {
	return newChangeOrderStatusCommand(orderID, order.Serve)
}

func NewStartDeliveryCommand(orderID kernel.UUID) (ChangeOrderStatusCommand, error) {
	return newChangeOrderStatusCommand(orderID, order.StartDelivery)
}

func NewCompleteDeliveryCommand(orderID kernel.UUID) (ChangeOrderStatusCommand, error) {
	return newChangeOrderStatusCommand(orderID, order.CompleteDelivery)
}

func NewCompleteOrderCommand(orderID kernel.UUID) (ChangeOrderStatusCommand, error) {
	return newChangeOrderStatusCommand(orderID, order.Complete)
}

func newChangeOrderStatusCommand(orderID kernel.UUID, transition order.Transition) (ChangeOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID:    orderID,
		transition: transition,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Transition() order.Transition {
	return c.transition
}
