package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// DeliveryDispatcher asks the rider dispatch system to pick up an accepted
// delivery order. An error means the request was not acknowledged.
type DeliveryDispatcher interface {
	RequestDelivery(ctx context.Context, orderID kernel.UUID, amount decimal.Decimal, address kernel.Address) error
}
