// Package logdispatch is the delivery dispatcher used when no broker is
// configured: requests are only written to the log.
package logdispatch

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type DeliveryDispatcher struct{}

func NewDeliveryDispatcher() DeliveryDispatcher {
	return DeliveryDispatcher{}
}

// RequestDelivery always succeeds.
func (DeliveryDispatcher) RequestDelivery(
	ctx context.Context,
	orderID kernel.UUID,
	amount decimal.Decimal,
	address kernel.Address,
) error {
	logger.FromCtx(ctx).Info("delivery requested",
		zap.String("order_id", orderID.String()),
		zap.String("amount", amount.String()),
		zap.String("address", address.String()),
	)
	return nil
}
