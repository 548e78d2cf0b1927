package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrPublishNacked = errors.New("rabbitmq: broker rejected delivery request")

const confirmTimeout = 10 * time.Second

// publisher is the part of *amqp.Channel the dispatcher needs.
type publisher interface {
	GetNextPublishSeqNo() uint64
	PublishWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp.Publishing,
	) error
}

// DeliveryRequested is the message body consumed by the rider dispatch system.
type DeliveryRequested struct {
	OrderID     string          `json:"order_id"`
	Amount      decimal.Decimal `json:"amount"`
	Address     string          `json:"address"`
	RequestedAt time.Time       `json:"requested_at"`
}

// DeliveryDispatcher implements ports.DeliveryDispatcher. Publishes are
// serialized and every confirmation is matched to its publish by delivery tag,
// so a confirmation left behind by an abandoned call is skipped by the next one.
type DeliveryDispatcher struct {
	ch       publisher
	confirms <-chan amqp.Confirmation
	now      func() time.Time
	mu       sync.Mutex
}

func NewDeliveryDispatcher(ch publisher, confirms <-chan amqp.Confirmation) *DeliveryDispatcher {
	return &DeliveryDispatcher{
		ch:       ch,
		confirms: confirms,
		now:      time.Now,
	}
}

// RequestDelivery publishes one persistent message and waits for the broker to
// confirm it. A NACK, a closed confirm channel or a timeout is an error.
func (d *DeliveryDispatcher) RequestDelivery(
	ctx context.Context,
	orderID kernel.UUID,
	amount decimal.Decimal,
	address kernel.Address,
) error {
	body, err := json.Marshal(DeliveryRequested{
		OrderID:     orderID.String(),
		Amount:      amount,
		Address:     address.String(),
		RequestedAt: d.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal delivery request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, confirmTimeout)
	defer cancel()

	d.mu.Lock()
	defer d.mu.Unlock()

	tag := d.ch.GetNextPublishSeqNo()
	err = d.ch.PublishWithContext(ctx, Exchange, DeliveryRequestedRoutingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    orderID.String(),
		Timestamp:    d.now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish delivery request: %w", err)
	}

	log := logger.FromCtx(ctx).With(zap.String("order_id", orderID.String()))
	if err = d.awaitConfirm(ctx, tag); err != nil {
		if errors.Is(err, ErrPublishNacked) {
			log.Warn("delivery request nacked", zap.Uint64("delivery_tag", tag))
		}
		return err
	}

	log.Info("delivery requested", zap.String("amount", amount.String()))
	return nil
}

// awaitConfirm reads confirmations until the one for tag arrives. Lower tags
// belong to publishes whose callers stopped waiting and are dropped.
func (d *DeliveryDispatcher) awaitConfirm(ctx context.Context, tag uint64) error {
	for {
		select {
		case conf, ok := <-d.confirms:
			if !ok {
				return errors.New("rabbitmq: confirm channel closed")
			}
			switch {
			case conf.DeliveryTag < tag:
				continue
			case conf.DeliveryTag > tag:
				return fmt.Errorf("rabbitmq: confirmation for tag %d missing, got %d", tag, conf.DeliveryTag)
			case !conf.Ack:
				return ErrPublishNacked
			default:
				return nil
			}
		case <-ctx.Done():
			return fmt.Errorf("wait for publisher confirm: %w", ctx.Err())
		}
	}
}
