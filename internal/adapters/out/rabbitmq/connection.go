// Package rabbitmq requests rider pickups by publishing to the dispatch exchange.
package rabbitmq

import (
	"fmt"

	"kitchenpos/internal/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	Exchange                    = "kitchenriders"
	DeliveryRequestedRoutingKey = "delivery.requested"

	// confirmBuffer holds confirmations of abandoned publishes until the next
	// RequestDelivery skips them; amqp091 blocks the connection once it is full.
	confirmBuffer = 128
)

// Connection owns the broker connection and the confirm-mode channel the
// dispatcher publishes on.
type Connection struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	confirms <-chan amqp.Confirmation
}

// Dial connects, declares the durable topic exchange and switches the channel
// into publisher confirm mode.
func Dial(url string) (*Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", Exchange, err)
	}

	if err = ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("enable publisher confirms: %w", err)
	}
	confirms := ch.NotifyPublish(make(chan amqp.Confirmation, confirmBuffer))

	logger.L().Info("rabbitmq connected", zap.String("exchange", Exchange))
	return &Connection{conn: conn, ch: ch, confirms: confirms}, nil
}

// DeliveryDispatcher returns a dispatcher publishing on this connection.
func (c *Connection) DeliveryDispatcher() *DeliveryDispatcher {
	return NewDeliveryDispatcher(c.ch, c.confirms)
}

func (c *Connection) Close() {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}
