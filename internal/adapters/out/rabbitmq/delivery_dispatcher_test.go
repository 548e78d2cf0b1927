package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp.Publishing,
) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func (m *MockPublisher) GetNextPublishSeqNo() uint64 {
	args := m.Called()
	return args.Get(0).(uint64)
}

func newMockPublisher(tags ...uint64) *MockPublisher {
	pub := new(MockPublisher)
	if len(tags) == 0 {
		tags = []uint64{1}
	}
	for _, tag := range tags {
		pub.On("GetNextPublishSeqNo").Return(tag).Once()
	}
	return pub
}

func newTestDispatcher(pub publisher, confirms chan amqp.Confirmation) *DeliveryDispatcher {
	d := NewDeliveryDispatcher(pub, confirms)
	d.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return d
}

func TestDeliveryDispatcher_RequestDelivery(t *testing.T) {
	orderID := kernel.NewUUID()
	address, err := kernel.NewAddress("12 Baker Street")
	require.NoError(t, err)

	t.Run("publishes persistent message and waits for ack", func(t *testing.T) {
		pub := newMockPublisher()
		confirms := make(chan amqp.Confirmation, 1)
		d := newTestDispatcher(pub, confirms)

		var published amqp.Publishing
		pub.On("PublishWithContext", mock.Anything, Exchange, DeliveryRequestedRoutingKey, false, false, mock.Anything).
			Run(func(args mock.Arguments) {
				published = args.Get(5).(amqp.Publishing)
				confirms <- amqp.Confirmation{DeliveryTag: 1, Ack: true}
			}).
			Return(nil).
			Once()

		err := d.RequestDelivery(t.Context(), orderID, decimal.RequireFromString("32000"), address)

		require.NoError(t, err)
		assert.Equal(t, amqp.Persistent, published.DeliveryMode)
		assert.Equal(t, "application/json", published.ContentType)
		assert.Equal(t, orderID.String(), published.MessageId)

		var msg DeliveryRequested
		require.NoError(t, json.Unmarshal(published.Body, &msg))
		assert.Equal(t, orderID.String(), msg.OrderID)
		assert.True(t, msg.Amount.Equal(decimal.RequireFromString("32000")))
		assert.Equal(t, "12 Baker Street", msg.Address)
		assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), msg.RequestedAt)
		pub.AssertExpectations(t)
	})

	t.Run("nack is an error", func(t *testing.T) {
		pub := newMockPublisher()
		confirms := make(chan amqp.Confirmation, 1)
		d := newTestDispatcher(pub, confirms)

		pub.On("PublishWithContext", mock.Anything, Exchange, DeliveryRequestedRoutingKey, false, false, mock.Anything).
			Run(func(mock.Arguments) {
				confirms <- amqp.Confirmation{DeliveryTag: 1, Ack: false}
			}).
			Return(nil)

		err := d.RequestDelivery(t.Context(), orderID, decimal.NewFromInt(1000), address)

		require.ErrorIs(t, err, ErrPublishNacked)
	})

	t.Run("publish failure is returned without waiting", func(t *testing.T) {
		pub := newMockPublisher()
		d := newTestDispatcher(pub, make(chan amqp.Confirmation))
		publishErr := errors.New("channel/connection is not open")

		pub.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, false, false, mock.Anything).
			Return(publishErr)

		err := d.RequestDelivery(t.Context(), orderID, decimal.NewFromInt(1000), address)

		require.ErrorIs(t, err, publishErr)
	})

	t.Run("closed confirm channel is an error", func(t *testing.T) {
		pub := newMockPublisher()
		confirms := make(chan amqp.Confirmation)
		close(confirms)
		d := newTestDispatcher(pub, confirms)

		pub.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, false, false, mock.Anything).
			Return(nil)

		err := d.RequestDelivery(t.Context(), orderID, decimal.NewFromInt(1000), address)

		require.Error(t, err)
	})

	t.Run("cancelled context stops waiting for confirm", func(t *testing.T) {
		pub := newMockPublisher()
		d := newTestDispatcher(pub, make(chan amqp.Confirmation))
		ctx, cancel := context.WithCancel(t.Context())

		pub.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, false, false, mock.Anything).
			Run(func(mock.Arguments) { cancel() }).
			Return(nil)

		err := d.RequestDelivery(ctx, orderID, decimal.NewFromInt(1000), address)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("stale confirmation of an abandoned publish is skipped", func(t *testing.T) {
		pub := newMockPublisher(1, 2)
		confirms := make(chan amqp.Confirmation, 2)
		d := newTestDispatcher(pub, confirms)

		pub.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, false, false, mock.Anything).
			Return(nil).
			Once()
		ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
		defer cancel()

		err := d.RequestDelivery(ctx, orderID, decimal.NewFromInt(1000), address)
		require.ErrorIs(t, err, context.DeadlineExceeded)

		confirms <- amqp.Confirmation{DeliveryTag: 1, Ack: true}
		pub.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, false, false, mock.Anything).
			Run(func(mock.Arguments) {
				confirms <- amqp.Confirmation{DeliveryTag: 2, Ack: false}
			}).
			Return(nil).
			Once()

		err = d.RequestDelivery(t.Context(), kernel.NewUUID(), decimal.NewFromInt(2000), address)

		require.ErrorIs(t, err, ErrPublishNacked)
		assert.Empty(t, confirms)
		pub.AssertExpectations(t)
	})

	t.Run("confirmation past the expected tag is an error", func(t *testing.T) {
		pub := newMockPublisher(3)
		confirms := make(chan amqp.Confirmation, 1)
		d := newTestDispatcher(pub, confirms)

		pub.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, false, false, mock.Anything).
			Run(func(mock.Arguments) {
				confirms <- amqp.Confirmation{DeliveryTag: 4, Ack: true}
			}).
			Return(nil)

		err := d.RequestDelivery(t.Context(), orderID, decimal.NewFromInt(1000), address)

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrPublishNacked)
	})
}
