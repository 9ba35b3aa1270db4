package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	orderID, err := kernel.NewOrderID(40010)
	require.NoError(t, err)
	requestID, err := kernel.NewRequestID(30010)
	require.NoError(t, err)
	itemID, err := kernel.NewItemID(20001)
	require.NoError(t, err)

	o, err := order.NewOrder(orderID, requestID,
		[]order.LineItem{{ItemID: itemID, Quantity: 5}},
		time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		"12 Market Street", "08:00-10:00", "no onions", "Invoice")
	require.NoError(t, err)

	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order waiting for approval", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, order.WaitingApproval, o.Status())
		assert.True(t, o.IsActive())
		assert.Equal(t, 1, o.Version())
	})

	t.Run("should reject empty line items", func(t *testing.T) {
		orderID, err := kernel.NewOrderID(40010)
		require.NoError(t, err)
		requestID, err := kernel.NewRequestID(30010)
		require.NoError(t, err)

		_, err = order.NewOrder(orderID, requestID, nil,
			time.Now(), "12 Market Street", "", "", "")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject line with non-positive quantity", func(t *testing.T) {
		orderID, err := kernel.NewOrderID(40010)
		require.NoError(t, err)
		requestID, err := kernel.NewRequestID(30010)
		require.NoError(t, err)
		itemID, err := kernel.NewItemID(20001)
		require.NoError(t, err)

		_, err = order.NewOrder(orderID, requestID,
			[]order.LineItem{{ItemID: itemID, Quantity: 0}},
			time.Now(), "12 Market Street", "", "", "")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_QuantityOf(t *testing.T) {
	t.Run("should return the ordered quantity of the item", func(t *testing.T) {
		o := newTestOrder(t)
		itemID, err := kernel.NewItemID(20001)
		require.NoError(t, err)

		assert.Equal(t, 5, o.QuantityOf(itemID))
	})

	t.Run("should return zero for an item the order does not carry", func(t *testing.T) {
		o := newTestOrder(t)
		otherID, err := kernel.NewItemID(20002)
		require.NoError(t, err)

		assert.Equal(t, 0, o.QuantityOf(otherID))
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("should walk the full happy path to delivered", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.TransitionTo(order.Preparing))
		require.NoError(t, o.TransitionTo(order.Dispatched))
		require.NoError(t, o.TransitionTo(order.Delivered))

		assert.Equal(t, order.Delivered, o.Status())
		assert.False(t, o.IsActive())
	})

	t.Run("should treat re-applying the current status as a no-op", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.TransitionTo(order.WaitingApproval)

		require.NoError(t, err)
		assert.Equal(t, order.WaitingApproval, o.Status())
	})

	t.Run("should reject cancelling a dispatched order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.TransitionTo(order.Preparing))
		require.NoError(t, o.TransitionTo(order.Dispatched))

		err := o.TransitionTo(order.Cancelled)

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Dispatched, o.Status())
	})

	t.Run("should reject leaving a terminal status", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.TransitionTo(order.Cancelled))

		err := o.TransitionTo(order.Preparing)

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Cancelled, o.Status())
	})
}
