package alert_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/alert"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

func newTestAlert(t *testing.T, createdBy int64) *alert.Alert {
	t.Helper()

	alertID, err := kernel.NewAlertID(90001)
	require.NoError(t, err)
	orderID, err := kernel.NewOrderID(40010)
	require.NoError(t, err)
	creatorID, err := kernel.NewUserID(createdBy)
	require.NoError(t, err)

	found, err := alert.NewAlert(
		alertID,
		alert.CategoryOrderCancelled,
		"truck breakdown",
		[]kernel.OrderID{orderID},
		creatorID,
		time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		uuid.New(),
	)
	require.NoError(t, err)

	return found
}

func TestNewAlert(t *testing.T) {
	t.Run("should create alert with category, orders and creator", func(t *testing.T) {
		found := newTestAlert(t, 10001)

		assert.Equal(t, alert.CategoryOrderCancelled, found.Category())
		assert.Equal(t, "truck breakdown", found.Details())
		assert.Len(t, found.Orders(), 1)
		assert.Equal(t, int64(10001), found.CreatedByID().Int64())
	})

	t.Run("should reject empty details", func(t *testing.T) {
		alertID, err := kernel.NewAlertID(90001)
		require.NoError(t, err)
		creatorID, err := kernel.NewUserID(10001)
		require.NoError(t, err)

		_, err = alert.NewAlert(alertID, alert.CategoryOrderCancelled, "",
			nil, creatorID, time.Now(), uuid.New())

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject nil idempotency key", func(t *testing.T) {
		alertID, err := kernel.NewAlertID(90001)
		require.NoError(t, err)
		creatorID, err := kernel.NewUserID(10001)
		require.NoError(t, err)

		_, err = alert.NewAlert(alertID, alert.CategoryOrderCancelled, "truck breakdown",
			nil, creatorID, time.Now(), uuid.Nil)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestFormatMessage(t *testing.T) {
	t.Run("should render category, role and reason", func(t *testing.T) {
		message := alert.FormatMessage(alert.CategoryRequestCancelled, actor.Sales, "supplier out of stock")

		assert.Equal(t, "⚠️ Request Cancelled from Sales] Reason: supplier out of stock", message)
	})
}

func TestAlert_CanBeDeletedBy(t *testing.T) {
	newActor := func(t *testing.T, id int64, role actor.Role) actor.Actor {
		t.Helper()
		userID, err := kernel.NewUserID(id)
		require.NoError(t, err)
		acting, err := actor.NewActor(userID, role)
		require.NoError(t, err)
		return acting
	}

	t.Run("should allow the creator to delete their own alert", func(t *testing.T) {
		found := newTestAlert(t, 10001)
		creator := newActor(t, 10001, actor.Customer)

		assert.True(t, found.CanBeDeletedBy(creator))
	})

	t.Run("should allow sales to delete any alert", func(t *testing.T) {
		found := newTestAlert(t, 10001)
		sales := newActor(t, 10002, actor.Sales)

		assert.True(t, found.CanBeDeletedBy(sales))
	})

	t.Run("should not allow another customer to delete the alert", func(t *testing.T) {
		found := newTestAlert(t, 10001)
		other := newActor(t, 10002, actor.Customer)

		assert.False(t, found.CanBeDeletedBy(other))
	})
}
