package order_test

import (
	"fmt"
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.WaitingApproval))
		assert.Equal(t, 2, int(order.Preparing))
		assert.Equal(t, 3, int(order.Dispatched))
		assert.Equal(t, 4, int(order.Delivered))
		assert.Equal(t, 5, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range []order.Status{
			order.WaitingApproval,
			order.Preparing,
			order.Dispatched,
			order.Delivered,
			order.Cancelled,
		} {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(6)} {
			err := status.Validate()
			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("should allow exactly the transitions in the table", func(t *testing.T) {
		allowed := map[order.Status][]order.Status{
			order.WaitingApproval: {order.Preparing, order.Cancelled},
			order.Preparing:       {order.Dispatched, order.Cancelled},
			order.Dispatched:      {order.Delivered},
			order.Delivered:       {},
			order.Cancelled:       {},
		}
		all := []order.Status{
			order.WaitingApproval, order.Preparing, order.Dispatched,
			order.Delivered, order.Cancelled,
		}

		for from, targets := range allowed {
			reachable := make(map[order.Status]bool)
			for _, to := range targets {
				reachable[to] = true
			}
			for _, to := range all {
				assert.Equal(t, reachable[to], from.CanTransitionTo(to),
					"%s -> %s", from, to)
			}
		}
	})

	t.Run("should not allow cancelling a dispatched order", func(t *testing.T) {
		assert.False(t, order.Dispatched.CanTransitionTo(order.Cancelled))
	})

	t.Run("should not allow skipping dispatch", func(t *testing.T) {
		assert.False(t, order.Preparing.CanTransitionTo(order.Delivered))
	})
}

func TestStatus_IsActive(t *testing.T) {
	assert.True(t, order.WaitingApproval.IsActive())
	assert.True(t, order.Preparing.IsActive())
	assert.False(t, order.Dispatched.IsActive())
	assert.False(t, order.Delivered.IsActive())
	assert.False(t, order.Cancelled.IsActive())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.WaitingApproval.IsTerminal())
	assert.False(t, order.Preparing.IsTerminal())
	assert.False(t, order.Dispatched.IsTerminal())
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip every valid status", func(t *testing.T) {
		for _, status := range []order.Status{
			order.WaitingApproval, order.Preparing, order.Dispatched,
			order.Delivered, order.Cancelled,
		} {
			parsed, err := order.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown labels", func(t *testing.T) {
		_, err := order.StatusFromString("Shipped")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
