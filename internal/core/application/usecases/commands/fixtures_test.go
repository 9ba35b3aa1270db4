package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/item"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/request"
)

func restoreTestRequest(t *testing.T, id int64, status request.Status) *request.Request {
	t.Helper()

	requestID, err := kernel.NewRequestID(id)
	require.NoError(t, err)
	customerID, err := kernel.NewUserID(10001)
	require.NoError(t, err)
	pointPersonID, err := kernel.NewUserID(10002)
	require.NoError(t, err)

	req, err := request.RestoreRequest(requestID, customerID, pointPersonID, status,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 1)
	require.NoError(t, err)

	return req
}

func restoreTestOrder(t *testing.T, id int64, status order.Status, quantity int) *order.Order {
	t.Helper()

	orderID, err := kernel.NewOrderID(id)
	require.NoError(t, err)
	requestID, err := kernel.NewRequestID(30010)
	require.NoError(t, err)
	itemID, err := kernel.NewItemID(20001)
	require.NoError(t, err)

	o, err := order.RestoreOrder(orderID, requestID, status,
		[]order.LineItem{{ItemID: itemID, Quantity: quantity}},
		time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		"12 Market Street", "08:00-10:00", "", "Invoice", 1)
	require.NoError(t, err)

	return o
}

func restoreTestItem(t *testing.T, stock int) *item.Item {
	t.Helper()

	itemID, err := kernel.NewItemID(20001)
	require.NoError(t, err)
	it, err := item.RestoreItem(itemID, "Lettuce", 2.50, stock, 1)
	require.NoError(t, err)

	return it
}

func testActor(t *testing.T, id int64, role actor.Role) actor.Actor {
	t.Helper()

	userID, err := kernel.NewUserID(id)
	require.NoError(t, err)
	acting, err := actor.NewActor(userID, role)
	require.NoError(t, err)

	return acting
}

func testRequestID(t *testing.T, id int64) kernel.RequestID {
	t.Helper()

	requestID, err := kernel.NewRequestID(id)
	require.NoError(t, err)
	return requestID
}
