package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/alert"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/request"
	"fulfillment/internal/pkg/errs"
)

type setOrderStatusMocks struct {
	requestRepo  *RequestRepoMock
	orderRepo    *OrderRepoMock
	deliveryRepo *DeliveryRepoMock
	alertRepo    *AlertRepoMock
	messageRepo  *MessageRepoMock
	outboxRepo   *OutboxRepoMock
	sequences    *SequencesMock
	uow          *UnitOfWorkMock
	factory      *UoWFactoryMock
}

func newSetOrderStatusMocks() setOrderStatusMocks {
	m := setOrderStatusMocks{
		requestRepo:  new(RequestRepoMock),
		orderRepo:    new(OrderRepoMock),
		deliveryRepo: new(DeliveryRepoMock),
		alertRepo:    new(AlertRepoMock),
		messageRepo:  new(MessageRepoMock),
		outboxRepo:   new(OutboxRepoMock),
		sequences:    new(SequencesMock),
		uow:          new(UnitOfWorkMock),
		factory:      new(UoWFactoryMock),
	}

	m.uow.On("RequestRepository").Return(m.requestRepo).Maybe()
	m.uow.On("OrderRepository").Return(m.orderRepo).Maybe()
	m.uow.On("DeliveryRepository").Return(m.deliveryRepo).Maybe()
	m.uow.On("AlertRepository").Return(m.alertRepo).Maybe()
	m.uow.On("MessageRepository").Return(m.messageRepo).Maybe()
	m.uow.On("OutboxRepository").Return(m.outboxRepo).Maybe()
	m.uow.On("Sequences").Return(m.sequences).Maybe()

	return m
}

func (m setOrderStatusMocks) assertExpectations(t *testing.T) {
	t.Helper()
	m.factory.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.requestRepo.AssertExpectations(t)
	m.orderRepo.AssertExpectations(t)
	m.deliveryRepo.AssertExpectations(t)
	m.alertRepo.AssertExpectations(t)
	m.messageRepo.AssertExpectations(t)
	m.outboxRepo.AssertExpectations(t)
	m.sequences.AssertExpectations(t)
}

func testOrderID(t *testing.T, id int64) kernel.OrderID {
	t.Helper()

	orderID, err := kernel.NewOrderID(id)
	require.NoError(t, err)
	return orderID
}

func TestSetOrderStatusCommandHandler_Handle_CancelEmitsConsolidatedAlert(t *testing.T) {
	ctx := t.Context()
	customer := testActor(t, 10001, actor.Customer)
	cmd, err := commands.NewSetOrderStatusCommand(testOrderID(t, 40010), order.Cancelled, customer, false)
	require.NoError(t, err)

	o := restoreTestOrder(t, 40010, order.WaitingApproval, 5)
	parent := restoreTestRequest(t, 30010, request.Negotiation)

	m := newSetOrderStatusMocks()
	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.orderRepo.On("Get", ctx, cmd.OrderID()).Return(o, nil).Once(),
		m.orderRepo.On("Update", ctx, o).Return(nil).Once(),
		m.requestRepo.On("Get", ctx, parent.ID()).Return(parent, nil).Once(),
		m.alertRepo.On("GetByIdempotencyKey", ctx, cmd.TransitionKey()).
			Return(nil, errs.NewObjectNotFoundError("alert", cmd.TransitionKey().String())).Once(),
		m.sequences.On("Next", ctx, kernel.AlertKind).Return(int64(90001), nil).Once(),
		m.alertRepo.On("Add", ctx, mock.MatchedBy(func(a *alert.Alert) bool {
			return a.Category() == alert.CategoryOrderCancelled && len(a.Orders()) == 1
		})).Return(nil).Once(),
		m.sequences.On("Next", ctx, kernel.MessageKind).Return(int64(70001), nil).Once(),
		m.messageRepo.On("Add", ctx, mock.Anything).Return(nil).Once(),
		m.outboxRepo.On("Add", ctx, mock.Anything).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSetOrderStatusCommandHandler(m.factory)
	batch, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.Equal(t, order.Cancelled, batch[0].Status())
	m.assertExpectations(t)
}

func TestSetOrderStatusCommandHandler_Handle_ApplyToAllCancelsSiblings(t *testing.T) {
	ctx := t.Context()
	customer := testActor(t, 10001, actor.Customer)
	cmd, err := commands.NewSetOrderStatusCommand(testOrderID(t, 40010), order.Cancelled, customer, true)
	require.NoError(t, err)

	root := restoreTestOrder(t, 40010, order.WaitingApproval, 5)
	sibling := restoreTestOrder(t, 40011, order.Preparing, 10)
	parent := restoreTestRequest(t, 30010, request.Negotiation)

	m := newSetOrderStatusMocks()
	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.orderRepo.On("Get", ctx, cmd.OrderID()).Return(root, nil).Once(),
		m.orderRepo.On("GetByRequest", ctx, root.RequestID()).
			Return([]*order.Order{root, sibling}, nil).Once(),
		m.orderRepo.On("Update", ctx, root).Return(nil).Once(),
		m.orderRepo.On("Update", ctx, sibling).Return(nil).Once(),
		m.requestRepo.On("Get", ctx, parent.ID()).Return(parent, nil).Once(),
		m.alertRepo.On("GetByIdempotencyKey", ctx, cmd.TransitionKey()).
			Return(nil, errs.NewObjectNotFoundError("alert", cmd.TransitionKey().String())).Once(),
		m.sequences.On("Next", ctx, kernel.AlertKind).Return(int64(90001), nil).Once(),
		m.alertRepo.On("Add", ctx, mock.MatchedBy(func(a *alert.Alert) bool {
			return len(a.Orders()) == 2
		})).Return(nil).Once(),
		m.sequences.On("Next", ctx, kernel.MessageKind).Return(int64(70001), nil).Once(),
		m.messageRepo.On("Add", ctx, mock.Anything).Return(nil).Once(),
		m.outboxRepo.On("Add", ctx, mock.Anything).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSetOrderStatusCommandHandler(m.factory)
	batch, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, batch, 2)
	assert.Equal(t, order.Cancelled, root.Status())
	assert.Equal(t, order.Cancelled, sibling.Status())
	m.assertExpectations(t)
}

func TestSetOrderStatusCommandHandler_Handle_DispatchedWritesDeliveryRecord(t *testing.T) {
	ctx := t.Context()
	sales := testActor(t, 10002, actor.Sales)
	cmd, err := commands.NewSetOrderStatusCommand(testOrderID(t, 40010), order.Dispatched, sales, false)
	require.NoError(t, err)

	o := restoreTestOrder(t, 40010, order.Preparing, 5)

	m := newSetOrderStatusMocks()
	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.orderRepo.On("Get", ctx, cmd.OrderID()).Return(o, nil).Once(),
		m.orderRepo.On("Update", ctx, o).Return(nil).Once(),
		m.deliveryRepo.On("GetByOrder", ctx, o.ID()).
			Return(nil, errs.NewObjectNotFoundError("delivery", o.ID().String())).Once(),
		m.deliveryRepo.On("Upsert", ctx, mock.MatchedBy(func(record *delivery.Delivery) bool {
			return record.Status() == delivery.Dispatched && record.PaymentStatus() == delivery.Unpaid
		})).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSetOrderStatusCommandHandler(m.factory)
	batch, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Dispatched, batch[0].Status())
	m.assertExpectations(t)
}

func TestSetOrderStatusCommandHandler_Handle_DeliveredSettlesDeliveryRecord(t *testing.T) {
	ctx := t.Context()
	sales := testActor(t, 10002, actor.Sales)
	cmd, err := commands.NewSetOrderStatusCommand(testOrderID(t, 40010), order.Delivered, sales, false)
	require.NoError(t, err)

	o := restoreTestOrder(t, 40010, order.Dispatched, 5)
	parent := restoreTestRequest(t, 30010, request.Negotiation)

	m := newSetOrderStatusMocks()
	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.orderRepo.On("Get", ctx, cmd.OrderID()).Return(o, nil).Once(),
		m.orderRepo.On("Update", ctx, o).Return(nil).Once(),
		m.deliveryRepo.On("GetByOrder", ctx, o.ID()).
			Return(nil, errs.NewObjectNotFoundError("delivery", o.ID().String())).Once(),
		m.deliveryRepo.On("Upsert", ctx, mock.MatchedBy(func(record *delivery.Delivery) bool {
			return record.Status() == delivery.Delivered && record.PaymentStatus() == delivery.Paid
		})).Return(nil).Once(),
		m.requestRepo.On("Get", ctx, parent.ID()).Return(parent, nil).Once(),
		m.requestRepo.On("Update", ctx, parent).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSetOrderStatusCommandHandler(m.factory)
	batch, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, batch[0].Status())
	assert.Equal(t, request.Approved, parent.Status())
	m.assertExpectations(t)
}

func TestSetOrderStatusCommandHandler_Handle_SameStatusIsNoOp(t *testing.T) {
	ctx := t.Context()
	customer := testActor(t, 10001, actor.Customer)
	cmd, err := commands.NewSetOrderStatusCommand(testOrderID(t, 40010), order.Cancelled, customer, false)
	require.NoError(t, err)

	o := restoreTestOrder(t, 40010, order.Cancelled, 5)

	m := newSetOrderStatusMocks()
	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.orderRepo.On("Get", ctx, cmd.OrderID()).Return(o, nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSetOrderStatusCommandHandler(m.factory)
	batch, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, batch, 1)
	m.assertExpectations(t)
}

func TestSetOrderStatusCommandHandler_Handle_CustomerCannotDispatch(t *testing.T) {
	ctx := t.Context()
	customer := testActor(t, 10001, actor.Customer)
	cmd, err := commands.NewSetOrderStatusCommand(testOrderID(t, 40010), order.Dispatched, customer, false)
	require.NoError(t, err)

	o := restoreTestOrder(t, 40010, order.Preparing, 5)

	m := newSetOrderStatusMocks()
	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.orderRepo.On("Get", ctx, cmd.OrderID()).Return(o, nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSetOrderStatusCommandHandler(m.factory)
	_, err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Equal(t, order.Preparing, o.Status())
	m.assertExpectations(t)
}

func TestSetOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	customer := testActor(t, 10001, actor.Customer)
	cmd, err := commands.NewSetOrderStatusCommand(testOrderID(t, 40010), order.Cancelled, customer, false)
	require.NoError(t, err)

	o := restoreTestOrder(t, 40010, order.Dispatched, 5)

	m := newSetOrderStatusMocks()
	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.orderRepo.On("Get", ctx, cmd.OrderID()).Return(o, nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSetOrderStatusCommandHandler(m.factory)
	_, err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Dispatched, o.Status())
	m.assertExpectations(t)
}
