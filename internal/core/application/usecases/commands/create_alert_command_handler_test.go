package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/alert"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/request"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

type createAlertMocks struct {
	requestRepo *RequestRepoMock
	orderRepo   *OrderRepoMock
	alertRepo   *AlertRepoMock
	messageRepo *MessageRepoMock
	outboxRepo  *OutboxRepoMock
	sequences   *SequencesMock
	uow         *UnitOfWorkMock
	factory     *UoWFactoryMock
	directory   *UserDirectoryMock
}

func newCreateAlertMocks() createAlertMocks {
	m := createAlertMocks{
		requestRepo: new(RequestRepoMock),
		orderRepo:   new(OrderRepoMock),
		alertRepo:   new(AlertRepoMock),
		messageRepo: new(MessageRepoMock),
		outboxRepo:  new(OutboxRepoMock),
		sequences:   new(SequencesMock),
		uow:         new(UnitOfWorkMock),
		factory:     new(UoWFactoryMock),
		directory:   new(UserDirectoryMock),
	}

	m.uow.On("RequestRepository").Return(m.requestRepo).Maybe()
	m.uow.On("OrderRepository").Return(m.orderRepo).Maybe()
	m.uow.On("AlertRepository").Return(m.alertRepo).Maybe()
	m.uow.On("MessageRepository").Return(m.messageRepo).Maybe()
	m.uow.On("OutboxRepository").Return(m.outboxRepo).Maybe()
	m.uow.On("Sequences").Return(m.sequences).Maybe()

	return m
}

func (m createAlertMocks) assertExpectations(t *testing.T) {
	t.Helper()
	m.factory.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.directory.AssertExpectations(t)
	m.requestRepo.AssertExpectations(t)
	m.orderRepo.AssertExpectations(t)
	m.alertRepo.AssertExpectations(t)
	m.messageRepo.AssertExpectations(t)
	m.outboxRepo.AssertExpectations(t)
	m.sequences.AssertExpectations(t)
}

func newCreateAlertCommand(t *testing.T, orderIDs []int64, cancelOrders, cancelRequest bool) commands.CreateAlertCommand {
	t.Helper()

	ids := make([]kernel.OrderID, 0, len(orderIDs))
	for _, raw := range orderIDs {
		id, err := kernel.NewOrderID(raw)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	createdBy, err := kernel.NewUserID(10002)
	require.NoError(t, err)

	cmd, err := commands.NewCreateAlertCommand(
		"Truck Breakdown", "delivery truck broke down on route", ids, createdBy,
		cancelOrders, cancelRequest)
	require.NoError(t, err)

	return cmd
}

func salesProfile(t *testing.T) ports.UserProfile {
	t.Helper()

	id, err := kernel.NewUserID(10002)
	require.NoError(t, err)
	return ports.UserProfile{ID: id, Name: "Dana", Role: actor.Sales}
}

func TestCreateAlertCommandHandler_Handle_EmitWithoutCascade(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateAlertCommand(t, []int64{40010}, false, false)

	implicated := restoreTestOrder(t, 40010, order.Preparing, 5)
	parent := restoreTestRequest(t, 30010, request.Approved)

	m := newCreateAlertMocks()
	m.directory.On("Resolve", ctx, cmd.CreatedBy()).Return(salesProfile(t), nil).Once()
	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.orderRepo.On("Get", ctx, implicated.ID()).Return(implicated, nil).Once(),
		m.requestRepo.On("Get", ctx, parent.ID()).Return(parent, nil).Once(),
		m.alertRepo.On("GetByIdempotencyKey", ctx, cmd.TransitionKey()).
			Return(nil, errs.NewObjectNotFoundError("alert", cmd.TransitionKey().String())).Once(),
		m.sequences.On("Next", ctx, kernel.AlertKind).Return(int64(90001), nil).Once(),
		m.alertRepo.On("Add", ctx, mock.MatchedBy(func(a *alert.Alert) bool {
			return a.Category() == alert.Category("Truck Breakdown") && len(a.Orders()) == 1
		})).Return(nil).Once(),
		m.sequences.On("Next", ctx, kernel.MessageKind).Return(int64(70001), nil).Once(),
		m.messageRepo.On("Add", ctx, mock.Anything).Return(nil).Once(),
		m.outboxRepo.On("Add", ctx, mock.Anything).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateAlertCommandHandler(m.factory, m.directory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(90001), created.ID().Int64())
	assert.Equal(t, order.Preparing, implicated.Status())
	m.assertExpectations(t)
}

func TestCreateAlertCommandHandler_Handle_CancelImplicatedOrders(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateAlertCommand(t, []int64{40010, 40011}, true, false)

	first := restoreTestOrder(t, 40010, order.WaitingApproval, 5)
	second := restoreTestOrder(t, 40011, order.Preparing, 10)
	parent := restoreTestRequest(t, 30010, request.Approved)

	m := newCreateAlertMocks()
	m.directory.On("Resolve", ctx, cmd.CreatedBy()).Return(salesProfile(t), nil).Once()
	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.orderRepo.On("Get", ctx, first.ID()).Return(first, nil).Once(),
		m.orderRepo.On("Get", ctx, second.ID()).Return(second, nil).Once(),
		m.requestRepo.On("Get", ctx, parent.ID()).Return(parent, nil).Once(),
		m.orderRepo.On("Update", ctx, first).Return(nil).Once(),
		m.orderRepo.On("Update", ctx, second).Return(nil).Once(),
		m.alertRepo.On("GetByIdempotencyKey", ctx, cmd.TransitionKey()).
			Return(nil, errs.NewObjectNotFoundError("alert", cmd.TransitionKey().String())).Once(),
		m.sequences.On("Next", ctx, kernel.AlertKind).Return(int64(90001), nil).Once(),
		m.alertRepo.On("Add", ctx, mock.Anything).Return(nil).Once(),
		m.sequences.On("Next", ctx, kernel.MessageKind).Return(int64(70001), nil).Once(),
		m.messageRepo.On("Add", ctx, mock.Anything).Return(nil).Once(),
		m.outboxRepo.On("Add", ctx, mock.Anything).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateAlertCommandHandler(m.factory, m.directory)
	_, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, first.Status())
	assert.Equal(t, order.Cancelled, second.Status())
	assert.Equal(t, request.Approved, parent.Status())
	m.assertExpectations(t)
}

func TestCreateAlertCommandHandler_Handle_CancelRequestCancelsAllSiblings(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateAlertCommand(t, []int64{40010}, false, true)

	implicated := restoreTestOrder(t, 40010, order.WaitingApproval, 5)
	sibling := restoreTestOrder(t, 40011, order.Preparing, 10)
	parent := restoreTestRequest(t, 30010, request.Approved)

	m := newCreateAlertMocks()
	m.directory.On("Resolve", ctx, cmd.CreatedBy()).Return(salesProfile(t), nil).Once()
	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.orderRepo.On("Get", ctx, implicated.ID()).Return(implicated, nil).Once(),
		m.requestRepo.On("Get", ctx, parent.ID()).Return(parent, nil).Once(),
		m.orderRepo.On("GetByRequest", ctx, parent.ID()).
			Return([]*order.Order{implicated, sibling}, nil).Once(),
		m.requestRepo.On("Update", ctx, parent).Return(nil).Once(),
		m.orderRepo.On("Update", ctx, implicated).Return(nil).Once(),
		m.orderRepo.On("Update", ctx, sibling).Return(nil).Once(),
		m.alertRepo.On("GetByIdempotencyKey", ctx, cmd.TransitionKey()).
			Return(nil, errs.NewObjectNotFoundError("alert", cmd.TransitionKey().String())).Once(),
		m.sequences.On("Next", ctx, kernel.AlertKind).Return(int64(90001), nil).Once(),
		m.alertRepo.On("Add", ctx, mock.Anything).Return(nil).Once(),
		m.sequences.On("Next", ctx, kernel.MessageKind).Return(int64(70001), nil).Once(),
		m.messageRepo.On("Add", ctx, mock.Anything).Return(nil).Once(),
		m.outboxRepo.On("Add", ctx, mock.Anything).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateAlertCommandHandler(m.factory, m.directory)
	_, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, request.Cancelled, parent.Status())
	assert.Equal(t, order.Cancelled, implicated.Status())
	assert.Equal(t, order.Cancelled, sibling.Status())
	m.assertExpectations(t)
}

func TestCreateAlertCommandHandler_Handle_DispatchedSiblingBlocksRequestCancellation(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateAlertCommand(t, []int64{40010}, false, true)

	implicated := restoreTestOrder(t, 40010, order.WaitingApproval, 5)
	dispatched := restoreTestOrder(t, 40011, order.Dispatched, 10)
	parent := restoreTestRequest(t, 30010, request.Approved)

	m := newCreateAlertMocks()
	m.directory.On("Resolve", ctx, cmd.CreatedBy()).Return(salesProfile(t), nil).Once()
	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.orderRepo.On("Get", ctx, implicated.ID()).Return(implicated, nil).Once(),
		m.requestRepo.On("Get", ctx, parent.ID()).Return(parent, nil).Once(),
		m.orderRepo.On("GetByRequest", ctx, parent.ID()).
			Return([]*order.Order{implicated, dispatched}, nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateAlertCommandHandler(m.factory, m.directory)
	_, err := handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, request.Approved, parent.Status())
	m.assertExpectations(t)
}

func TestCreateAlertCommandHandler_Handle_DirectoryError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateAlertCommand(t, []int64{40010}, false, false)

	m := newCreateAlertMocks()
	m.directory.On("Resolve", ctx, cmd.CreatedBy()).
		Return(ports.UserProfile{}, errors.New("directory unavailable")).Once()

	handler := commands.NewCreateAlertCommandHandler(m.factory, m.directory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory unavailable")
	m.directory.AssertExpectations(t)
	m.factory.AssertExpectations(t)
}
