package commands_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/alert"
	"fulfillment/internal/core/domain/model/chat"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/item"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/procurement"
	"fulfillment/internal/core/domain/model/request"
	"fulfillment/internal/core/ports"
)

type RequestRepoMock struct{ mock.Mock }

func (m *RequestRepoMock) Add(ctx context.Context, aggregate *request.Request) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *RequestRepoMock) Update(ctx context.Context, aggregate *request.Request) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *RequestRepoMock) Get(ctx context.Context, id kernel.RequestID) (*request.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.Request), args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *OrderRepoMock) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *OrderRepoMock) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *OrderRepoMock) GetByRequest(ctx context.Context, requestID kernel.RequestID) ([]*order.Order, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *OrderRepoMock) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type DeliveryRepoMock struct{ mock.Mock }

func (m *DeliveryRepoMock) Upsert(ctx context.Context, record *delivery.Delivery) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *DeliveryRepoMock) GetByOrder(ctx context.Context, orderID kernel.OrderID) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

type ProcurementRepoMock struct{ mock.Mock }

func (m *ProcurementRepoMock) Add(ctx context.Context, aggregate *procurement.Procurement) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *ProcurementRepoMock) Update(ctx context.Context, aggregate *procurement.Procurement) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *ProcurementRepoMock) Get(ctx context.Context, id kernel.ProcurementID) (*procurement.Procurement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.Procurement), args.Error(1)
}

type AlertRepoMock struct{ mock.Mock }

func (m *AlertRepoMock) Add(ctx context.Context, aggregate *alert.Alert) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *AlertRepoMock) Get(ctx context.Context, id kernel.AlertID) (*alert.Alert, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*alert.Alert), args.Error(1)
}

func (m *AlertRepoMock) Delete(ctx context.Context, id kernel.AlertID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *AlertRepoMock) GetByIdempotencyKey(ctx context.Context, key uuid.UUID) (*alert.Alert, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*alert.Alert), args.Error(1)
}

type MessageRepoMock struct{ mock.Mock }

func (m *MessageRepoMock) Add(ctx context.Context, aggregate *chat.Message) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MessageRepoMock) GetByRequest(ctx context.Context, requestID kernel.RequestID) ([]*chat.Message, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*chat.Message), args.Error(1)
}

type ItemRepoMock struct{ mock.Mock }

func (m *ItemRepoMock) Get(ctx context.Context, id kernel.ItemID) (*item.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

func (m *ItemRepoMock) GetByName(ctx context.Context, name string) (*item.Item, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

func (m *ItemRepoMock) Update(ctx context.Context, aggregate *item.Item) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type OutboxRepoMock struct{ mock.Mock }

func (m *OutboxRepoMock) Add(ctx context.Context, entry ports.OutboxEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *OutboxRepoMock) GetPending(ctx context.Context, limit int) ([]ports.OutboxEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OutboxEntry), args.Error(1)
}

func (m *OutboxRepoMock) MarkPublished(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *OutboxRepoMock) MarkFailed(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type SequencesMock struct{ mock.Mock }

func (m *SequencesMock) Next(ctx context.Context, kind kernel.EntityKind) (int64, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).(int64), args.Error(1)
}

// UnitOfWorkMock satisfies commands.UoW. Repository accessors are registered
// without ordering: handlers re-resolve them freely inside one transaction.
type UnitOfWorkMock struct{ mock.Mock }

func (m *UnitOfWorkMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *UnitOfWorkMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *UnitOfWorkMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *UnitOfWorkMock) RequestRepository() ports.RequestRepository {
	return m.Called().Get(0).(ports.RequestRepository)
}

func (m *UnitOfWorkMock) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *UnitOfWorkMock) DeliveryRepository() ports.DeliveryRepository {
	return m.Called().Get(0).(ports.DeliveryRepository)
}

func (m *UnitOfWorkMock) ProcurementRepository() ports.ProcurementRepository {
	return m.Called().Get(0).(ports.ProcurementRepository)
}

func (m *UnitOfWorkMock) AlertRepository() ports.AlertRepository {
	return m.Called().Get(0).(ports.AlertRepository)
}

func (m *UnitOfWorkMock) MessageRepository() ports.MessageRepository {
	return m.Called().Get(0).(ports.MessageRepository)
}

func (m *UnitOfWorkMock) ItemRepository() ports.ItemRepository {
	return m.Called().Get(0).(ports.ItemRepository)
}

func (m *UnitOfWorkMock) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

func (m *UnitOfWorkMock) Sequences() ports.IdentifierAllocator {
	return m.Called().Get(0).(ports.IdentifierAllocator)
}

type UoWFactoryMock struct{ mock.Mock }

func (m *UoWFactoryMock) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type UserDirectoryMock struct{ mock.Mock }

func (m *UserDirectoryMock) Resolve(ctx context.Context, id kernel.UserID) (ports.UserProfile, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.UserProfile), args.Error(1)
}

type NotificationPublisherMock struct{ mock.Mock }

func (m *NotificationPublisherMock) Publish(ctx context.Context, notification ports.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}
