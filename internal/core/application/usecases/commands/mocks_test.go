package commands_test

import (
	"context"
	"io"
	"log/slog"

	"medassist/internal/core/application/usecases/commands"
	"medassist/internal/core/domain/model/chat"
	"medassist/internal/core/domain/model/kernel"
	"medassist/internal/core/domain/model/notification"
	"medassist/internal/core/domain/model/order"
	"medassist/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id order.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, kind order.Kind) ([]*order.Order, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if n := args.Get(0); n != nil {
		return n.(*notification.Notification), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockNotificationRepository) List(ctx context.Context) ([]*notification.Notification, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

type MockNotificationUoW struct{ mock.Mock }

func (m *MockNotificationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

type MockPaymentSimulator struct{ mock.Mock }

func (m *MockPaymentSimulator) Pay(ctx context.Context, req ports.PaymentRequest) (ports.PaymentReceipt, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(ports.PaymentReceipt), args.Error(1)
}

type MockOrderNotifier struct{ mock.Mock }

func (m *MockOrderNotifier) NotifyOrderPlaced(ctx context.Context, o *order.Order) {
	m.Called(ctx, o)
}

func (m *MockOrderNotifier) NotifyOrderAdvanced(ctx context.Context, o *order.Order) {
	m.Called(ctx, o)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockChatTranscript struct{ mock.Mock }

func (m *MockChatTranscript) Append(ctx context.Context, msg *chat.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockChatTranscript) List(ctx context.Context) ([]*chat.Message, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*chat.Message), args.Error(1)
}

type MockChatCompleter struct{ mock.Mock }

func (m *MockChatCompleter) Complete(ctx context.Context, history []*chat.Message, message string) (string, error) {
	args := m.Called(ctx, history, message)
	return args.String(0), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
