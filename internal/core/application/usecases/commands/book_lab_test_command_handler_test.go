package commands_test

import (
	"errors"
	"testing"

	"medassist/internal/core/application/usecases/commands"
	"medassist/internal/core/domain/model/order"
	"medassist/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookLabTestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewBookLabTestCommand("Thyroid Profile", "2024-05-01", decimal.NewFromInt(499), ports.PaymentNetBanking)
	require.NoError(t, err)

	payments := new(MockPaymentSimulator)
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	notifier := new(MockOrderNotifier)
	publisher := new(MockOrderEventPublisher)
	mock.InOrder(
		payments.On("Pay", ctx, mock.MatchedBy(func(req ports.PaymentRequest) bool {
			return req.Method == ports.PaymentNetBanking && req.Amount.String() == "499"
		})).Return(ports.PaymentReceipt{}, nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
		notifier.On("NotifyOrderPlaced", ctx, mock.AnythingOfType("*order.Order")).Return().Once(),
		publisher.On("Publish", ctx, eventOf(ports.OrderPlaced, order.LabelConfirmed)).Return(nil).Once(),
	)

	h := commands.NewBookLabTestCommandHandler(
		factory, order.NewFactory(order.NewRandomIDGenerator()), payments, notifier, publisher, discardLogger(),
	)
	o, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.LabTest, o.Kind())
	assert.Equal(t, "Thyroid Profile", o.Title())
	assert.Equal(t, "Scheduled: 2024-05-01", o.Details())
	assert.False(t, o.HasReport())
	payments.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestBookLabTestCommandHandler_Handle_PaymentError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewBookLabTestCommand("Lipid Profile", "2024-05-03", decimal.NewFromInt(799), ports.PaymentUPI)

	payments := new(MockPaymentSimulator)
	payments.On("Pay", ctx, mock.Anything).Return(ports.PaymentReceipt{}, errors.New("declined")).Once()
	factory := new(MockOrderUoWFactory)

	h := commands.NewBookLabTestCommandHandler(
		factory, order.NewFactory(order.NewRandomIDGenerator()), payments, nil, nil, discardLogger(),
	)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrPaymentFailed)
	factory.AssertNotCalled(t, "Create")
}

func TestBookLabTestCommandHandler_Handle_InvalidCommand(t *testing.T) {
	h := commands.NewBookLabTestCommandHandler(
		new(MockOrderUoWFactory), order.NewFactory(order.NewRandomIDGenerator()), new(MockPaymentSimulator), nil, nil, nil,
	)

	_, err := h.Handle(t.Context(), commands.BookLabTestCommand{})

	require.ErrorIs(t, err, commands.ErrBookLabTestCommandIsNotConstructed)
}
