package commands

import (
	"context"
	"log/slog"
	"time"

	"medassist/internal/core/domain/model/order"
	"medassist/internal/core/ports"
)

// BookLabTestCommandHandler completes a lab test checkout the same way
// PlaceMedicineOrderCommandHandler completes a pharmacy one.
type BookLabTestCommandHandler struct {
	uowFactory OrderUoWFactory
	factory    *order.Factory
	payments   ports.PaymentSimulator
	announcer  orderAnnouncer
}

// NewBookLabTestCommandHandler creates a handler for lab test bookings.
// notifier and publisher may be nil.
func NewBookLabTestCommandHandler(
	uowFactory OrderUoWFactory,
	factory *order.Factory,
	payments ports.PaymentSimulator,
	notifier OrderNotifier,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) BookLabTestCommandHandler {
	return BookLabTestCommandHandler{
		uowFactory: uowFactory,
		factory:    factory,
		payments:   payments,
		announcer: orderAnnouncer{
			notifier:  notifier,
			publisher: publisher,
			logger:    componentLogger(logger, "book_lab_test"),
			now:       time.Now,
		},
	}
}

// Handle builds, pays for and stores the booking, then announces it.
func (h BookLabTestCommandHandler) Handle(ctx context.Context, cmd BookLabTestCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := h.factory.NewLabTestBooking(cmd.TestName(), cmd.ScheduledDate(), cmd.Price().Amount())
	if err != nil {
		return nil, err
	}

	if _, err = pay(ctx, h.payments, o.Amount(), cmd.PaymentMethod()); err != nil {
		return nil, err
	}

	if err = storeNewOrder(ctx, h.uowFactory, o); err != nil {
		return nil, err
	}

	h.announcer.placed(ctx, o)
	return o, nil
}
