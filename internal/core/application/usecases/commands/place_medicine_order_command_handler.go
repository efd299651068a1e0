package commands

import (
	"context"
	"log/slog"
	"time"

	"medassist/internal/core/domain/model/order"
	"medassist/internal/core/ports"
)

// PlaceMedicineOrderCommandHandler completes a pharmacy checkout.
//
// The order is built before payment so malformed carts are rejected without
// charging. After the simulated payment succeeds the order is stored, the
// patient is notified and an order.placed event is published.
//
// Example:
//
//	handler := NewPlaceMedicineOrderCommandHandler(uowFactory, factory, payments, notifier, publisher, logger)
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrInvalidOrderInput):
//	    // 400
//	case errors.Is(err, ErrPaymentFailed):
//	    // 402
//	}
type PlaceMedicineOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	factory    *order.Factory
	payments   ports.PaymentSimulator
	announcer  orderAnnouncer
}

// NewPlaceMedicineOrderCommandHandler creates a handler for pharmacy checkouts.
// notifier and publisher may be nil.
func NewPlaceMedicineOrderCommandHandler(
	uowFactory OrderUoWFactory,
	factory *order.Factory,
	payments ports.PaymentSimulator,
	notifier OrderNotifier,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) PlaceMedicineOrderCommandHandler {
	return PlaceMedicineOrderCommandHandler{
		uowFactory: uowFactory,
		factory:    factory,
		payments:   payments,
		announcer: orderAnnouncer{
			notifier:  notifier,
			publisher: publisher,
			logger:    componentLogger(logger, "place_medicine_order"),
			now:       time.Now,
		},
	}
}

// Handle builds, pays for and stores the order, then announces it.
func (h PlaceMedicineOrderCommandHandler) Handle(ctx context.Context, cmd PlaceMedicineOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := h.factory.NewMedicineOrder(cmd.ItemNames(), cmd.Total().Amount())
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

func storeNewOrder(ctx context.Context, uowFactory OrderUoWFactory, o *order.Order) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
