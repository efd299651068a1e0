package commands

import (
	"context"
	"log/slog"
	"time"

	"medassist/internal/core/domain/model/order"
	"medassist/internal/core/ports"
)

// StepTimestampLayout formats the time a step is reached, e.g. "01 May, 09:30 AM".
const StepTimestampLayout = "02 Jan, 03:04 PM"

// AdvanceOrderStepCommandHandler completes the next pending step of an order.
//
// Returns errs.ErrObjectNotFound for an unknown order and
// order.ErrOrderIsCompleted when every step is already reached.
//
// Example:
//
//	cmd, _ := NewAdvanceOrderStepCommand("4821")
//	o, err := handler.Handle(ctx, cmd)
//	if err == nil {
//	    fmt.Println(o.Status()) // "Shipped"
//	}
type AdvanceOrderStepCommandHandler struct {
	uowFactory OrderUoWFactory
	announcer  orderAnnouncer
}

// AdvanceOrderStepOption customizes an AdvanceOrderStepCommandHandler.
type AdvanceOrderStepOption func(*AdvanceOrderStepCommandHandler)

// WithStepClock replaces time.Now as the source of step timestamps.
func WithStepClock(now func() time.Time) AdvanceOrderStepOption {
	return func(h *AdvanceOrderStepCommandHandler) {
		h.announcer.now = now
	}
}

// NewAdvanceOrderStepCommandHandler creates a handler for step advancement.
// notifier and publisher may be nil.
func NewAdvanceOrderStepCommandHandler(
	uowFactory OrderUoWFactory,
	notifier OrderNotifier,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
	opts ...AdvanceOrderStepOption,
) AdvanceOrderStepCommandHandler {
	h := AdvanceOrderStepCommandHandler{
		uowFactory: uowFactory,
		announcer: orderAnnouncer{
			notifier:  notifier,
			publisher: publisher,
			logger:    componentLogger(logger, "advance_order_step"),
			now:       time.Now,
		},
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

// Handle advances the order inside a transaction, then announces the new status.
func (h AdvanceOrderStepCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStepCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := h.advanceStored(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	h.announcer.advanced(ctx, o)
	return o, nil
}

// advanceStored releases the unit of work before the caller announces the change.
func (h AdvanceOrderStepCommandHandler) advanceStored(ctx context.Context, id order.ID) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = o.AdvanceStep(h.announcer.now().Format(StepTimestampLayout)); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return o, nil
}
