package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"medassist/internal/core/domain/model/chat"
	"medassist/internal/core/domain/model/notification"
	"medassist/internal/core/domain/model/order"
)

// NotificationSink receives notifications raised by the notifier.
type NotificationSink interface {
	Add(ctx context.Context, n *notification.Notification) error
}

// TranscriptSink receives chat messages raised by the notifier.
type TranscriptSink interface {
	Append(ctx context.Context, m *chat.Message) error
}

// OrderNotifier is a domain service that tells the patient about order
// activity. Each announcement is fire-and-forget: a missing sink is skipped
// and a failing sink is logged, so the order flow never fails because of it.
//
// Example usage:
//
//	notifier := services.NewOrderNotifier(notifications, transcript, logger)
//	o, _ := factory.NewMedicineOrder([]string{"Paracetamol"}, decimal.NewFromInt(30))
//	notifier.NotifyOrderPlaced(ctx, o)
type OrderNotifier struct {
	notifications NotificationSink
	transcript    TranscriptSink
	logger        *slog.Logger
	now           func() time.Time
}

// OrderNotifierOption customizes an OrderNotifier.
type OrderNotifierOption func(*OrderNotifier)

// WithNotifierClock replaces time.Now as the source of creation times.
func WithNotifierClock(now func() time.Time) OrderNotifierOption {
	return func(n *OrderNotifier) {
		n.now = now
	}
}

// NewOrderNotifier creates an OrderNotifier. Either sink may be nil.
func NewOrderNotifier(
	notifications NotificationSink,
	transcript TranscriptSink,
	logger *slog.Logger,
	opts ...OrderNotifierOption,
) *OrderNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	n := &OrderNotifier{
		notifications: notifications,
		transcript:    transcript,
		logger:        logger.With("component", "order_notifier"),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NotifyOrderPlaced raises one "order" notification and one bot chat message
// carrying the order number, the amount paid and where to track the order.
func (n *OrderNotifier) NotifyOrderPlaced(ctx context.Context, o *order.Order) {
	if err := o.Validate(); err != nil {
		n.logger.ErrorContext(ctx, "skipping notification for invalid order", "error", err)
		return
	}

	var title, message, reply string
	amount := o.Amount().Format()
	switch o.Kind() {
	case order.LabTest:
		title = "Lab Test Booked"
		message = fmt.Sprintf("%s booking #%s confirmed for %s.", o.Title(), o.ID(), amount)
		reply = fmt.Sprintf(
			"Your %s test is booked! Booking #%s for %s is confirmed (%s). You can track it in the Orders tab.",
			o.Title(), o.ID(), amount, o.Details(),
		)
	default:
		title = "Order Placed"
		message = fmt.Sprintf("Order #%s for %s has been placed successfully.", o.ID(), amount)
		reply = fmt.Sprintf(
			"Your medicine order #%s for %s has been placed. You can track it in the Orders tab.",
			o.ID(), amount,
		)
	}

	n.notify(ctx, title, message)
	n.say(ctx, reply)
}

// NotifyOrderAdvanced raises one "order" notification with the new status.
func (n *OrderNotifier) NotifyOrderAdvanced(ctx context.Context, o *order.Order) {
	if err := o.Validate(); err != nil {
		n.logger.ErrorContext(ctx, "skipping notification for invalid order", "error", err)
		return
	}

	n.notify(ctx,
		fmt.Sprintf("%s Update", o.Kind().Title()),
		fmt.Sprintf("Order #%s is now %s.", o.ID(), o.Status()),
	)
}

func (n *OrderNotifier) notify(ctx context.Context, title, message string) {
	if n.notifications == nil {
		return
	}
	item, err := notification.NewNotification(notification.KindOrder, title, message, n.now())
	if err != nil {
		n.logger.ErrorContext(ctx, "failed to build notification", "error", err)
		return
	}
	if err = n.notifications.Add(ctx, item); err != nil {
		n.logger.ErrorContext(ctx, "failed to store notification", "error", err)
	}
}

func (n *OrderNotifier) say(ctx context.Context, text string) {
	if n.transcript == nil {
		return
	}
	msg, err := chat.NewMessage(chat.SenderBot, text, n.now())
	if err != nil {
		n.logger.ErrorContext(ctx, "failed to build chat message", "error", err)
		return
	}
	if err = n.transcript.Append(ctx, msg); err != nil {
		n.logger.ErrorContext(ctx, "failed to append chat message", "error", err)
	}
}
