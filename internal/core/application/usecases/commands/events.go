package commands

import (
	"context"
	"log/slog"
	"time"

	"medassist/internal/core/domain/model/order"
	"medassist/internal/core/ports"
)

// orderAnnouncer notifies the patient and publishes the integration event
// once an order change is committed. Neither step can fail the command.
type orderAnnouncer struct {
	notifier  OrderNotifier
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func (a orderAnnouncer) placed(ctx context.Context, o *order.Order) {
	if a.notifier != nil {
		a.notifier.NotifyOrderPlaced(ctx, o)
	}
	a.publish(ctx, ports.NewOrderEvent(ports.OrderPlaced, o, a.now()))
}

func (a orderAnnouncer) advanced(ctx context.Context, o *order.Order) {
	if a.notifier != nil {
		a.notifier.NotifyOrderAdvanced(ctx, o)
	}
	a.publish(ctx, ports.NewOrderEvent(ports.OrderAdvanced, o, a.now()))
}

func (a orderAnnouncer) publish(ctx context.Context, event ports.OrderEvent) {
	if a.publisher == nil {
		return
	}
	if err := a.publisher.Publish(ctx, event); err != nil {
		a.logger.ErrorContext(ctx, "failed to publish order event",
			"type", event.Type,
			"order_id", event.OrderID.String(),
			"error", err,
		)
	}
}

func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("component", component)
}
