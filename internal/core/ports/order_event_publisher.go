package ports

import (
	"context"
	"time"

	"medassist/internal/core/domain/model/order"
)

// OrderEventType names what happened to an order.
type OrderEventType string

const (
	OrderPlaced   OrderEventType = "order.placed"
	OrderAdvanced OrderEventType = "order.advanced"
)

// OrderEvent is the integration event emitted after an order change is committed.
type OrderEvent struct {
	Type    OrderEventType
	OrderID order.ID
	Kind    order.Kind
	Status  string
	Amount  string
	At      time.Time
}

// NewOrderEvent snapshots the order into an event.
func NewOrderEvent(eventType OrderEventType, o *order.Order, at time.Time) OrderEvent {
	return OrderEvent{
		Type:    eventType,
		OrderID: o.ID(),
		Kind:    o.Kind(),
		Status:  o.Status(),
		Amount:  o.Amount().String(),
		At:      at,
	}
}

// OrderEventPublisher delivers order events to other services.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}
