// Package kafka publishes order events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"medassist/internal/core/ports"

	"github.com/IBM/sarama"
)

// orderEventMessage is the wire format of an order event.
type orderEventMessage struct {
	Type    string    `json:"type"`
	OrderID string    `json:"orderId"`
	Kind    string    `json:"kind"`
	Status  string    `json:"status"`
	Amount  string    `json:"amount"`
	At      time.Time `json:"at"`
}

// OrderEventPublisher sends each event synchronously, keyed by order id so
// the events of one order stay in one partition.
type OrderEventPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewOrderEventPublisher connects a sync producer to brokers.
func NewOrderEventPublisher(brokers []string, topic string, logger *slog.Logger) (*OrderEventPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return NewOrderEventPublisherWithProducer(producer, topic, logger), nil
}

// NewOrderEventPublisherWithProducer wraps an existing producer.
func NewOrderEventPublisherWithProducer(producer sarama.SyncProducer, topic string, logger *slog.Logger) *OrderEventPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderEventPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka_order_events", "topic", topic),
	}
}

// Publish implements ports.OrderEventPublisher.
func (p *OrderEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(orderEventMessage{
		Type:    string(event.Type),
		OrderID: event.OrderID.String(),
		Kind:    event.Kind.String(),
		Status:  event.Status,
		Amount:  event.Amount,
		At:      event.At.UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode order event: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID.String()),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("send order event %s: %w", event.OrderID, err)
	}

	p.logger.DebugContext(ctx, "order event published",
		"type", string(event.Type),
		"order_id", event.OrderID.String(),
		"partition", partition,
		"offset", offset,
	)
	return nil
}

// Close flushes and closes the producer.
func (p *OrderEventPublisher) Close() error {
	return p.producer.Close()
}

// NopOrderEventPublisher drops every event. It stands in when Kafka is not configured.
type NopOrderEventPublisher struct{}

// Publish implements ports.OrderEventPublisher.
func (NopOrderEventPublisher) Publish(context.Context, ports.OrderEvent) error {
	return nil
}
