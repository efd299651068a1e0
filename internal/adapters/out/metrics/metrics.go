// Package metrics exposes Prometheus counters for orders and HTTP traffic.
package metrics

import (
	"context"
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"medassist/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "medassist"

// Metrics owns a private registry so tests and several servers do not clash
// on the global one.
type Metrics struct {
	registry *prometheus.Registry

	orderEvents     *prometheus.CounterVec
	orderRevenue    *prometheus.CounterVec
	publishFailures *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New registers every collector, plus the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		orderEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "order_events_total",
				Help:      "Order events by type, kind and resulting status",
			},
			[]string{"type", "kind", "status"},
		),
		orderRevenue: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "order_amount_rupees_total",
				Help:      "Sum of amounts of placed orders in rupees",
			},
			[]string{"kind"},
		),
		publishFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "order_event_publish_failures_total",
				Help:      "Order events the downstream publisher failed to deliver",
			},
			[]string{"type"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status_code"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.orderEvents,
		m.orderRevenue,
		m.publishFailures,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RegisterDB exports the connection pool statistics of db.
func (m *Metrics) RegisterDB(db *sql.DB, name string) error {
	return m.registry.Register(collectors.NewDBStatsCollector(db, name))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one finished HTTP request. route is the matched
// route pattern, not the raw path, to keep cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordingPublisher counts every order event and hands it on to next.
type RecordingPublisher struct {
	metrics *Metrics
	next    ports.OrderEventPublisher
}

// NewRecordingPublisher decorates next. A nil next only records.
func NewRecordingPublisher(m *Metrics, next ports.OrderEventPublisher) *RecordingPublisher {
	return &RecordingPublisher{metrics: m, next: next}
}

// Publish implements ports.OrderEventPublisher.
func (p *RecordingPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	kind := event.Kind.String()
	p.metrics.orderEvents.WithLabelValues(string(event.Type), kind, event.Status).Inc()
	if event.Type == ports.OrderPlaced {
		if amount, err := strconv.ParseFloat(event.Amount, 64); err == nil {
			p.metrics.orderRevenue.WithLabelValues(kind).Add(amount)
		}
	}

	if p.next == nil {
		return nil
	}
	if err := p.next.Publish(ctx, event); err != nil {
		p.metrics.publishFailures.WithLabelValues(string(event.Type)).Inc()
		return err
	}
	return nil
}
