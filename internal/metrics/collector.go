// Package metrics exposes Prometheus instrumentation for the price store and rate loader.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/davidbz/pricewise/internal/domain"
)

const namespace = "pricewise"

// Collector owns a private registry and the application metrics registered on it.
type Collector struct {
	registry *prometheus.Registry

	storeOps            *prometheus.CounterVec
	storeDuration       *prometheus.HistogramVec
	activeSubscriptions prometheus.Gauge
	eventsDelivered     *prometheus.CounterVec
	rateSource          *prometheus.GaugeVec
	currencies          prometheus.Gauge
}

// NewCollector creates the collector with Go and process metrics included.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		storeOps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "store_operations_total",
				Help:      "Total number of price store operations",
			},
			[]string{"op", "status"},
		),
		storeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "store_operation_duration_seconds",
				Help:      "Duration of price store operations",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"op"},
		),
		activeSubscriptions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "active_subscriptions",
				Help:      "Number of open insert subscriptions",
			},
		),
		eventsDelivered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_delivered_total",
				Help:      "Total number of insert events delivered to subscribers",
			},
			[]string{"kind"},
		),
		rateSource: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "exchange_rate_source",
				Help:      "Set to 1 for the source of the loaded exchange rates",
			},
			[]string{"source"},
		),
		currencies: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "exchange_rate_currencies",
				Help:      "Number of currencies known to the loaded exchange rates",
			},
		),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.storeOps,
		c.storeDuration,
		c.activeSubscriptions,
		c.eventsDelivered,
		c.rateSource,
		c.currencies,
	)

	return c
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveStoreOp records one store call.
func (c *Collector) ObserveStoreOp(op string, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.storeOps.WithLabelValues(op, status).Inc()
	c.storeDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}

// RecordRateLoad implements rates.Recorder.
func (c *Collector) RecordRateLoad(source domain.RateSource, currencies int) {
	c.rateSource.Reset()
	c.rateSource.WithLabelValues(string(source)).Set(1)
	c.currencies.Set(float64(currencies))
}

// StoreOps returns the operation counter for op and status.
func (c *Collector) StoreOps(op, status string) prometheus.Counter {
	return c.storeOps.WithLabelValues(op, status)
}

// ActiveSubscriptions returns the open subscription gauge.
func (c *Collector) ActiveSubscriptions() prometheus.Gauge {
	return c.activeSubscriptions
}

// EventsDelivered returns the delivered event counter for kind.
func (c *Collector) EventsDelivered(kind domain.EventKind) prometheus.Counter {
	return c.eventsDelivered.WithLabelValues(string(kind))
}
