// Package metrics exposes booking lifecycle counters to Prometheus.
package metrics

import (
	"net/http"
	"strconv"

	"washapp/internal/domain/entity"
	"washapp/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "washapp"

// Metrics owns a private registry so tests can build as many instances as they like.
type Metrics struct {
	registry *prometheus.Registry

	bookingCreated     prometheus.Counter
	bookingTransitions *prometheus.CounterVec
	reviewSubmitted    *prometheus.CounterVec
}

var _ service.BookingMetrics = (*Metrics)(nil)

// New registers the booking collectors plus the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		bookingCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_created_total",
			Help:      "Count of bookings created.",
		}),
		bookingTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_transition_total",
			Help:      "Count of committed booking status transitions.",
		}, []string{"from", "to"}),
		reviewSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "review_submitted_total",
			Help:      "Count of review submissions by rating.",
		}, []string{"rating"}),
	}

	m.registry.MustRegister(
		m.bookingCreated,
		m.bookingTransitions,
		m.reviewSubmitted,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// NewBookingMetrics adapts Metrics to the domain interface for fx.
func NewBookingMetrics(m *Metrics) service.BookingMetrics {
	return m
}

func (m *Metrics) BookingCreated() {
	m.bookingCreated.Inc()
}

func (m *Metrics) BookingTransitioned(from, to entity.BookingStatus) {
	m.bookingTransitions.WithLabelValues(from.String(), to.String()).Inc()
}

func (m *Metrics) ReviewSubmitted(rating int) {
	m.reviewSubmitted.WithLabelValues(strconv.Itoa(rating)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
