package shared

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles Prometheus collectors for the bot.
type Metrics struct {
	Registry           *prometheus.Registry
	CommandsTotal      *prometheus.CounterVec
	CatalogRequests    prometheus.Counter
	CatalogDuration    prometheus.Histogram
	PagerSessionsTotal prometheus.Counter
	RepliesTotal       prometheus.Counter
	ErrorsTotal        *prometheus.CounterVec
}

// NewMetrics constructs and registers all metrics on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	commands := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "libbot_commands_total",
			Help: "Total commands handled, by verb.",
		},
		[]string{"verb"},
	)
	catalogRequests := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "libbot_catalog_requests_total",
			Help: "Total search requests issued to the book catalog API.",
		},
	)
	catalogDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "libbot_catalog_request_duration_seconds",
			Help:    "Latency of book catalog API requests.",
			Buckets: prometheus.DefBuckets,
		},
	)
	pagerSessions := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "libbot_pager_sessions_total",
			Help: "Total result pager sessions started.",
		},
	)
	replies := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "libbot_replies_total",
			Help: "Total replies sent back to the chat channel.",
		},
	)
	errorsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "libbot_errors_total",
			Help: "Total handler errors by type.",
		},
		[]string{"error_type"},
	)

	registry.MustRegister(commands, catalogRequests, catalogDuration, pagerSessions, replies, errorsTotal)

	return &Metrics{
		Registry:           registry,
		CommandsTotal:      commands,
		CatalogRequests:    catalogRequests,
		CatalogDuration:    catalogDuration,
		PagerSessionsTotal: pagerSessions,
		RepliesTotal:       replies,
		ErrorsTotal:        errorsTotal,
	}
}

// IncCommand increments the command counter for a verb.
func (m *Metrics) IncCommand(verb string) {
	if m == nil {
		return
	}
	m.CommandsTotal.WithLabelValues(verb).Inc()
}

// IncCatalogRequest increments the catalog request counter.
func (m *Metrics) IncCatalogRequest() {
	if m == nil {
		return
	}
	m.CatalogRequests.Inc()
}

// ObserveCatalogDuration records a catalog request duration.
func (m *Metrics) ObserveCatalogDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.CatalogDuration.Observe(d.Seconds())
}

// IncPagerSession increments the pager session counter.
func (m *Metrics) IncPagerSession() {
	if m == nil {
		return
	}
	m.PagerSessionsTotal.Inc()
}

// IncReply increments the reply counter.
func (m *Metrics) IncReply() {
	if m == nil {
		return
	}
	m.RepliesTotal.Inc()
}

// IncError increments the error counter for a type label.
func (m *Metrics) IncError(errorType string) {
	if m == nil {
		return
	}
	m.ErrorsTotal.WithLabelValues(errorType).Inc()
}
