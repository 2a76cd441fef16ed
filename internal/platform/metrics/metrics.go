package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
// Methods are nil-safe so wiring metrics stays optional in tests.
type Metrics struct {
	ListsCreated prometheus.Counter
	ItemsCreated prometheus.Counter

	// HTTP request latency by route pattern, method, and status class
	RequestLatency *prometheus.HistogramVec

	// Store operation latency by operation name
	StoreLatency *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		ListsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "checklist_lists_created_total",
			Help: "Total number of to-do lists created",
		}),
		ItemsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "checklist_items_created_total",
			Help: "Total number of to-do items created",
		}),
		RequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "checklist_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route, method, and status",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"route", "method", "status"}),
		StoreLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "checklist_store_operation_duration_seconds",
			Help:    "Duration of storage adapter operations",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		}, []string{"operation"}),
	}
}

// IncrementListsCreated records a successful list creation.
func (m *Metrics) IncrementListsCreated() {
	if m != nil {
		m.ListsCreated.Inc()
	}
}

// IncrementItemsCreated records a successful item creation.
func (m *Metrics) IncrementItemsCreated() {
	if m != nil {
		m.ItemsCreated.Inc()
	}
}

// ObserveRequest records the duration of one HTTP request.
func (m *Metrics) ObserveRequest(route, method, status string, d time.Duration) {
	if m != nil {
		m.RequestLatency.WithLabelValues(route, method, status).Observe(d.Seconds())
	}
}

// ObserveStoreOperation records the duration of one storage adapter call.
func (m *Metrics) ObserveStoreOperation(operation string, d time.Duration) {
	if m != nil {
		m.StoreLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}
