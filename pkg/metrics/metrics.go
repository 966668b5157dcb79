package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	StoreMutations  *prometheus.CounterVec
	SnapshotSaves   prometheus.Counter
	SnapshotErrors  prometheus.Counter
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		StoreMutations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "store_mutations_total",
			Help:        "Total number of store mutations by operation",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		SnapshotSaves: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "store_snapshot_saves_total",
			Help:        "Total number of persisted state snapshots",
			ConstLabels: constLabels,
		}),

		SnapshotErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "store_snapshot_errors_total",
			Help:        "Total number of failed state snapshot writes",
			ConstLabels: constLabels,
		}),
	}
}

// MutationApplied фиксирует применённую мутацию стора
func (m *Metrics) MutationApplied(operation string) {
	m.StoreMutations.WithLabelValues(operation).Inc()
}

// SnapshotSaved фиксирует успешную запись снапшота состояния
func (m *Metrics) SnapshotSaved() {
	m.SnapshotSaves.Inc()
}

// SnapshotFailed фиксирует неудачную запись снапшота состояния
func (m *Metrics) SnapshotFailed() {
	m.SnapshotErrors.Inc()
}
