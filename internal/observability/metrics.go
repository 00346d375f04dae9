// Package observability exposes Prometheus metrics for the data pipeline.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Severity gauge values per alert tier.
const (
	SeverityValueNormal   = 0
	SeverityValueWarning  = 1
	SeverityValueCritical = 2
)

// Metrics holds the collectors for dataset loading and view recomputation.
type Metrics struct {
	registry *prometheus.Registry

	fetchTotal        *prometheus.CounterVec
	fetchDuration     *prometheus.HistogramVec
	recomputeDuration *prometheus.HistogramVec
	alertSeverity     *prometheus.GaugeVec
}

// NewMetrics creates and registers the pipeline collectors on a dedicated
// registry.
func NewMetrics() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		fetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "atlas_dataset_fetch_total",
			Help: "Dataset fetch attempts by dataset and status",
		}, []string{"dataset", "status"}),
		fetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "atlas_dataset_fetch_duration_seconds",
			Help:    "Dataset fetch duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"dataset"}),
		recomputeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "atlas_view_recompute_duration_seconds",
			Help:    "Derived view recomputation duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"view"}),
		alertSeverity: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "atlas_alert_severity",
			Help: "Current alert severity per metric (0 normal, 1 warning, 2 critical)",
		}, []string{"metric"}),
	}

	collectors := []prometheus.Collector{
		m.fetchTotal,
		m.fetchDuration,
		m.recomputeDuration,
		m.alertSeverity,
	}
	for _, c := range collectors {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// RecordFetch counts one dataset fetch attempt with its outcome.
func (m *Metrics) RecordFetch(dataset, status string) {
	m.fetchTotal.WithLabelValues(dataset, status).Inc()
}

// RecordFetchDuration tracks how long a dataset fetch took.
func (m *Metrics) RecordFetchDuration(dataset string, seconds float64) {
	m.fetchDuration.WithLabelValues(dataset).Observe(seconds)
}

// RecordRecomputeDuration tracks how long a derived view recomputation took.
func (m *Metrics) RecordRecomputeDuration(view string, seconds float64) {
	m.recomputeDuration.WithLabelValues(view).Observe(seconds)
}

// UpdateAlertSeverity sets the current severity gauge for one metric.
func (m *Metrics) UpdateAlertSeverity(metric string, value float64) {
	m.alertSeverity.WithLabelValues(metric).Set(value)
}

// Handler returns an HTTP handler serving the metrics registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
