// Package metrics метрики prometheus сервиса почтовых индексов
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "zip_codes"
	subsystem = "api"
)

type Manager struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	storeErrors         *prometheus.CounterVec
	importedRecords     prometheus.Counter
}

// собственный реестр вместо prometheus.DefaultRegisterer
var Instance = NewManager(prometheus.NewRegistry())

func NewManager(registry *prometheus.Registry) *Manager {
	auto := promauto.With(registry)
	m := &Manager{registry: registry}
	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"route", "method", "status"})
	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method", "status"})
	m.storeErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "store_errors_total",
		Help:      "Total number of failed store operations",
	}, []string{"operation"})
	m.importedRecords = auto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "import",
		Name:      "records_total",
		Help:      "Total number of imported catalogue rows",
	})
	registry.MustRegister(collectors.NewGoCollector())
	return m
}

func (m *Manager) ObserveRequest(route, method string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(route, method, code).Inc()
	m.httpRequestDuration.WithLabelValues(route, method, code).Observe(duration.Seconds())
}

func (m *Manager) StoreError(operation string) {
	m.storeErrors.WithLabelValues(operation).Inc()
}

func (m *Manager) RecordsImported(count int) {
	if count > 0 {
		m.importedRecords.Add(float64(count))
	}
}

func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler выдача метрик в формате prometheus
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
