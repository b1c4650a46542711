package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  prometheus.Gauge
	DBInUseConnections prometheus.Gauge
	DBIdleConnections  prometheus.Gauge

	ScheduleMutationsTotal  *prometheus.CounterVec
	AppointmentsBookedTotal prometheus.Counter
	OverflowBlocks          prometheus.Histogram
}

// New регистрирует метрики в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в переданном реестре (в тестах - prometheus.NewRegistry())
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBOpenConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}),

		DBInUseConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}),

		DBIdleConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}),

		ScheduleMutationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "schedule_mutations_total",
			Help:        "Day schedule mutations by operation and result",
			ConstLabels: constLabels,
		}, []string{"operation", "result"}),

		AppointmentsBookedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name:        "appointments_booked_total",
			Help:        "Appointments created on open slots",
			ConstLabels: constLabels,
		}),

		OverflowBlocks: factory.NewHistogram(prometheus.HistogramOpts{
			Name:        "schedule_overflow_blocks",
			Help:        "Blocks that did not fit before day end after a mutation",
			ConstLabels: constLabels,
			Buckets:     []float64{0, 1, 2, 4, 8},
		}),
	}
}

// RecordMutation учитывает мутацию расписания
// Безопасен для nil-ресивера, когда метрики выключены
func (m *Metrics) RecordMutation(operation string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.ScheduleMutationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordBooking учитывает новую запись на слот
func (m *Metrics) RecordBooking() {
	if m == nil {
		return
	}
	m.AppointmentsBookedTotal.Inc()
}

// RecordOverflow учитывает количество блоков, не уместившихся в рабочий день
func (m *Metrics) RecordOverflow(blocks int) {
	if m == nil {
		return
	}
	m.OverflowBlocks.Observe(float64(blocks))
}
