package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBQueryErrors     *prometheus.CounterVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec
	DBWaitCount       *prometheus.GaugeVec

	SlotsComputed         *prometheus.CounterVec
	BookingsCreated       *prometheus.CounterVec
	BookingConflicts      *prometheus.CounterVec
	NotificationsEnqueued *prometheus.CounterVec
}

// New создает метрики и регистрирует их в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established database connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBIdle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),

		SlotsComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "slots_computed_total",
			Help:        "Total number of available slots returned to guests",
			ConstLabels: constLabels,
		}, []string{"event_slug"}),

		BookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of created bookings",
			ConstLabels: constLabels,
		}, []string{"status"}),

		BookingConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_conflicts_total",
			Help:        "Total number of bookings rejected at write time",
			ConstLabels: constLabels,
		}, []string{"stage"}),

		NotificationsEnqueued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "notifications_enqueued_total",
			Help:        "Total number of email notifications handed to the queue",
			ConstLabels: constLabels,
		}, []string{"type", "result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.DBWaitCount,
		m.SlotsComputed,
		m.BookingsCreated,
		m.BookingConflicts,
		m.NotificationsEnqueued,
	)

	return m
}

// ObserveHTTPRequest фиксирует один HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует один запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SlotsReturned увеличивает счетчик выданных слотов
func (m *Metrics) SlotsReturned(eventSlug string, count int) {
	m.SlotsComputed.WithLabelValues(eventSlug).Add(float64(count))
}

// BookingCreated увеличивает счетчик созданных бронирований
func (m *Metrics) BookingCreated(status string) {
	m.BookingsCreated.WithLabelValues(status).Inc()
}

// BookingConflict увеличивает счетчик отклоненных из-за пересечения бронирований
func (m *Metrics) BookingConflict(stage string) {
	m.BookingConflicts.WithLabelValues(stage).Inc()
}

// NotificationEnqueued фиксирует постановку письма в очередь
func (m *Metrics) NotificationEnqueued(taskType string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.NotificationsEnqueued.WithLabelValues(taskType, result).Inc()
}
