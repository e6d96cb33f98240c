// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moneybox_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moneybox_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Operation metrics
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moneybox_operations_total",
			Help: "Total number of money-movement operations by outcome",
		},
		[]string{"operation", "outcome"}, // withdrawal|transfer, success|insufficient_funds|pay_in_limit_reached|error
	)

	OperationAmount = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moneybox_operation_amount",
			Help:    "Amount distribution of successful operations",
			Buckets: []float64{1, 10, 50, 100, 250, 500, 1000, 2000, 4000},
		},
		[]string{"operation"},
	)

	// Notification metrics
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moneybox_notifications_total",
			Help: "Total number of notifications dispatched",
		},
		[]string{"backend", "type", "status"},
	)

	// Idempotency metrics
	IdempotentReplaysTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moneybox_idempotent_replays_total",
			Help: "Total number of responses replayed from the idempotency store",
		},
	)
)

// RecordNotification counts a dispatch attempt
func RecordNotification(backend, notificationType string, err error) {
	status := "sent"
	if err != nil {
		status = "failed"
	}
	NotificationsTotal.WithLabelValues(backend, notificationType, status).Inc()
}
