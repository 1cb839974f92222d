package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP request metrics, labelled by method, route and status.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "disaster_alert_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "disaster_alert_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	ReportsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "disaster_alert_reports_submitted_total",
			Help: "Total number of disaster reports submitted",
		},
		[]string{"disaster_type"},
	)

	EmailDispatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "disaster_alert_email_dispatches_total",
			Help: "Total number of admin notification attempts",
		},
		[]string{"outcome"},
	)
)

// RecordReportSubmission increments the submission counter for a type.
func RecordReportSubmission(disasterType string) {
	ReportsSubmitted.WithLabelValues(disasterType).Inc()
}

// RecordEmailDispatch increments the dispatch counter with "sent" or
// "failed".
func RecordEmailDispatch(sent bool) {
	outcome := "failed"
	if sent {
		outcome = "sent"
	}
	EmailDispatches.WithLabelValues(outcome).Inc()
}
