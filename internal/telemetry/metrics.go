package telemetry

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	AssignmentResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "staffing_assignments_total", Help: "Assignment outcomes per operation"},
		[]string{"operation", "result"},
	)
	NotificationResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "staffing_notifications_total", Help: "Selection notification outcomes"},
		[]string{"result"},
	)
	JobsIngested = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "staffing_jobs_ingested_total", Help: "Jobs written by bulk ingestion"},
		[]string{"mode"},
	)
	IngestionRejects = prometheus.NewCounter(prometheus.CounterOpts{Name: "staffing_ingestion_rejects_total", Help: "Bulk ingestion batches rejected by validation"})
	OutboxDepthGauge = prometheus.NewGauge(prometheus.GaugeOpts{Name: "staffing_notification_outbox_depth", Help: "Pending notifications seen by the last redelivery run"})
)

// Assignment result labels.
const (
	ResultSuccess       = "success"
	ResultFailed        = "failed"
	ResultAlreadyExists = "already_exists"
)

// Notification result labels.
const (
	NotificationSent        = "sent"
	NotificationFailed      = "failed"
	NotificationDisabled    = "disabled"
	NotificationRedelivered = "redelivered"
)

// Handler exposes /metrics HTTP handler with a singleton registry.
func Handler() http.Handler {
	Register()
	return promhttp.Handler()
}

// Register adds every collector to the default registry once.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			AssignmentResults,
			NotificationResults,
			JobsIngested,
			IngestionRejects,
			OutboxDepthGauge,
		)
	})
}
