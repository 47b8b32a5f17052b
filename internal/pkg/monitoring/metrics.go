// Package monitoring provides prometheus instrumentation for the
// notification pipeline. Metrics are registered once at composition time and
// updated by the notification queue as events flow through it.
package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NotificationMetrics holds the instruments for the notification queue and
// dispatcher. Dispatched and Failed are partitioned by event type.
type NotificationMetrics struct {
	QueueDepth prometheus.Gauge
	Dispatched *prometheus.CounterVec
	Failed     *prometheus.CounterVec
}

// NewNotificationMetrics creates and registers the notification pipeline
// metrics on the given registerer. Tests pass a fresh
// prometheus.NewRegistry() to keep registrations isolated.
func NewNotificationMetrics(reg prometheus.Registerer) *NotificationMetrics {
	queueDepth := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "ordering",
		Subsystem: "notifications",
		Name:      "queue_depth",
		Help:      "Number of notification events waiting to be dispatched.",
	})
	dispatched := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ordering",
		Subsystem: "notifications",
		Name:      "dispatched_total",
		Help:      "Total number of successfully dispatched notification events.",
	}, []string{"type"})
	failed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ordering",
		Subsystem: "notifications",
		Name:      "failed_total",
		Help:      "Total number of notification events whose dispatch failed.",
	}, []string{"type"})

	reg.MustRegister(queueDepth, dispatched, failed)
	return &NotificationMetrics{
		QueueDepth: queueDepth,
		Dispatched: dispatched,
		Failed:     failed,
	}
}

// Handler exposes the default prometheus registry over HTTP.
func Handler() http.Handler {
	return promhttp.Handler()
}
