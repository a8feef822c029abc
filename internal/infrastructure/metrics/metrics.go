// Package metrics provides Prometheus metrics for the meet-api service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RegisteredRooms tracks the number of rooms in the local registry.
	RegisteredRooms = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "meet_registered_rooms",
			Help: "Number of rooms currently held in the local registry",
		},
	)

	// RoomsCreated tracks the total number of rooms created.
	RoomsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "meet_rooms_created_total",
			Help: "Total number of rooms created through this service",
		},
	)

	// RoomsDeleted tracks the total number of rooms deleted.
	RoomsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "meet_rooms_deleted_total",
			Help: "Total number of rooms deleted through this service",
		},
	)

	// OrphanedRooms tracks registry entries the upstream no longer reports.
	OrphanedRooms = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "meet_registry_orphaned_rooms",
			Help: "Registered rooms missing from the upstream room list at the last reconcile",
		},
	)

	// ReconcileErrors tracks failed reconcile cycles.
	ReconcileErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "meet_reconcile_errors_total",
			Help: "Total number of reconcile cycles that failed to list upstream rooms",
		},
	)

	// UpstreamRequestDuration tracks calls to the Meet API.
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meet_upstream_request_duration_seconds",
			Help:    "Duration of requests to the OpenVidu Meet API",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "resource", "status"},
	)

	// HTTPRequestsTotal tracks inbound HTTP requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meet_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// HTTPRequestDuration tracks inbound HTTP request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meet_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

// RecordRoomCreated increments room creation metrics.
func RecordRoomCreated() {
	RoomsCreated.Inc()
}

// RecordRoomDeleted increments room deletion metrics.
func RecordRoomDeleted() {
	RoomsDeleted.Inc()
}

// RecordUpstreamRequest records one call to the Meet API.
func RecordUpstreamRequest(method, resource, status string, seconds float64) {
	UpstreamRequestDuration.WithLabelValues(method, resource, status).Observe(seconds)
}

// RecordRequest records one inbound HTTP request.
func RecordRequest(method, endpoint, status string, seconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(seconds)
}
