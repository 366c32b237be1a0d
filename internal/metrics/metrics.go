// Package metrics exposes the Prometheus instrumentation for the service.
// All collectors live on a dedicated registry so the /metrics endpoint only
// reports what the application registers itself.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
)

var Registry = prometheus.NewRegistry()

var (
	// HTTPRequestsTotal counts requests by method, route pattern and status.
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newskoop_http_requests_total",
			Help: "Total HTTP requests processed.",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration observes request latency per route.
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "newskoop_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// ContentPublished counts publish operations by content kind.
	ContentPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newskoop_content_published_total",
			Help: "Content items published, by kind.",
		},
		[]string{"kind"},
	)

	// TranslationsCreated counts translation copies by content kind.
	TranslationsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newskoop_translations_created_total",
			Help: "Translations created, by kind.",
		},
		[]string{"kind"},
	)

	// LoginsTotal counts authentication attempts by outcome.
	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newskoop_logins_total",
			Help: "Login attempts, by outcome.",
		},
		[]string{"outcome"},
	)

	// TasksCreated counts newsroom tasks created by task type.
	TasksCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newskoop_tasks_created_total",
			Help: "Tasks created, by type.",
		},
		[]string{"type"},
	)

	// TasksCompleted counts tasks moved to COMPLETED by task type.
	TasksCompleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newskoop_tasks_completed_total",
			Help: "Tasks completed, by type.",
		},
		[]string{"type"},
	)
)

func init() {
	Registry.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		ContentPublished,
		TranslationsCreated,
		LoginsTotal,
		TasksCreated,
		TasksCompleted,
	)
}

// Handler returns the HTTP handler serving the registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
