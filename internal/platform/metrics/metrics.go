// Package metrics exposes Prometheus metrics for the API.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	EntitiesCreated *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics on a private registry,
// so tests can construct multiple instances without collisions.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hbnb_http_requests_total",
			Help: "Total number of HTTP requests by method and status code",
		}, []string{"method", "status"}),
		EntitiesCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hbnb_entities_created_total",
			Help: "Total number of entities created by type",
		}, []string{"entity"}),
	}
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// IncEntityCreated increments the creation counter for an entity type.
func (m *Metrics) IncEntityCreated(entity string) {
	m.EntitiesCreated.WithLabelValues(entity).Inc()
}

// Middleware counts every request by method and response status.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		m.RequestsTotal.WithLabelValues(r.Method, strconv.Itoa(recorder.status)).Inc()
	})
}

// statusRecorder captures the status code written by the handler chain.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
