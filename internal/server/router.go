package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"calc-engine/internal/calculator"
	"calc-engine/internal/handlers"
	"calc-engine/internal/observability"
)

// NewRouter wires the middleware stack, health and metrics endpoints and the
// calculator routes. metrics may be nil to serve the default Prometheus
// registry.
func NewRouter(calc *calculator.Handler, metrics prometheus.Gatherer) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler(metrics))

	calculator.RegisterRoutes(r, calc)

	return r
}
