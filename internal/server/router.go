package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abhisek/leadvane/internal/engine"
)

// NewRouter wires all endpoints. The gatherer backs GET /metrics; pass the
// same registry the engine's metrics were registered against.
func NewRouter(eng *engine.Engine, gatherer prometheus.Gatherer, log *slog.Logger) http.Handler {
	h := NewHandler(eng, log)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))
	r.Use(cors)

	r.Post("/commands", h.HandleCommand)

	r.Get("/customers", h.HandleListCustomers)
	r.Get("/customers/export.csv", h.HandleExportCSV)
	r.Get("/customers/tiers.png", h.HandleTierChart)
	r.Get("/customers/{email}", h.HandleGetCustomer)
	r.Put("/customers/{email}", h.HandleEditCustomer)
	r.Delete("/customers/{email}", h.HandleDeleteCustomer)

	r.Get("/stats", h.HandleStats)
	r.Get("/healthz", h.HandleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return r
}
