package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, h.withRecovery)

	// legacy single entry point, resource selected by ?path=
	router.Group(func(r chi.Router) {
		r.Use(withStaticHeaders, withCORS(), withCompression(), withGzipBody)

		r.HandleFunc("/", h.dispatch)
		r.HandleFunc("/index.php", h.dispatch)
	})

	router.Get("/version", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))

	router.NotFound(h.resourceNotFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}
