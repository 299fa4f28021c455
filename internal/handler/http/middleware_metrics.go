package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resource labels for requests that do not address a legacy resource.
const (
	labelUnknown = "unknown"
	labelOther   = "other"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Number of HTTP requests by method, resource and status code.",
		}, []string{"method", "resource", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method and resource.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "resource"}),
	}
}

func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := wrapResponseWriter(w)

		next.ServeHTTP(rw, r)

		status := rw.status
		if status == 0 {
			status = http.StatusOK
		}
		resource := resourceLabel(r)

		h.metrics.requests.WithLabelValues(r.Method, resource, strconv.Itoa(status)).Inc()
		h.metrics.duration.WithLabelValues(r.Method, resource).Observe(time.Since(start).Seconds())
	})
}

// resourceLabel names the resource a request addressed without exposing ids
// or arbitrary client input as label values.
func resourceLabel(r *http.Request) string {
	switch r.URL.Path {
	case "/", "/index.php":
	default:
		return labelOther
	}

	resource, _ := parseResourcePath(r.URL.Query().Get(pathParam))
	switch resource {
	case ResourceCanFrames, ResourceLogin, ResourceResetPassword:
		return resource
	default:
		return labelUnknown
	}
}
