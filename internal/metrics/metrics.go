package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crm",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests by route pattern, method and status.",
	}, []string{"route", "method", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "crm",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency distribution of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	guardDenials = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crm",
		Subsystem: "guard",
		Name:      "denials_total",
		Help:      "Requests redirected by the role guard, by reason.",
	}, []string{"reason"})

	notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crm",
		Subsystem: "notifications",
		Name:      "sent_total",
		Help:      "Outbound notification attempts by template and result.",
	}, []string{"template", "result"})
)

// RecordGuardDenial counts a request the role guard turned away.
func RecordGuardDenial(reason string) {
	guardDenials.WithLabelValues(reason).Inc()
}

// RecordNotification counts a notification attempt.
func RecordNotification(template string, err error) {
	result := "sent"
	if err != nil {
		result = "failed"
	}
	notifications.WithLabelValues(template, result).Inc()
}

// Middleware records request counts and latency keyed by chi route pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		httpLatency.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
