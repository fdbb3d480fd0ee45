package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordNotification(t *testing.T) {
	sent := testutil.ToFloat64(notifications.WithLabelValues("lead_assigned", "sent"))
	failed := testutil.ToFloat64(notifications.WithLabelValues("lead_assigned", "failed"))

	RecordNotification("lead_assigned", nil)
	RecordNotification("lead_assigned", errors.New("smtp down"))

	assert.Equal(t, sent+1, testutil.ToFloat64(notifications.WithLabelValues("lead_assigned", "sent")))
	assert.Equal(t, failed+1, testutil.ToFloat64(notifications.WithLabelValues("lead_assigned", "failed")))
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/leads/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues("/api/leads/{id}", http.MethodGet, "418"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/leads/123", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("/api/leads/{id}", http.MethodGet, "418")))
}
