package mwmetrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"elevate/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	t.Parallel()

	m := metrics.New()

	router := chi.NewRouter()
	router.Use(New(m))
	router.Get("/api/events/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") == "missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("{}"))
	})

	for _, path := range []string{"/api/events/a", "/api/events/b", "/api/events/missing", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("/api/events/{id}", http.MethodGet, "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("/api/events/{id}", http.MethodGet, "404")))
	// The unrouted request gets its own series instead of its raw path.
	assert.Equal(t, 3, testutil.CollectAndCount(m.HTTPRequests))
	assert.Equal(t, 2, testutil.CollectAndCount(m.HTTPDuration))
}
