package mwlogger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerMiddleware(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(New(log))
	router.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("User-Agent", "probe/1.0")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusTeapot, rr.Code)

	var completed map[string]any
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &line))
		if line["msg"] == "request completed" {
			completed = line
		}
	}

	require.NotNil(t, completed, "no request log line written")
	assert.Equal(t, "middleware/logger", completed["component"])
	assert.Equal(t, http.MethodGet, completed["method"])
	assert.Equal(t, "/api/health", completed["path"])
	assert.Equal(t, "probe/1.0", completed["user_agent"])
	assert.NotEmpty(t, completed["request_id"])
	assert.EqualValues(t, http.StatusTeapot, completed["status"])
	assert.EqualValues(t, len("short and stout"), completed["bytes"])
	assert.NotEmpty(t, completed["duration"])
}
