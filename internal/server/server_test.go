package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexxoo/website/pkg/logger"
)

func newTestRouter(t *testing.T) (http.Handler, *prometheus.Registry) {
	t.Helper()
	reg := NewRegistry()
	r, err := NewRouter(RouterParams{Log: logger.Discard(), Registry: reg})
	require.NoError(t, err)

	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })
	r.Get("/hello", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("hi")) })
	return r, reg
}

func TestRouter_Static(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/css/site.css", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "--primary")

	missing := httptest.NewRecorder()
	r.ServeHTTP(missing, httptest.NewRequest(http.MethodGet, "/static/nope.js", nil))
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestRouter_Metrics(t *testing.T) {
	r, reg := newTestRouter(t)
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "flexxoo_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "flexxoo_test_total 1")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRouter_Middleware(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	slash := httptest.NewRecorder()
	r.ServeHTTP(slash, httptest.NewRequest(http.MethodGet, "/hello/", nil))
	assert.Equal(t, http.StatusOK, slash.Code)
	assert.Equal(t, "hi", slash.Body.String())
}

func TestSkipLogging(t *testing.T) {
	assert.True(t, skipLogging("/health"))
	assert.True(t, skipLogging("/metrics"))
	assert.True(t, skipLogging("/static/css/site.css"))
	assert.False(t, skipLogging("/"))
	assert.False(t, skipLogging("/api/contact"))
}
