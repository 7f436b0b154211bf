package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDInjector(t *testing.T) {
	// given a handler that records the injected request ID
	var gotID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := RequestIDFrom(r.Context())
		assert.True(t, ok, "request ID should be in context")
		gotID = id
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	// when
	RequestIDInjector(next).ServeHTTP(rr, req)

	// then
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, gotID)
}

func TestRecoverer(t *testing.T) {
	// given a handler that panics
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	// when
	Recoverer(discardLogger)(next).ServeHTTP(rr, req)

	// then the panic is converted into a 500
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestStructuredLogger_PassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	StructuredLogger(discardLogger)(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestMetrics_Middleware(t *testing.T) {
	// given a router instrumented with the metrics middleware
	metrics := NewMetrics()
	router := chi.NewRouter()
	router.Use(metrics.Middleware)
	router.Get("/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// when two requests hit the same route pattern
	for _, target := range []string{"/products/1", "/products/2"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	// then the counter aggregates under the route pattern, not the raw path
	count := testutil.ToFloat64(metrics.requests.WithLabelValues(http.MethodGet, "/products/{id}", "200"))
	assert.Equal(t, float64(2), count)
}

func TestMetrics_HandlerServesTextFormat(t *testing.T) {
	metrics := NewMetrics()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
