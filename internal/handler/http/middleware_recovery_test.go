package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithRecovery_PanicBecomesInternalServerError(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("database handle is nil")
	})

	rr := httptest.NewRecorder()
	newTestHandler().withRecovery(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/?path=can_frames", &buf))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "database handle")

	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "database handle is nil")
}

func TestWithRecovery_NoPanicPassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	rr := httptest.NewRecorder()
	newTestHandler().withRecovery(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestWithRecovery_AbortHandlerIsRepanicked(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		newTestHandler().withRecovery(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
