package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Defaults(t *testing.T) {
	client := NewHTTPClient("http://tracker.local", 3*time.Second)

	require.NotNil(t, client.Client)
	assert.Equal(t, "http://tracker.local", client.BaseURL)
	assert.Equal(t, 3*time.Second, client.GetClient().Timeout)
	assert.Equal(t, "application/json", client.Header.Get("Accept"))
	assert.Equal(t, "application/json", client.Header.Get("Content-Type"))
}

func TestNewHTTPClient_ZeroTimeout(t *testing.T) {
	client := NewHTTPClient("http://tracker.local", 0)
	assert.Zero(t, client.GetClient().Timeout)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	a := NewHTTPClient("http://a", time.Second)
	b := NewHTTPClient("http://b", time.Second)
	assert.NotSame(t, a.Client, b.Client)
}

func TestRequestWithTrace(t *testing.T) {
	received := make(chan string, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received <- r.Header.Get(TraceIDHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)

	_, err := client.RequestWithTrace(WithTraceID(context.Background(), "trace-7")).Get("/")
	require.NoError(t, err)
	assert.Equal(t, "trace-7", <-received)

	_, err = client.RequestWithTrace(context.Background()).Get("/")
	require.NoError(t, err)
	assert.Empty(t, <-received)
}
