package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solarpanel/tracker-api/internal/config"
	"github.com/solarpanel/tracker-api/internal/handler"
	handlerHTTP "github.com/solarpanel/tracker-api/internal/handler/http"
	"github.com/solarpanel/tracker-api/internal/logger"
	"github.com/solarpanel/tracker-api/internal/service"
	"github.com/solarpanel/tracker-api/models"
)

// freeAddress reserves a loopback port and releases it for the server.
func freeAddress(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func testHandlers(cfg config.Server) *handler.Handlers {
	services := &service.Services{
		AppInfoService: service.NewAppInfoService(config.App{}, models.NewAppBuildInfo("1.2.3", "", ""), logger.Nop()),
	}
	return &handler.Handlers{HTTP: handlerHTTP.NewHandler(services, cfg, logger.Nop())}
}

func TestNewServer_NoAddress(t *testing.T) {
	_, err := NewServer(testHandlers(config.Server{}), config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_AppliesTimeouts(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080", RequestTimeout: 7 * time.Second}

	srv, err := NewServer(testHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)

	s := srv.(*server)
	assert.Equal(t, 7*time.Second, s.httpServer.server.ReadTimeout)
	assert.Equal(t, 7*time.Second, s.httpServer.server.WriteTimeout)
	assert.Equal(t, config.DefaultShutdownTimeout, s.shutdownTimeout)
}

func TestRunServer_ServesUntilCancelled(t *testing.T) {
	cfg := config.Server{HTTPAddress: freeAddress(t), ShutdownTimeout: time.Second}
	srv, err := NewServer(testHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get("http://" + cfg.HTTPAddress + "/version")
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"version":"1.2.3"`)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunServer_AddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := config.Server{HTTPAddress: ln.Addr().String()}
	srv, err := NewServer(testHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, srv.RunServer(context.Background()))
}

func TestHTTPServer_ServeBeforeListen(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: ":0"}, logger.Nop())

	assert.ErrorIs(t, h.serve(), errServerNotStarted)
	assert.Empty(t, h.addr())
}
