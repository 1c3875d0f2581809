package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-farol/internal/config"
	"github.com/MKhiriev/go-farol/internal/handler"
	myHTTP "github.com/MKhiriev/go-farol/internal/handler/http"
	"github.com/MKhiriev/go-farol/internal/logger"
	"github.com/MKhiriev/go-farol/internal/service"
	"github.com/MKhiriev/go-farol/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServerConfig() config.Server {
	return config.Server{
		HTTPAddress:       "127.0.0.1:0",
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
	}
}

// waitForAddr polls until s has bound its listener.
func waitForAddr(t *testing.T, s *httpServer) net.Addr {
	t.Helper()

	var addr net.Addr
	require.Eventually(t, func() bool {
		addr = s.Addr()
		return addr != nil
	}, 2*time.Second, 5*time.Millisecond)

	return addr
}

func TestNewServer_NoHTTPAddress(t *testing.T) {
	handlers := &handler.Handlers{HTTP: myHTTP.NewHandler(&service.Services{}, nil, &config.StructuredConfig{}, logger.Nop())}

	s, err := NewServer(handlers, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(nil, testServerConfig(), logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestHTTPServer_ServesUntilCancelled(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})
	s := newHTTPServer(handler, testServerConfig(), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	addr := waitForAddr(t, s)
	resp, err := http.Get("http://" + addr.String() + "/ping")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "pong", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}

	_, err = http.Get("http://" + addr.String() + "/ping")
	assert.Error(t, err)
}

func TestHTTPServer_ListenError(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	cfg := testServerConfig()
	cfg.HTTPAddress = occupied.Addr().String()
	s := newHTTPServer(http.NotFoundHandler(), cfg, logger.Nop())

	err = s.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen")
}

func TestHTTPServer_ShutdownWaitsForInFlight(t *testing.T) {
	started := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		time.Sleep(100 * time.Millisecond)
		_, _ = io.WriteString(w, "done")
	})
	s := newHTTPServer(handler, testServerConfig(), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	addr := waitForAddr(t, s)

	respCh := make(chan string, 1)
	go func() {
		resp, err := http.Get("http://" + addr.String() + "/slow")
		if err != nil {
			respCh <- err.Error()
			return
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		respCh <- string(body)
	}()

	<-started
	cancel()

	assert.Equal(t, "done", <-respCh)
	assert.NoError(t, <-done)
}

func TestServer_RunStopsBackgroundWorkers(t *testing.T) {
	cfg := &config.StructuredConfig{Server: testServerConfig()}
	handlers, err := handler.NewHandlers(&service.Services{}, nil, cfg, logger.Nop())
	require.NoError(t, err)

	var stopped atomic.Bool
	worker := workers.Func(func(ctx context.Context) error {
		<-ctx.Done()
		stopped.Store(true)
		return nil
	})

	s, err := NewServer(handlers, cfg.Server, logger.Nop(), worker)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	assert.NoError(t, s.Run(ctx))
	assert.True(t, stopped.Load())
}

func TestServer_WorkerFailureStopsServer(t *testing.T) {
	cfg := &config.StructuredConfig{Server: testServerConfig()}
	handlers, err := handler.NewHandlers(&service.Services{}, nil, cfg, logger.Nop())
	require.NoError(t, err)

	boom := errors.New("sweeper failed")
	s, err := NewServer(handlers, cfg.Server, logger.Nop(), workers.Func(func(ctx context.Context) error {
		return boom
	}))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, boom)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after worker failure")
	}
}
