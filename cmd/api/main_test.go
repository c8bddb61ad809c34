package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synthapp/synth/config"
	"github.com/synthapp/synth/pkg/logger"
)

type stubServer struct {
	mu          sync.Mutex
	initErr     error
	startErr    error
	shutdownErr error
	stop        chan struct{}
	shutdowns   int
}

func newStubServer() *stubServer {
	return &stubServer{stop: make(chan struct{})}
}

func (s *stubServer) Initialize() error { return s.initErr }

func (s *stubServer) Start() error {
	if s.startErr != nil {
		return s.startErr
	}
	<-s.stop
	return http.ErrServerClosed
}

func (s *stubServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shutdowns == 0 {
		close(s.stop)
	}
	s.shutdowns++
	return s.shutdownErr
}

func (s *stubServer) GetActiveRequestCount() int64 { return 0 }

// withStubs swaps the server factory and signal registration for the test
func withStubs(t *testing.T, srv *stubServer, signals ...os.Signal) {
	origServer, origNotify := newServer, signalNotify
	t.Cleanup(func() {
		newServer = origServer
		signalNotify = origNotify
	})

	newServer = func(*config.Config, logger.Logger) server { return srv }
	calls := 0
	signalNotify = func(c chan<- os.Signal, _ ...os.Signal) {
		if calls < len(signals) {
			c <- signals[calls]
		}
		calls++
	}
}

func testConfig() *config.Config {
	return &config.Config{Server: config.ServerConfig{ShutdownTimeout: time.Second}}
}

func TestRunServer_InitializeError(t *testing.T) {
	srv := newStubServer()
	srv.initErr = errors.New("database unreachable")
	withStubs(t, srv)

	err := runServer(testConfig(), logger.NewMockLogger(t))
	assert.EqualError(t, err, "database unreachable")
}

func TestRunServer_StartError(t *testing.T) {
	srv := newStubServer()
	srv.startErr = errors.New("address already in use")
	withStubs(t, srv)

	err := runServer(testConfig(), logger.NewMockLogger(t))
	assert.EqualError(t, err, "address already in use")
}

func TestRunServer_GracefulShutdown(t *testing.T) {
	srv := newStubServer()
	withStubs(t, srv, syscall.SIGTERM)

	require.NoError(t, runServer(testConfig(), logger.NewMockLogger(t)))
	assert.Equal(t, 1, srv.shutdowns)
}

func TestRunServer_ShutdownError(t *testing.T) {
	srv := newStubServer()
	srv.shutdownErr = errors.New("shutdown timeout exceeded")
	withStubs(t, srv, os.Interrupt)

	err := runServer(testConfig(), logger.NewMockLogger(t))
	assert.EqualError(t, err, "shutdown timeout exceeded")
}

func TestConfigLoadingRequiresSecret(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}
