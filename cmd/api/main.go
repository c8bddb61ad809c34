package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/synthapp/synth/config"
	"github.com/synthapp/synth/internal/app"
	"github.com/synthapp/synth/pkg/logger"
)

const forceShutdownWait = 2 * time.Second

// osExit is a variable to allow mocking os.Exit in tests
var osExit = os.Exit

// For testing purposes - allows us to mock the signal channel
var signalNotify = signal.Notify

// server is the part of the app driven by runServer
type server interface {
	Initialize() error
	Start() error
	Shutdown(ctx context.Context) error
	GetActiveRequestCount() int64
}

// newServer builds the app, replaced in tests
var newServer = func(cfg *config.Config, appLogger logger.Logger) server {
	return app.NewApp(cfg, app.WithLogger(appLogger))
}

// runServer initializes the app, serves until Start fails or a signal
// arrives, then drains in-flight requests.
func runServer(cfg *config.Config, appLogger logger.Logger) error {
	srv := newServer(cfg, appLogger)
	if err := srv.Initialize(); err != nil {
		appLogger.WithField("error", err.Error()).Error("Failed to initialize application")
		return err
	}

	signals := make(chan os.Signal, 1)
	signalNotify(signals, os.Interrupt, syscall.SIGTERM)

	served := make(chan error, 1)
	go func() {
		appLogger.Info("Server started successfully")
		served <- srv.Start()
	}()

	select {
	case err := <-served:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		appLogger.WithField("error", err.Error()).Error("Server error")
		return err
	case sig := <-signals:
		appLogger.WithFields(map[string]interface{}{
			"signal":          sig.String(),
			"active_requests": srv.GetActiveRequestCount(),
		}).Info("Shutdown signal received, send it again to force exit")
		return drain(cfg, srv, appLogger)
	}
}

// drain shuts srv down, giving up early when a second signal arrives
func drain(cfg *config.Config, srv server, appLogger logger.Logger) error {
	// the app bounds request draining itself; the extra margin covers cleanup
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout+5*time.Second)
	defer cancel()

	force := make(chan os.Signal, 1)
	signalNotify(force, os.Interrupt, syscall.SIGTERM)

	done := make(chan error, 1)
	go func() {
		done <- srv.Shutdown(ctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			appLogger.WithField("error", err.Error()).Error("Error during graceful shutdown")
			return err
		}
		appLogger.Info("Server shut down gracefully")
		return nil
	case sig := <-force:
		appLogger.WithField("signal", sig.String()).Warn("Forcing shutdown, in-flight requests are dropped")
		cancel()
		select {
		case <-done:
		case <-time.After(forceShutdownWait):
		}
		return errors.New("forced shutdown")
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.NewLoggerWithLevel(cfg.LogLevel)
	appLogger.Info(fmt.Sprintf("Starting Synth API on %s:%d", cfg.Server.Host, cfg.Server.Port))

	if err := runServer(cfg, appLogger); err != nil {
		osExit(1)
	}
}
