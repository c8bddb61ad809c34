package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/synthapp/synth/config"
	"github.com/synthapp/synth/internal/app"
	"github.com/synthapp/synth/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// loadConfig and newApp are replaced in tests
var (
	loadConfig = func(envFile string) (*config.Config, error) {
		return config.LoadWithOptions(config.LoadOptions{EnvFile: envFile})
	}
	newApp = func(cfg *config.Config, log logger.Logger) app.AppInterface {
		return app.NewApp(cfg, app.WithLogger(log))
	}
)

type rootOptions struct {
	envFile  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "synthctl",
		Short: "Maintenance commands for the Synth backend",
		Long: `synthctl runs one-off maintenance work against the Synth database.

Available commands:
  migrate   - Create the schema and apply pending migrations
  sync      - Import events from Ticketmaster or JamBase into the catalog
  trust     - Recompute verification trust scores
  passport  - Recalculate passport identities`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "environment file to load")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override LOG_LEVEL")

	rootCmd.AddCommand(
		newMigrateCmd(opts),
		newSyncCmd(opts),
		newTrustCmd(opts),
		newPassportCmd(opts),
	)

	return rootCmd
}

// withApp builds the database, repositories and services, runs fn and
// releases every resource afterwards. HTTP handlers are never registered.
func withApp(ctx context.Context, opts *rootOptions, fn func(ctx context.Context, a app.AppInterface) error) error {
	cfg, err := loadConfig(opts.envFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	log := logger.NewLoggerWithLevel(cfg.LogLevel)
	a := newApp(cfg, log)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.Shutdown(shutdownCtx); err != nil {
			log.WithField("error", err.Error()).Warn("Cleanup after command failed")
		}
	}()

	steps := []func() error{
		a.InitTracing,
		a.InitDB,
		a.InitMailer,
		a.InitRepositories,
		a.InitServices,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	return fn(ctx, a)
}
