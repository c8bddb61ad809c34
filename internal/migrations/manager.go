package migrations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/synthapp/synth/config"
	"github.com/synthapp/synth/pkg/logger"
)

const (
	selectVersionQuery = `SELECT value FROM settings WHERE key = 'db_version'`
	upsertVersionQuery = `INSERT INTO settings (key, value) VALUES ('db_version', $1)
		ON CONFLICT (key) DO UPDATE SET value = $1, updated_at = CURRENT_TIMESTAMP`
)

// Manager applies registered migrations and tracks the schema version in the
// settings table.
type Manager struct {
	logger   logger.Logger
	registry *Registry
}

// NewManager creates a manager over the migrations shipped with the binary
func NewManager(log logger.Logger) *Manager {
	return NewManagerWithRegistry(log, builtin)
}

func NewManagerWithRegistry(log logger.Logger, registry *Registry) *Manager {
	return &Manager{logger: log, registry: registry}
}

// CurrentVersion returns the recorded schema version. A database without a
// record reports BaselineVersion, so legacy imports still get every repair.
func (m *Manager) CurrentVersion(ctx context.Context, db *sql.DB) (int, error) {
	var raw string
	err := db.QueryRowContext(ctx, selectVersionQuery).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return BaselineVersion, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get current database version: %w", err)
	}

	// older deployments stored "2.0"
	version, err := ParseVersion(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid database version format '%s': %w", raw, err)
	}
	return version, nil
}

func (m *Manager) setVersion(ctx context.Context, db DBExecutor, version int) error {
	if _, err := db.ExecContext(ctx, upsertVersionQuery, strconv.Itoa(version)); err != nil {
		return fmt.Errorf("failed to set database version to %d: %w", version, err)
	}
	return nil
}

// Pending lists the migrations RunMigrations would apply
func (m *Manager) Pending(ctx context.Context, db *sql.DB) ([]Migration, error) {
	current, err := m.CurrentVersion(ctx, db)
	if err != nil {
		return nil, err
	}
	target, err := SchemaVersion()
	if err != nil {
		return nil, err
	}
	return m.registry.Between(current, target), nil
}

// RunMigrations applies pending migrations one transaction each. The version
// is bumped inside the same transaction, so a failure resumes at the failed
// step on the next start.
func (m *Manager) RunMigrations(ctx context.Context, cfg *config.Config, db *sql.DB) error {
	target, err := SchemaVersion()
	if err != nil {
		return err
	}

	pending, err := m.Pending(ctx, db)
	if err != nil {
		return err
	}

	if len(pending) == 0 {
		m.logger.WithField("version", target).Info("Database schema is up to date")
		return m.setVersion(ctx, db, target)
	}

	m.logger.WithField("count", len(pending)).Info("Applying database migrations")
	for _, migration := range pending {
		if err := m.apply(ctx, cfg, db, migration); err != nil {
			return fmt.Errorf("migration failed for version %d: %w", migration.Version(), err)
		}
	}

	if err := m.setVersion(ctx, db, target); err != nil {
		return err
	}
	m.logger.WithField("version", target).Info("Database migrations applied")
	return nil
}

func (m *Manager) apply(ctx context.Context, cfg *config.Config, db *sql.DB, migration Migration) error {
	log := m.logger.WithFields(map[string]interface{}{
		"version":     migration.Version(),
		"description": migration.Description(),
	})
	log.Info("Applying migration")

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := migration.Up(ctx, cfg, tx); err != nil {
		return err
	}
	if err := m.setVersion(ctx, tx, migration.Version()); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration: %w", err)
	}

	log.Info("Migration applied")
	return nil
}
