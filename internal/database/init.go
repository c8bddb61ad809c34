package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/synthapp/synth/internal/database/schema"
)

// InitializeDatabase creates the baseline schema in a single transaction.
// Every statement is idempotent so it runs on each start.
func InitializeDatabase(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start schema transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, stmt := range schema.TableDefinitions {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table %s: %w", schema.TableNames[i], err)
		}
	}
	for _, stmt := range schema.IndexDefinitions {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schema: %w", err)
	}
	return nil
}
