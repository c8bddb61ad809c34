package migrations

import (
	"context"
	"database/sql"

	"github.com/synthapp/synth/config"
)

// DBExecutor is satisfied by *sql.DB and *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Migration moves the schema from Version()-1 to Version(). Up runs inside a
// transaction owned by the Manager.
type Migration interface {
	Version() int
	Description() string
	Up(ctx context.Context, cfg *config.Config, tx DBExecutor) error
}
