package migrations

import (
	"context"
	"fmt"

	"github.com/synthapp/synth/config"
)

// V5Migration adds unique, optional usernames to profiles
type V5Migration struct{}

func (m *V5Migration) Version() int {
	return 5
}

func (m *V5Migration) Description() string {
	return "profile usernames"
}

var v5Statements = []string{
	`ALTER TABLE profiles ADD COLUMN IF NOT EXISTS username VARCHAR(30)`,
	`ALTER TABLE profiles ADD COLUMN IF NOT EXISTS username_changed_at TIMESTAMPTZ`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_profiles_username ON profiles(username) WHERE username IS NOT NULL`,
}

func (m *V5Migration) Up(ctx context.Context, cfg *config.Config, db DBExecutor) error {
	for _, stmt := range v5Statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to add profile usernames: %w", err)
		}
	}
	return nil
}

func init() {
	builtin.Add(&V5Migration{})
}
