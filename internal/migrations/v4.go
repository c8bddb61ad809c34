package migrations

import (
	"context"
	"fmt"

	"github.com/synthapp/synth/config"
)

// V4Migration makes fan_type nullable and renames the first fan type labels.
// Fans without a stand-out pattern no longer get a label.
type V4Migration struct{}

func (m *V4Migration) Version() int {
	return 4
}

func (m *V4Migration) Description() string {
	return "nullable fan_type with renamed labels"
}

var fanTypeRenames = []struct{ from, to string }{
	{"explorer", "genre_explorer"},
	{"loyalist", "jam_chaser"},
	{"scene_regular", "venue_purist"},
}

func (m *V4Migration) Up(ctx context.Context, cfg *config.Config, db DBExecutor) error {
	for _, table := range []string{"passport_identity", "passport_taste_map"} {
		if _, err := db.ExecContext(ctx, fmt.Sprintf(`ALTER TABLE %s ALTER COLUMN fan_type DROP NOT NULL`, table)); err != nil {
			return fmt.Errorf("failed to relax %s.fan_type: %w", table, err)
		}
		for _, r := range fanTypeRenames {
			if _, err := db.ExecContext(ctx,
				fmt.Sprintf(`UPDATE %s SET fan_type = $1 WHERE fan_type = $2`, table), r.to, r.from,
			); err != nil {
				return fmt.Errorf("failed to rename fan type %s in %s: %w", r.from, table, err)
			}
		}
		if _, err := db.ExecContext(ctx,
			fmt.Sprintf(`UPDATE %s SET fan_type = NULL WHERE fan_type IN ('casual', '')`, table),
		); err != nil {
			return fmt.Errorf("failed to clear casual fan type in %s: %w", table, err)
		}
	}
	return nil
}

func init() {
	builtin.Add(&V4Migration{})
}
