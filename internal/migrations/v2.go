package migrations

import (
	"context"
	"fmt"

	"github.com/synthapp/synth/config"
)

// V2Migration folds the legacy user_jambase_events interest table into event_interests.
// Rows are matched on the JamBase id of the event; rows without a stored event are dropped
// together with the legacy table.
type V2Migration struct{}

func (m *V2Migration) Version() int {
	return 2
}

func (m *V2Migration) Description() string {
	return "merge user_jambase_events into event_interests"
}

func (m *V2Migration) Up(ctx context.Context, cfg *config.Config, db DBExecutor) error {
	var exists bool
	if err := db.QueryRowContext(ctx,
		`SELECT to_regclass('public.user_jambase_events') IS NOT NULL`,
	).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check legacy interest table: %w", err)
	}
	if !exists {
		return nil
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO event_interests (user_id, event_id, created_at, updated_at)
		SELECT DISTINCT uje.user_id, e.id, NOW(), NOW()
		FROM user_jambase_events uje
		JOIN events e
			ON e.source = 'jambase'
			AND e.external_id = regexp_replace(uje.jambase_event_id::text, '^jambase:', '')
		ON CONFLICT (user_id, event_id) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("failed to copy legacy interests: %w", err)
	}

	if _, err := db.ExecContext(ctx, `DROP TABLE user_jambase_events`); err != nil {
		return fmt.Errorf("failed to drop legacy interest table: %w", err)
	}
	return nil
}

func init() {
	builtin.Add(&V2Migration{})
}
