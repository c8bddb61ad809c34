package migrations

import (
	"context"
	"fmt"

	"github.com/synthapp/synth/config"
	"github.com/synthapp/synth/pkg/citynorm"
)

// V3Migration backfills city_centers.normalized_name so fuzzy city search can use it
type V3Migration struct{}

func (m *V3Migration) Version() int {
	return 3
}

func (m *V3Migration) Description() string {
	return "backfill city_centers.normalized_name"
}

func (m *V3Migration) Up(ctx context.Context, cfg *config.Config, db DBExecutor) error {
	rows, err := db.QueryContext(ctx, `SELECT id, name FROM city_centers WHERE normalized_name = ''`)
	if err != nil {
		return fmt.Errorf("failed to list city centers: %w", err)
	}

	type pending struct{ id, name string }
	var cities []pending
	for rows.Next() {
		var p pending
		if err := rows.Scan(&p.id, &p.name); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan city center: %w", err)
		}
		cities = append(cities, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate city centers: %w", err)
	}

	for _, c := range cities {
		if _, err := db.ExecContext(ctx,
			`UPDATE city_centers SET normalized_name = $1, updated_at = NOW() WHERE id = $2`,
			citynorm.Normalize(c.name), c.id,
		); err != nil {
			return fmt.Errorf("failed to update city center %s: %w", c.id, err)
		}
	}
	return nil
}

func init() {
	builtin.Add(&V3Migration{})
}
