package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/synthapp/synth/internal/domain"
)

type interestRepository struct {
	db *sql.DB
}

// NewInterestRepository creates a new PostgreSQL interest repository
func NewInterestRepository(db *sql.DB) domain.InterestRepository {
	return &interestRepository{db: db}
}

func (r *interestRepository) SetInterest(ctx context.Context, userID string, eventID string) error {
	now := time.Now().UTC()
	query := `
		INSERT INTO event_interests (user_id, event_id, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (user_id, event_id) DO UPDATE SET updated_at = EXCLUDED.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, userID, eventID, now); err != nil {
		return fmt.Errorf("failed to set interest: %w", err)
	}
	return nil
}

func (r *interestRepository) RemoveInterest(ctx context.Context, userID string, eventID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM event_interests WHERE user_id = $1 AND event_id = $2`, userID, eventID)
	if err != nil {
		return fmt.Errorf("failed to remove interest: %w", err)
	}
	return nil
}

func (r *interestRepository) IsInterested(ctx context.Context, userID string, eventID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM event_interests WHERE user_id = $1 AND event_id = $2)`,
		userID, eventID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check interest: %w", err)
	}
	return exists, nil
}

func (r *interestRepository) ListInterestedEvents(ctx context.Context, userID string) ([]*domain.InterestedEvent, error) {
	query := fmt.Sprintf(`
		SELECT %s, ei.created_at
		FROM event_interests ei
		JOIN events e ON e.id = ei.event_id
		WHERE ei.user_id = $1
		ORDER BY ei.created_at DESC
	`, columnList(prefixed("e", eventColumns)))

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list interested events: %w", err)
	}
	defer rows.Close()

	result := []*domain.InterestedEvent{}
	for rows.Next() {
		var at time.Time
		event, err := scanEvent(scanFunc(func(dest ...interface{}) error {
			return rows.Scan(append(dest, &at)...)
		}))
		if err != nil {
			return nil, fmt.Errorf("failed to scan interested event: %w", err)
		}
		result = append(result, &domain.InterestedEvent{Event: event, InterestedAt: at})
	}
	return result, rows.Err()
}

func (r *interestRepository) ListInterestedUserIDs(ctx context.Context, eventID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id FROM event_interests WHERE event_id = $1 ORDER BY created_at`, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list interested users: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
