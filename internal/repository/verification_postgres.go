package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/synthapp/synth/internal/domain"
)

type verificationRepository struct {
	db *sql.DB
}

// NewVerificationRepository creates a new PostgreSQL verification repository
func NewVerificationRepository(db *sql.DB) domain.VerificationRepository {
	return &verificationRepository{db: db}
}

// GetTrustStats counts the activity the trust score is derived from
func (r *verificationRepository) GetTrustStats(ctx context.Context, userID string) (*domain.TrustStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM reviews WHERE user_id = $1),
			(SELECT COUNT(*) FROM relationships
				WHERE related_entity_type = 'user' AND relationship_type = 'friend' AND status = 'accepted'
				AND (user_id = $1 OR related_entity_id = $2)),
			(SELECT COUNT(*) FROM event_interests WHERE user_id = $1),
			(SELECT COUNT(*) FROM reviews WHERE user_id = $1 AND was_there = TRUE)
	`
	var stats domain.TrustStats
	err := r.db.QueryRowContext(ctx, query, userID, userID).Scan(
		&stats.ReviewCount,
		&stats.FriendCount,
		&stats.InterestCount,
		&stats.AttendedCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get trust stats: %w", err)
	}
	return &stats, nil
}

func (r *verificationRepository) SaveTrustScore(ctx context.Context, userID string, score *domain.TrustScore) error {
	query := `
		UPDATE profiles SET
			trust_score = $2,
			verification_criteria = $3,
			verified = $4,
			verified_at = CASE WHEN $4 AND verified_at IS NULL THEN NOW() ELSE verified_at END,
			updated_at = NOW()
		WHERE user_id = $1
	`
	result, err := r.db.ExecContext(ctx, query, userID, score.Score, score.Criteria, score.Verified)
	if err != nil {
		return fmt.Errorf("failed to save trust score: %w", err)
	}
	return rowsAffectedOrNotFound(result, domain.NewNotFound("profile", userID))
}

// SetVerified records an admin decision. Clearing verification also clears
// who verified the account and when.
func (r *verificationRepository) SetVerified(ctx context.Context, userID string, verified bool, adminID string) error {
	var (
		result sql.Result
		err    error
	)
	if verified {
		result, err = r.db.ExecContext(ctx, `
			UPDATE profiles SET verified = TRUE, verified_by = $2, verified_at = NOW(), updated_at = NOW()
			WHERE user_id = $1
		`, userID, adminID)
	} else {
		result, err = r.db.ExecContext(ctx, `
			UPDATE profiles SET verified = FALSE, verified_by = NULL, verified_at = NULL, updated_at = NOW()
			WHERE user_id = $1
		`, userID)
	}
	if err != nil {
		return fmt.Errorf("failed to set verified: %w", err)
	}
	return rowsAffectedOrNotFound(result, domain.NewNotFound("profile", userID))
}

func (r *verificationRepository) ListNearVerification(ctx context.Context, minScore int, limit int) ([]*domain.VerificationCandidate, error) {
	query, args, err := psql.
		Select("user_id", "name", "avatar_url", "trust_score", "created_at").
		From("profiles").
		Where("account_type = 'user'").
		Where("verified = FALSE").
		Where("trust_score >= ?", minScore).
		OrderBy("trust_score DESC", "created_at ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users near verification: %w", err)
	}
	defer rows.Close()

	candidates := []*domain.VerificationCandidate{}
	for rows.Next() {
		var c domain.VerificationCandidate
		if err := rows.Scan(&c.UserID, &c.Name, &c.AvatarURL, &c.TrustScore, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, &c)
	}
	return candidates, rows.Err()
}

func (r *verificationRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT user_id FROM profiles ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list user ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
