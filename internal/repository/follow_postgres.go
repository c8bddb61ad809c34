package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/synthapp/synth/internal/domain"
)

type followRepository struct {
	db *sql.DB
}

// NewFollowRepository creates a new PostgreSQL follow repository
func NewFollowRepository(db *sql.DB) domain.FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Follow(ctx context.Context, follow *domain.Follow) error {
	now := time.Now().UTC()
	follow.CreatedAt = now

	query := `
		INSERT INTO relationships (
			id, user_id, related_entity_type, related_entity_id, related_entity_name,
			relationship_type, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, 'follow', 'accepted', $6, $6)
		ON CONFLICT (user_id, related_entity_type, related_entity_id, relationship_type) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query,
		uuid.New().String(),
		follow.UserID,
		string(follow.TargetType),
		follow.TargetID,
		follow.TargetName,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to follow: %w", err)
	}
	return nil
}

func (r *followRepository) Unfollow(ctx context.Context, userID string, targetType domain.FollowTargetType, targetID string) error {
	query := `
		DELETE FROM relationships
		WHERE user_id = $1 AND related_entity_type = $2 AND related_entity_id = $3 AND relationship_type = 'follow'
	`
	if _, err := r.db.ExecContext(ctx, query, userID, string(targetType), targetID); err != nil {
		return fmt.Errorf("failed to unfollow: %w", err)
	}
	return nil
}

func (r *followRepository) IsFollowing(ctx context.Context, userID string, targetType domain.FollowTargetType, targetID string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM relationships
			WHERE user_id = $1 AND related_entity_type = $2 AND related_entity_id = $3 AND relationship_type = 'follow'
		)
	`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID, string(targetType), targetID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}
	return exists, nil
}

// ListFollows returns every follow of the user when targetType is empty
func (r *followRepository) ListFollows(ctx context.Context, userID string, targetType domain.FollowTargetType) ([]*domain.Follow, error) {
	qb := psql.
		Select("user_id", "related_entity_type", "related_entity_id", "related_entity_name", "created_at").
		From("relationships").
		Where("user_id = ?", userID).
		Where("relationship_type = 'follow'").
		OrderBy("created_at DESC")
	if targetType != "" {
		qb = qb.Where("related_entity_type = ?", string(targetType))
	}
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list follows: %w", err)
	}
	defer rows.Close()

	follows := []*domain.Follow{}
	for rows.Next() {
		var f domain.Follow
		if err := rows.Scan(&f.UserID, &f.TargetType, &f.TargetID, &f.TargetName, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan follow: %w", err)
		}
		follows = append(follows, &f)
	}
	return follows, rows.Err()
}

func (r *followRepository) CountFollowers(ctx context.Context, targetType domain.FollowTargetType, targetID string) (int, error) {
	query := `
		SELECT COUNT(*) FROM relationships
		WHERE related_entity_type = $1 AND related_entity_id = $2 AND relationship_type = 'follow'
	`
	var count int
	if err := r.db.QueryRowContext(ctx, query, string(targetType), targetID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count followers: %w", err)
	}
	return count, nil
}
