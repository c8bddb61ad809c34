package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/synthapp/synth/internal/domain"
)

// Friendships live in relationships with the sender in user_id and the
// receiver in related_entity_id.
const friendScope = `related_entity_type = 'user' AND relationship_type = 'friend'`

const friendshipSelect = `SELECT id, user_id, related_entity_id, status, created_at, updated_at FROM relationships`

type friendRepository struct {
	db *sql.DB
}

// NewFriendRepository creates a new PostgreSQL friend repository
func NewFriendRepository(db *sql.DB) domain.FriendRepository {
	return &friendRepository{db: db}
}

func scanFriendship(row rowScanner) (*domain.Friendship, error) {
	var f domain.Friendship
	if err := row.Scan(&f.ID, &f.UserID, &f.FriendID, &f.Status, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *friendRepository) queryFriendships(ctx context.Context, query string, args ...interface{}) ([]*domain.Friendship, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	friendships := []*domain.Friendship{}
	for rows.Next() {
		f, err := scanFriendship(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan friendship: %w", err)
		}
		friendships = append(friendships, f)
	}
	return friendships, rows.Err()
}

func (r *friendRepository) CreateFriendRequest(ctx context.Context, friendship *domain.Friendship) error {
	if friendship.ID == "" {
		friendship.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	friendship.Status = domain.FriendshipPending
	friendship.CreatedAt = now
	friendship.UpdatedAt = now

	query := `
		INSERT INTO relationships (
			id, user_id, related_entity_type, related_entity_id, relationship_type, status, created_at, updated_at
		) VALUES ($1, $2, 'user', $3, 'friend', $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		friendship.ID,
		friendship.UserID,
		friendship.FriendID,
		string(friendship.Status),
		friendship.CreatedAt,
		friendship.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return &domain.ErrConflict{Message: "friend request already sent"}
	}
	if err != nil {
		return fmt.Errorf("failed to create friend request: %w", err)
	}
	return nil
}

func (r *friendRepository) FindFriendship(ctx context.Context, userID string, otherID string) (*domain.Friendship, error) {
	query := friendshipSelect + ` WHERE ` + friendScope + `
		AND ((user_id = $1 AND related_entity_id = $2) OR (user_id = $3 AND related_entity_id = $4))
		ORDER BY updated_at DESC
		LIMIT 1`
	f, err := scanFriendship(r.db.QueryRowContext(ctx, query, userID, otherID, otherID, userID))
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFound("friendship", userID+":"+otherID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find friendship: %w", err)
	}
	return f, nil
}

func (r *friendRepository) GetFriendRequest(ctx context.Context, id string) (*domain.Friendship, error) {
	query := friendshipSelect + ` WHERE id = $1 AND ` + friendScope
	f, err := scanFriendship(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFound("friend request", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get friend request: %w", err)
	}
	return f, nil
}

func (r *friendRepository) UpdateFriendshipStatus(ctx context.Context, id string, status domain.FriendshipStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE relationships SET status = $2, updated_at = $3 WHERE id = $1 AND `+friendScope,
		id, string(status), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update friendship status: %w", err)
	}
	return rowsAffectedOrNotFound(result, domain.NewNotFound("friend request", id))
}

// DeleteFriendship removes the pair in both directions and succeeds when
// nothing matched
func (r *friendRepository) DeleteFriendship(ctx context.Context, userID string, otherID string) error {
	query := `DELETE FROM relationships WHERE ` + friendScope + `
		AND ((user_id = $1 AND related_entity_id = $2) OR (user_id = $3 AND related_entity_id = $4))`
	if _, err := r.db.ExecContext(ctx, query, userID, otherID, otherID, userID); err != nil {
		return fmt.Errorf("failed to delete friendship: %w", err)
	}
	return nil
}

func (r *friendRepository) ListFriendships(ctx context.Context, userID string) ([]*domain.Friendship, error) {
	query := friendshipSelect + ` WHERE ` + friendScope + ` AND status = 'accepted'
		AND (user_id = $1 OR related_entity_id = $2)
		ORDER BY updated_at DESC`
	friendships, err := r.queryFriendships(ctx, query, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friendships: %w", err)
	}
	return friendships, nil
}

// ListPendingRequests returns requests received by userID
func (r *friendRepository) ListPendingRequests(ctx context.Context, userID string) ([]*domain.Friendship, error) {
	query := friendshipSelect + ` WHERE ` + friendScope + ` AND status = 'pending'
		AND related_entity_id = $1
		ORDER BY created_at DESC`
	friendships, err := r.queryFriendships(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}
	return friendships, nil
}

// ListSuggestionCandidates aggregates friends of friends and co-interested
// users, leaving out existing or pending friends, blocks and the user.
func (r *friendRepository) ListSuggestionCandidates(ctx context.Context, userID string, limit int) ([]*domain.SuggestionCandidate, error) {
	query := `
		WITH my_friends AS (
			SELECT CASE WHEN user_id = $1 THEN related_entity_id ELSE user_id::text END AS friend_id
			FROM relationships
			WHERE ` + friendScope + ` AND status = 'accepted'
				AND (user_id = $1 OR related_entity_id = $2)
		),
		excluded AS (
			SELECT CASE WHEN user_id = $1 THEN related_entity_id ELSE user_id::text END AS id
			FROM relationships
			WHERE ` + friendScope + ` AND status IN ('accepted', 'pending')
				AND (user_id = $1 OR related_entity_id = $2)
			UNION SELECT blocked_id::text FROM user_blocks WHERE blocker_id = $1
			UNION SELECT blocker_id::text FROM user_blocks WHERE blocked_id = $1
			UNION SELECT $2
		),
		mutual AS (
			SELECT CASE WHEN r.related_entity_id = f.friend_id THEN r.user_id::text ELSE r.related_entity_id END AS candidate_id,
				COUNT(*) AS mutual_count
			FROM relationships r
			JOIN my_friends f ON r.user_id::text = f.friend_id OR r.related_entity_id = f.friend_id
			WHERE r.related_entity_type = 'user' AND r.relationship_type = 'friend' AND r.status = 'accepted'
			GROUP BY 1
		),
		shared AS (
			SELECT other.user_id::text AS candidate_id, COUNT(*) AS shared_count
			FROM event_interests mine
			JOIN event_interests other ON other.event_id = mine.event_id AND other.user_id <> mine.user_id
			WHERE mine.user_id = $1
			GROUP BY 1
		)
		SELECT c.candidate_id, COALESCE(m.mutual_count, 0), COALESCE(s.shared_count, 0)
		FROM (SELECT candidate_id FROM mutual UNION SELECT candidate_id FROM shared) c
		LEFT JOIN mutual m ON m.candidate_id = c.candidate_id
		LEFT JOIN shared s ON s.candidate_id = c.candidate_id
		WHERE c.candidate_id NOT IN (SELECT id FROM excluded)
		ORDER BY COALESCE(m.mutual_count, 0) * 2 + COALESCE(s.shared_count, 0) DESC, c.candidate_id
		LIMIT $3
	`
	rows, err := r.db.QueryContext(ctx, query, userID, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestion candidates: %w", err)
	}
	defer rows.Close()

	candidates := []*domain.SuggestionCandidate{}
	for rows.Next() {
		var c domain.SuggestionCandidate
		if err := rows.Scan(&c.UserID, &c.MutualCount, &c.SharedEvents); err != nil {
			return nil, fmt.Errorf("failed to scan suggestion candidate: %w", err)
		}
		candidates = append(candidates, &c)
	}
	return candidates, rows.Err()
}
