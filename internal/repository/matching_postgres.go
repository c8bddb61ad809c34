package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/synthapp/synth/internal/domain"
)

const matchSelect = `
	SELECT m.id, m.user1_id, m.user2_id, m.event_id, m.created_at, COALESCE(e.title, '')
	FROM event_matches m
	LEFT JOIN events e ON e.id = m.event_id
`

type matchingRepository struct {
	db *sql.DB
}

// NewMatchingRepository creates a new PostgreSQL matching repository
func NewMatchingRepository(db *sql.DB) domain.MatchingRepository {
	return &matchingRepository{db: db}
}

func scanMatch(row rowScanner) (*domain.Match, error) {
	var m domain.Match
	if err := row.Scan(&m.ID, &m.User1ID, &m.User2ID, &m.EventID, &m.CreatedAt, &m.EventTitle); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *matchingRepository) queryMatches(ctx context.Context, query string, args ...interface{}) ([]*domain.Match, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := []*domain.Match{}
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (r *matchingRepository) UpsertSwipe(ctx context.Context, swipe *domain.Swipe) error {
	swipe.CreatedAt = time.Now().UTC()
	query := `
		INSERT INTO user_swipes (swiper_user_id, swiped_user_id, event_id, is_interested, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (swiper_user_id, swiped_user_id, event_id)
		DO UPDATE SET is_interested = EXCLUDED.is_interested, created_at = EXCLUDED.created_at
	`
	_, err := r.db.ExecContext(ctx, query, swipe.SwiperID, swipe.SwipedID, swipe.EventID, swipe.IsInterested, swipe.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record swipe: %w", err)
	}
	return nil
}

func (r *matchingRepository) GetSwipe(ctx context.Context, swiperID string, swipedID string, eventID string) (*domain.Swipe, error) {
	query := `
		SELECT swiper_user_id, swiped_user_id, event_id, is_interested, created_at
		FROM user_swipes
		WHERE swiper_user_id = $1 AND swiped_user_id = $2 AND event_id = $3
	`
	var s domain.Swipe
	err := r.db.QueryRowContext(ctx, query, swiperID, swipedID, eventID).
		Scan(&s.SwiperID, &s.SwipedID, &s.EventID, &s.IsInterested, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFound("swipe", swiperID+":"+swipedID+":"+eventID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get swipe: %w", err)
	}
	return &s, nil
}

// CreateMatch stores the pair in canonical order. created is false when the
// pair had already matched for the event, in which case the existing row is
// returned.
func (r *matchingRepository) CreateMatch(ctx context.Context, match *domain.Match) (*domain.Match, bool, error) {
	match.User1ID, match.User2ID = domain.OrderedPair(match.User1ID, match.User2ID)
	if match.ID == "" {
		match.ID = uuid.New().String()
	}
	match.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO event_matches (id, user1_id, user2_id, event_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user1_id, user2_id, event_id) DO NOTHING
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, match.ID, match.User1ID, match.User2ID, match.EventID, match.CreatedAt).
		Scan(&match.ID, &match.CreatedAt)
	if err == nil {
		return match, true, nil
	}
	if err != sql.ErrNoRows {
		return nil, false, fmt.Errorf("failed to create match: %w", err)
	}

	existing, err := scanMatch(r.db.QueryRowContext(ctx,
		matchSelect+` WHERE m.user1_id = $1 AND m.user2_id = $2 AND m.event_id = $3`,
		match.User1ID, match.User2ID, match.EventID))
	if err != nil {
		return nil, false, fmt.Errorf("failed to load existing match: %w", err)
	}
	return existing, false, nil
}

// ListPotentialMatchIDs returns users interested in the event that the user
// has not swiped on yet for it, with blocks removed in both directions.
func (r *matchingRepository) ListPotentialMatchIDs(ctx context.Context, userID string, eventID string) ([]string, error) {
	query := `
		SELECT ei.user_id
		FROM event_interests ei
		WHERE ei.event_id = $2
			AND ei.user_id <> $1
			AND NOT EXISTS (
				SELECT 1 FROM user_swipes s
				WHERE s.swiper_user_id = $1 AND s.swiped_user_id = ei.user_id AND s.event_id = $2
			)
			AND NOT EXISTS (
				SELECT 1 FROM user_blocks b
				WHERE (b.blocker_id = $1 AND b.blocked_id = ei.user_id)
					OR (b.blocker_id = ei.user_id AND b.blocked_id = $1)
			)
		ORDER BY ei.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list potential matches: %w", err)
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

func (r *matchingRepository) ListEventMatches(ctx context.Context, userID string, eventID string) ([]*domain.Match, error) {
	matches, err := r.queryMatches(ctx,
		matchSelect+` WHERE m.event_id = $2 AND (m.user1_id = $1 OR m.user2_id = $1) ORDER BY m.created_at DESC`,
		userID, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list event matches: %w", err)
	}
	return matches, nil
}

func (r *matchingRepository) ListMatches(ctx context.Context, userID string) ([]*domain.Match, error) {
	matches, err := r.queryMatches(ctx,
		matchSelect+` WHERE m.user1_id = $1 OR m.user2_id = $1 ORDER BY m.created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

func (r *matchingRepository) CountMatches(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM event_matches WHERE user1_id = $1 OR user2_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return count, nil
}

// GetTasteProfile collects the artists and genres of events the user is
// interested in or reviewed
func (r *matchingRepository) GetTasteProfile(ctx context.Context, userID string) (*domain.TasteProfile, error) {
	query := `
		WITH engaged AS (
			SELECT event_id FROM event_interests WHERE user_id = $1
			UNION
			SELECT event_id FROM reviews WHERE user_id = $1
		)
		SELECT
			COALESCE(ARRAY(
				SELECT DISTINCT e.artist_name FROM events e JOIN engaged g ON g.event_id = e.id
				WHERE e.artist_name <> ''
			), '{}'),
			COALESCE(ARRAY(
				SELECT DISTINCT genre FROM events e JOIN engaged g ON g.event_id = e.id, unnest(e.genres) AS genre
			), '{}')
	`
	var artists, genres pq.StringArray
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&artists, &genres); err != nil {
		return nil, fmt.Errorf("failed to get taste profile: %w", err)
	}
	return &domain.TasteProfile{Artists: []string(artists), Genres: []string(genres)}, nil
}
