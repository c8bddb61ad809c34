package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/synthapp/synth/internal/domain"
)

const reviewSelect = `
	SELECT rv.id, rv.user_id, rv.event_id, rv.artist_id, rv.venue_id, rv.rating,
		rv.review_text, rv.was_there, rv.is_draft, rv.event_date, rv.created_at, rv.updated_at,
		COALESCE(e.title, ''), COALESCE(e.artist_name, ''), COALESCE(e.venue_name, ''),
		COALESCE(e.venue_city, ''), COALESCE(e.venue_state, '')
	FROM reviews rv
	LEFT JOIN events e ON e.id = rv.event_id
`

type reviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new PostgreSQL review repository
func NewReviewRepository(db *sql.DB) domain.ReviewRepository {
	return &reviewRepository{db: db}
}

func scanReview(row rowScanner) (*domain.Review, error) {
	var (
		rv        domain.Review
		eventDate sql.NullTime
	)
	err := row.Scan(
		&rv.ID,
		&rv.UserID,
		&rv.EventID,
		&rv.ArtistID,
		&rv.VenueID,
		&rv.Rating,
		&rv.ReviewText,
		&rv.WasThere,
		&rv.IsDraft,
		&eventDate,
		&rv.CreatedAt,
		&rv.UpdatedAt,
		&rv.EventTitle,
		&rv.ArtistName,
		&rv.VenueName,
		&rv.VenueCity,
		&rv.VenueState,
	)
	if err != nil {
		return nil, err
	}
	rv.EventDate = timePtr(eventDate)
	return &rv, nil
}

func (r *reviewRepository) queryReviews(ctx context.Context, query string, args ...interface{}) ([]*domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []*domain.Review{}
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func (r *reviewRepository) CreateReview(ctx context.Context, review *domain.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	review.CreatedAt = now
	review.UpdatedAt = now

	query := `
		INSERT INTO reviews (
			id, user_id, event_id, artist_id, venue_id, rating, review_text,
			was_there, is_draft, event_date, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query,
		review.ID,
		review.UserID,
		review.EventID,
		review.ArtistID,
		review.VenueID,
		review.Rating,
		review.ReviewText,
		review.WasThere,
		review.IsDraft,
		nullTime(review.EventDate),
		review.CreatedAt,
		review.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return &domain.ErrConflict{Message: "you have already reviewed this event"}
	}
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (r *reviewRepository) GetReview(ctx context.Context, id string) (*domain.Review, error) {
	review, err := scanReview(r.db.QueryRowContext(ctx, reviewSelect+` WHERE rv.id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFound("review", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return review, nil
}

// UpdateReview only touches the row when it belongs to review.UserID
func (r *reviewRepository) UpdateReview(ctx context.Context, review *domain.Review) error {
	review.UpdatedAt = time.Now().UTC()
	query := `
		UPDATE reviews SET
			rating = $3,
			review_text = $4,
			was_there = $5,
			is_draft = $6,
			updated_at = $7
		WHERE id = $1 AND user_id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		review.ID,
		review.UserID,
		review.Rating,
		review.ReviewText,
		review.WasThere,
		review.IsDraft,
		review.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	return rowsAffectedOrNotFound(result, domain.NewNotFound("review", review.ID))
}

func (r *reviewRepository) DeleteReview(ctx context.Context, id string, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return rowsAffectedOrNotFound(result, domain.NewNotFound("review", id))
}

func (r *reviewRepository) ListEventReviews(ctx context.Context, eventID string) ([]*domain.Review, error) {
	reviews, err := r.queryReviews(ctx,
		reviewSelect+` WHERE rv.event_id = $1 AND rv.is_draft = FALSE ORDER BY rv.created_at DESC`, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list event reviews: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) ListUserReviews(ctx context.Context, userID string, includeDrafts bool, limit int) ([]*domain.Review, error) {
	query := reviewSelect + ` WHERE rv.user_id = $1`
	args := []interface{}{userID}
	if !includeDrafts {
		query += ` AND rv.is_draft = FALSE`
	}
	query += ` ORDER BY rv.created_at DESC`
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	reviews, err := r.queryReviews(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list user reviews: %w", err)
	}
	return reviews, nil
}
