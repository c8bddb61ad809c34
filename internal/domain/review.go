package domain

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
)

//go:generate mockgen -destination mocks/mock_review_service.go -package mocks github.com/synthapp/synth/internal/domain ReviewService
//go:generate mockgen -destination mocks/mock_review_repository.go -package mocks github.com/synthapp/synth/internal/domain ReviewRepository

const (
	MinRating       = 0.5
	MaxRating       = 5.0
	MaxReviewLength = 5000
)

type Review struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	EventID    string     `json:"event_id"`
	ArtistID   string     `json:"artist_id,omitempty"`
	VenueID    string     `json:"venue_id,omitempty"`
	Rating     float64    `json:"rating"`
	ReviewText string     `json:"review_text,omitempty"`
	WasThere   bool       `json:"was_there"`
	IsDraft    bool       `json:"is_draft"`
	EventDate  *time.Time `json:"event_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// joined from events, read only
	EventTitle string `json:"event_title,omitempty"`
	ArtistName string `json:"artist_name,omitempty"`
	VenueName  string `json:"venue_name,omitempty"`
	VenueCity  string `json:"venue_city,omitempty"`
	VenueState string `json:"venue_state,omitempty"`
}

// Published reports whether the review is visible to other users
func (r *Review) Published() bool {
	return !r.IsDraft
}

// ValidateRating accepts ratings from 0.5 to 5 in half steps
func ValidateRating(rating float64) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("rating must be between %.1f and %.1f", MinRating, MaxRating)
	}
	if math.Mod(rating*2, 1) != 0 {
		return fmt.Errorf("rating must be a multiple of 0.5")
	}
	return nil
}

type CreateReviewRequest struct {
	EventID    string  `json:"event_id"`
	Rating     float64 `json:"rating"`
	ReviewText string  `json:"review_text"`
	WasThere   bool    `json:"was_there"`
	IsDraft    bool    `json:"is_draft"`
}

func (r *CreateReviewRequest) Validate() error {
	if r.EventID == "" {
		return NewValidationError("event_id is required")
	}
	if err := ValidateRating(r.Rating); err != nil {
		return NewValidationError(err.Error())
	}
	r.ReviewText = strings.TrimSpace(r.ReviewText)
	if len(r.ReviewText) > MaxReviewLength {
		return NewValidationError(fmt.Sprintf("review_text length must be at most %d", MaxReviewLength))
	}
	return nil
}

type UpdateReviewRequest struct {
	ID         string   `json:"id"`
	Rating     *float64 `json:"rating,omitempty"`
	ReviewText *string  `json:"review_text,omitempty"`
	WasThere   *bool    `json:"was_there,omitempty"`
	IsDraft    *bool    `json:"is_draft,omitempty"`
}

func (r *UpdateReviewRequest) Validate() error {
	if r.ID == "" {
		return NewValidationError("id is required")
	}
	if r.Rating != nil {
		if err := ValidateRating(*r.Rating); err != nil {
			return NewValidationError(err.Error())
		}
	}
	if r.ReviewText != nil {
		text := strings.TrimSpace(*r.ReviewText)
		if len(text) > MaxReviewLength {
			return NewValidationError(fmt.Sprintf("review_text length must be at most %d", MaxReviewLength))
		}
		r.ReviewText = &text
	}
	return nil
}

// Apply copies the set fields onto review
func (r *UpdateReviewRequest) Apply(review *Review) {
	if r.Rating != nil {
		review.Rating = *r.Rating
	}
	if r.ReviewText != nil {
		review.ReviewText = *r.ReviewText
	}
	if r.WasThere != nil {
		review.WasThere = *r.WasThere
	}
	if r.IsDraft != nil {
		review.IsDraft = *r.IsDraft
	}
}

type ReviewService interface {
	CreateReview(ctx context.Context, userID string, req *CreateReviewRequest) (*Review, error)
	UpdateReview(ctx context.Context, userID string, req *UpdateReviewRequest) (*Review, error)
	DeleteReview(ctx context.Context, userID string, reviewID string) error
	ListEventReviews(ctx context.Context, eventID string) ([]*Review, error)
	ListUserReviews(ctx context.Context, viewerID string, userID string) ([]*Review, error)
}

type ReviewRepository interface {
	CreateReview(ctx context.Context, review *Review) error
	GetReview(ctx context.Context, id string) (*Review, error)
	UpdateReview(ctx context.Context, review *Review) error
	// DeleteReview only removes the row when it belongs to userID
	DeleteReview(ctx context.Context, id string, userID string) error
	ListEventReviews(ctx context.Context, eventID string) ([]*Review, error)
	ListUserReviews(ctx context.Context, userID string, includeDrafts bool, limit int) ([]*Review, error)
}
