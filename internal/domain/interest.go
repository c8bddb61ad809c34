package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_interest_service.go -package mocks github.com/synthapp/synth/internal/domain InterestService
//go:generate mockgen -destination mocks/mock_interest_repository.go -package mocks github.com/synthapp/synth/internal/domain InterestRepository

// Interest marks a user as wanting to attend an event
type Interest struct {
	UserID    string    `json:"user_id"`
	EventID   string    `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InterestedEvent is an event the user marked, newest interest first
type InterestedEvent struct {
	Event        *Event    `json:"event"`
	InterestedAt time.Time `json:"interested_at"`
}

type InterestRequest struct {
	EventID string `json:"event_id"`
}

func (r *InterestRequest) Validate() error {
	if r.EventID == "" {
		return NewValidationError("event_id is required")
	}
	return nil
}

type InterestService interface {
	SetInterest(ctx context.Context, userID string, eventID string) error
	RemoveInterest(ctx context.Context, userID string, eventID string) error
	IsInterested(ctx context.Context, userID string, eventID string) (bool, error)
	ListInterestedEvents(ctx context.Context, userID string) ([]*InterestedEvent, error)
	ListInterestedUsers(ctx context.Context, eventID string) ([]*Profile, error)
}

type InterestRepository interface {
	// SetInterest inserts the interest or refreshes updated_at when it exists
	SetInterest(ctx context.Context, userID string, eventID string) error
	RemoveInterest(ctx context.Context, userID string, eventID string) error
	IsInterested(ctx context.Context, userID string, eventID string) (bool, error)
	ListInterestedEvents(ctx context.Context, userID string) ([]*InterestedEvent, error)
	ListInterestedUserIDs(ctx context.Context, eventID string) ([]string, error)
}
