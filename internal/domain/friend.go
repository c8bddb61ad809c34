package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_friend_service.go -package mocks github.com/synthapp/synth/internal/domain FriendService
//go:generate mockgen -destination mocks/mock_friend_repository.go -package mocks github.com/synthapp/synth/internal/domain FriendRepository

type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "pending"
	FriendshipAccepted FriendshipStatus = "accepted"
	FriendshipDeclined FriendshipStatus = "declined"
)

const DefaultSuggestionLimit = 10

// Friendship is a user-to-user row of the relationships table. UserID sent
// the request and FriendID received it.
type Friendship struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	FriendID  string           `json:"friend_id"`
	Status    FriendshipStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Other returns the participant that is not userID
func (f *Friendship) Other(userID string) string {
	if f.UserID == userID {
		return f.FriendID
	}
	return f.UserID
}

type Friend struct {
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	Verified     bool      `json:"verified"`
	FriendshipID string    `json:"friendship_id"`
	Since        time.Time `json:"since"`
}

type FriendRequest struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// FriendSuggestion ranks a non-friend by mutual friends and shared interests
type FriendSuggestion struct {
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	AvatarURL    string `json:"avatar_url,omitempty"`
	MutualCount  int    `json:"mutual_friends"`
	SharedEvents int    `json:"shared_events"`
	Score        int    `json:"score"`
}

// SuggestionCandidate is the raw aggregate the suggestion ranking starts from
type SuggestionCandidate struct {
	UserID       string
	MutualCount  int
	SharedEvents int
}

// SuggestionScore weights mutual friends twice as much as shared events
func SuggestionScore(mutual, shared int) int {
	return mutual*2 + shared
}

type SendFriendRequest struct {
	UserID string `json:"user_id"`
}

func (r *SendFriendRequest) Validate() error {
	if r.UserID == "" {
		return NewValidationError("user_id is required")
	}
	return nil
}

type RespondFriendRequest struct {
	RequestID string `json:"request_id"`
}

func (r *RespondFriendRequest) Validate() error {
	if r.RequestID == "" {
		return NewValidationError("request_id is required")
	}
	return nil
}

type FriendService interface {
	SendFriendRequest(ctx context.Context, fromUserID string, toUserID string) (*Friendship, error)
	AcceptFriendRequest(ctx context.Context, userID string, requestID string) (*Friendship, error)
	DeclineFriendRequest(ctx context.Context, userID string, requestID string) error
	ListFriends(ctx context.Context, userID string) ([]*Friend, error)
	ListPendingRequests(ctx context.Context, userID string) ([]*FriendRequest, error)
	Unfriend(ctx context.Context, userID string, friendID string) error
	AreFriends(ctx context.Context, userID string, otherID string) (bool, error)
	FriendSuggestions(ctx context.Context, userID string, limit int) ([]*FriendSuggestion, error)
}

type FriendRepository interface {
	CreateFriendRequest(ctx context.Context, friendship *Friendship) error
	// FindFriendship looks the pair up in both directions
	FindFriendship(ctx context.Context, userID string, otherID string) (*Friendship, error)
	GetFriendRequest(ctx context.Context, id string) (*Friendship, error)
	UpdateFriendshipStatus(ctx context.Context, id string, status FriendshipStatus) error
	DeleteFriendship(ctx context.Context, userID string, otherID string) error
	ListFriendships(ctx context.Context, userID string) ([]*Friendship, error)
	ListPendingRequests(ctx context.Context, userID string) ([]*Friendship, error)
	ListSuggestionCandidates(ctx context.Context, userID string, limit int) ([]*SuggestionCandidate, error)
}
