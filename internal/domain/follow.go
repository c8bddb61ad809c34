package domain

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -destination mocks/mock_follow_service.go -package mocks github.com/synthapp/synth/internal/domain FollowService
//go:generate mockgen -destination mocks/mock_follow_repository.go -package mocks github.com/synthapp/synth/internal/domain FollowRepository

type FollowTargetType string

const (
	FollowTargetArtist FollowTargetType = "artist"
	FollowTargetVenue  FollowTargetType = "venue"
)

func (t FollowTargetType) Valid() bool {
	return t == FollowTargetArtist || t == FollowTargetVenue
}

type Follow struct {
	UserID     string           `json:"user_id"`
	TargetType FollowTargetType `json:"target_type"`
	TargetID   string           `json:"target_id"`
	TargetName string           `json:"target_name,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

type FollowRequest struct {
	TargetType FollowTargetType `json:"target_type"`
	TargetID   string           `json:"target_id"`
	TargetName string           `json:"target_name,omitempty"`
}

func (r *FollowRequest) Validate() error {
	if !r.TargetType.Valid() {
		return NewValidationError(fmt.Sprintf("target_type must be artist or venue, got %q", r.TargetType))
	}
	if r.TargetID == "" {
		return NewValidationError("target_id is required")
	}
	return nil
}

type FollowService interface {
	Follow(ctx context.Context, userID string, req *FollowRequest) error
	Unfollow(ctx context.Context, userID string, targetType FollowTargetType, targetID string) error
	IsFollowing(ctx context.Context, userID string, targetType FollowTargetType, targetID string) (bool, error)
	ListFollows(ctx context.Context, userID string, targetType FollowTargetType) ([]*Follow, error)
	FollowerCount(ctx context.Context, targetType FollowTargetType, targetID string) (int, error)
}

type FollowRepository interface {
	// Follow is a no-op when the follow already exists
	Follow(ctx context.Context, follow *Follow) error
	Unfollow(ctx context.Context, userID string, targetType FollowTargetType, targetID string) error
	IsFollowing(ctx context.Context, userID string, targetType FollowTargetType, targetID string) (bool, error)
	ListFollows(ctx context.Context, userID string, targetType FollowTargetType) ([]*Follow, error)
	CountFollowers(ctx context.Context, targetType FollowTargetType, targetID string) (int, error)
}
