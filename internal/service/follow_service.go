package service

import (
	"context"
	"fmt"
	"time"

	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/pkg/logger"
)

type FollowService struct {
	repo   domain.FollowRepository
	logger logger.Logger
}

func NewFollowService(repo domain.FollowRepository, logger logger.Logger) *FollowService {
	return &FollowService{repo: repo, logger: logger}
}

func (s *FollowService) Follow(ctx context.Context, userID string, req *domain.FollowRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	follow := &domain.Follow{
		UserID:     userID,
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
		TargetName: req.TargetName,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Follow(ctx, follow); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"user_id":   userID,
			"target_id": req.TargetID,
		}).Error(fmt.Sprintf("Failed to follow: %v", err))
		return fmt.Errorf("failed to follow: %w", err)
	}
	return nil
}

func (s *FollowService) Unfollow(ctx context.Context, userID string, targetType domain.FollowTargetType, targetID string) error {
	if !targetType.Valid() {
		return domain.NewValidationError("target_type must be artist or venue")
	}
	if err := s.repo.Unfollow(ctx, userID, targetType, targetID); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"user_id":   userID,
			"target_id": targetID,
		}).Error(fmt.Sprintf("Failed to unfollow: %v", err))
		return fmt.Errorf("failed to unfollow: %w", err)
	}
	return nil
}

func (s *FollowService) IsFollowing(ctx context.Context, userID string, targetType domain.FollowTargetType, targetID string) (bool, error) {
	ok, err := s.repo.IsFollowing(ctx, userID, targetType, targetID)
	if err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}
	return ok, nil
}

// ListFollows lists every follow of the user when targetType is empty
func (s *FollowService) ListFollows(ctx context.Context, userID string, targetType domain.FollowTargetType) ([]*domain.Follow, error) {
	if targetType != "" && !targetType.Valid() {
		return nil, domain.NewValidationError("target_type must be artist or venue")
	}
	follows, err := s.repo.ListFollows(ctx, userID, targetType)
	if err != nil {
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to list follows: %v", err))
		return nil, fmt.Errorf("failed to list follows: %w", err)
	}
	return follows, nil
}

func (s *FollowService) FollowerCount(ctx context.Context, targetType domain.FollowTargetType, targetID string) (int, error) {
	count, err := s.repo.CountFollowers(ctx, targetType, targetID)
	if err != nil {
		return 0, fmt.Errorf("failed to count followers: %w", err)
	}
	return count, nil
}
