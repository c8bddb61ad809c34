package service

import (
	"context"
	"fmt"

	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/pkg/logger"
)

type InterestService struct {
	repo     domain.InterestRepository
	events   domain.EventRepository
	profiles domain.ProfileRepository
	logger   logger.Logger
}

func NewInterestService(repo domain.InterestRepository, events domain.EventRepository, profiles domain.ProfileRepository, logger logger.Logger) *InterestService {
	return &InterestService{
		repo:     repo,
		events:   events,
		profiles: profiles,
		logger:   logger,
	}
}

func (s *InterestService) SetInterest(ctx context.Context, userID string, eventID string) error {
	if _, err := s.events.GetEvent(ctx, eventID); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return fmt.Errorf("failed to get event: %w", err)
	}

	if err := s.repo.SetInterest(ctx, userID, eventID); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"user_id":  userID,
			"event_id": eventID,
		}).Error(fmt.Sprintf("Failed to set interest: %v", err))
		return fmt.Errorf("failed to set interest: %w", err)
	}
	return nil
}

func (s *InterestService) RemoveInterest(ctx context.Context, userID string, eventID string) error {
	if err := s.repo.RemoveInterest(ctx, userID, eventID); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"user_id":  userID,
			"event_id": eventID,
		}).Error(fmt.Sprintf("Failed to remove interest: %v", err))
		return fmt.Errorf("failed to remove interest: %w", err)
	}
	return nil
}

func (s *InterestService) IsInterested(ctx context.Context, userID string, eventID string) (bool, error) {
	ok, err := s.repo.IsInterested(ctx, userID, eventID)
	if err != nil {
		return false, fmt.Errorf("failed to check interest: %w", err)
	}
	return ok, nil
}

func (s *InterestService) ListInterestedEvents(ctx context.Context, userID string) ([]*domain.InterestedEvent, error) {
	events, err := s.repo.ListInterestedEvents(ctx, userID)
	if err != nil {
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to list interested events: %v", err))
		return nil, fmt.Errorf("failed to list interested events: %w", err)
	}
	return events, nil
}

func (s *InterestService) ListInterestedUsers(ctx context.Context, eventID string) ([]*domain.Profile, error) {
	ids, err := s.repo.ListInterestedUserIDs(ctx, eventID)
	if err != nil {
		s.logger.WithField("event_id", eventID).Error(fmt.Sprintf("Failed to list interested users: %v", err))
		return nil, fmt.Errorf("failed to list interested users: %w", err)
	}
	if len(ids) == 0 {
		return []*domain.Profile{}, nil
	}

	profiles, err := s.profiles.GetProfiles(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}
	return profiles, nil
}
