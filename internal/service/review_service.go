package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/pkg/logger"
)

type ReviewService struct {
	repo     domain.ReviewRepository
	events   domain.EventRepository
	passport domain.PassportService
	logger   logger.Logger
}

func NewReviewService(repo domain.ReviewRepository, events domain.EventRepository, passport domain.PassportService, logger logger.Logger) *ReviewService {
	return &ReviewService{
		repo:     repo,
		events:   events,
		passport: passport,
		logger:   logger,
	}
}

func (s *ReviewService) CreateReview(ctx context.Context, userID string, req *domain.CreateReviewRequest) (*domain.Review, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	event, err := s.events.GetEvent(ctx, req.EventID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	now := time.Now().UTC()
	eventDate := event.EventDate
	review := &domain.Review{
		ID:         uuid.New().String(),
		UserID:     userID,
		EventID:    event.ID,
		ArtistID:   event.ArtistID,
		VenueID:    event.VenueID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		WasThere:   req.WasThere,
		IsDraft:    req.IsDraft,
		EventDate:  &eventDate,
		CreatedAt:  now,
		UpdatedAt:  now,
		EventTitle: event.Title,
		ArtistName: event.ArtistName,
		VenueName:  event.VenueName,
		VenueCity:  event.VenueCity,
		VenueState: event.VenueState,
	}

	if err := s.repo.CreateReview(ctx, review); err != nil {
		if domain.IsConflict(err) {
			return nil, err
		}
		s.logger.WithFields(map[string]interface{}{
			"user_id":  userID,
			"event_id": event.ID,
		}).Error(fmt.Sprintf("Failed to create review: %v", err))
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	s.unlockStamps(ctx, review, event)
	return review, nil
}

func (s *ReviewService) UpdateReview(ctx context.Context, userID string, req *domain.UpdateReviewRequest) (*domain.Review, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	review, err := s.repo.GetReview(ctx, req.ID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	if review.UserID != userID {
		return nil, domain.ErrForbidden
	}

	stampedBefore := review.Published() && review.WasThere
	req.Apply(review)
	review.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateReview(ctx, review); err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithField("review_id", review.ID).Error(fmt.Sprintf("Failed to update review: %v", err))
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	if !stampedBefore && review.Published() && review.WasThere {
		event, err := s.events.GetEvent(ctx, review.EventID)
		if err != nil {
			s.logger.WithField("review_id", review.ID).Warn(fmt.Sprintf("Failed to load event for passport unlock: %v", err))
		} else {
			s.unlockStamps(ctx, review, event)
		}
	}
	return review, nil
}

// unlockStamps runs after the review is stored; a failure never fails the review
func (s *ReviewService) unlockStamps(ctx context.Context, review *domain.Review, event *domain.Event) {
	if !review.Published() || !review.WasThere {
		return
	}
	if err := s.passport.UnlockFromReview(ctx, review, event); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"user_id":   review.UserID,
			"review_id": review.ID,
		}).Warn(fmt.Sprintf("Failed to unlock passport stamps: %v", err))
	}
}

func (s *ReviewService) DeleteReview(ctx context.Context, userID string, reviewID string) error {
	if err := s.repo.DeleteReview(ctx, reviewID, userID); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		s.logger.WithField("review_id", reviewID).Error(fmt.Sprintf("Failed to delete review: %v", err))
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}

func (s *ReviewService) ListEventReviews(ctx context.Context, eventID string) ([]*domain.Review, error) {
	reviews, err := s.repo.ListEventReviews(ctx, eventID)
	if err != nil {
		s.logger.WithField("event_id", eventID).Error(fmt.Sprintf("Failed to list event reviews: %v", err))
		return nil, fmt.Errorf("failed to list event reviews: %w", err)
	}
	return reviews, nil
}

// ListUserReviews includes drafts only when users look at their own reviews
func (s *ReviewService) ListUserReviews(ctx context.Context, viewerID string, userID string) ([]*domain.Review, error) {
	reviews, err := s.repo.ListUserReviews(ctx, userID, viewerID == userID, 0)
	if err != nil {
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to list user reviews: %v", err))
		return nil, fmt.Errorf("failed to list user reviews: %w", err)
	}
	return reviews, nil
}
