package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/pkg/logger"
	"github.com/synthapp/synth/pkg/mailer"
)

const matchNotificationTitle = "New Concert Buddy Match!"

type MatchingService struct {
	repo          domain.MatchingRepository
	events        domain.EventRepository
	profiles      domain.ProfileRepository
	notifications domain.NotificationService
	mailer        mailer.Mailer
	logger        logger.Logger
}

func NewMatchingService(
	repo domain.MatchingRepository,
	events domain.EventRepository,
	profiles domain.ProfileRepository,
	notifications domain.NotificationService,
	mailer mailer.Mailer,
	logger logger.Logger,
) *MatchingService {
	return &MatchingService{
		repo:          repo,
		events:        events,
		profiles:      profiles,
		notifications: notifications,
		mailer:        mailer,
		logger:        logger,
	}
}

// RecordSwipe stores the swipe and, when both users swiped interested on
// the same event, creates the match. Match detection problems are logged
// and never fail the swipe itself.
func (s *MatchingService) RecordSwipe(ctx context.Context, swiperID string, req *domain.SwipeRequest) (*domain.SwipeResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.SwipedUserID == swiperID {
		return nil, domain.NewValidationError("you cannot swipe on yourself")
	}

	swipe := &domain.Swipe{
		SwiperID:     swiperID,
		SwipedID:     req.SwipedUserID,
		EventID:      req.EventID,
		IsInterested: req.IsInterested,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.UpsertSwipe(ctx, swipe); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"user_id":  swiperID,
			"event_id": req.EventID,
		}).Error(fmt.Sprintf("Failed to record swipe: %v", err))
		return nil, fmt.Errorf("failed to record swipe: %w", err)
	}

	if !req.IsInterested {
		return &domain.SwipeResult{Matched: false}, nil
	}

	match, created, err := s.detectMatch(ctx, swipe)
	if err != nil {
		s.logger.WithFields(map[string]interface{}{
			"user_id":  swiperID,
			"event_id": req.EventID,
		}).Warn(fmt.Sprintf("Match detection failed: %v", err))
		return &domain.SwipeResult{Matched: false}, nil
	}
	if match == nil {
		return &domain.SwipeResult{Matched: false}, nil
	}

	if created {
		s.announceMatch(ctx, match)
	}
	return &domain.SwipeResult{Matched: true, Match: match}, nil
}

// detectMatch reports the match for a reciprocal interested swipe and whether
// this swipe created it.
func (s *MatchingService) detectMatch(ctx context.Context, swipe *domain.Swipe) (*domain.Match, bool, error) {
	reciprocal, err := s.repo.GetSwipe(ctx, swipe.SwipedID, swipe.SwiperID, swipe.EventID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get reciprocal swipe: %w", err)
	}
	if !reciprocal.IsInterested {
		return nil, false, nil
	}

	user1, user2 := domain.OrderedPair(swipe.SwiperID, swipe.SwipedID)
	match, created, err := s.repo.CreateMatch(ctx, &domain.Match{
		ID:        uuid.New().String(),
		User1ID:   user1,
		User2ID:   user2,
		EventID:   swipe.EventID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to create match: %w", err)
	}
	return match, created, nil
}

// announceMatch notifies and emails both users. Every step is best effort.
func (s *MatchingService) announceMatch(ctx context.Context, match *domain.Match) {
	title := ""
	if event, err := s.events.GetEvent(ctx, match.EventID); err == nil {
		title = event.Title
	} else {
		s.logger.WithField("event_id", match.EventID).Debug(fmt.Sprintf("Event lookup for match failed: %v", err))
	}
	match.EventTitle = title

	message := "You matched for an event"
	if title != "" {
		message = "You matched for " + title
	}

	profiles := map[string]*domain.Profile{}
	if list, err := s.profiles.GetProfiles(ctx, []string{match.User1ID, match.User2ID}); err == nil {
		for _, p := range list {
			profiles[p.UserID] = p
		}
	}

	for _, userID := range []string{match.User1ID, match.User2ID} {
		partnerID := match.PartnerID(userID)
		err := s.notifications.Create(ctx, &domain.Notification{
			UserID:  userID,
			Type:    domain.NotificationMatch,
			Title:   matchNotificationTitle,
			Message: message,
			Data: domain.JSONMap{
				"match_id":        match.ID,
				"event_id":        match.EventID,
				"matched_user_id": partnerID,
			},
		})
		if err != nil {
			s.logger.WithFields(map[string]interface{}{
				"user_id":  userID,
				"match_id": match.ID,
			}).Warn(fmt.Sprintf("Failed to create match notification: %v", err))
		}

		p := profiles[userID]
		if p == nil || p.Email == "" {
			continue
		}
		eventTitle := title
		if eventTitle == "" {
			eventTitle = "an event"
		}
		if err := s.mailer.SendMatch(p.Email, p.DisplayName(), profiles[partnerID].DisplayName(), eventTitle); err != nil {
			s.logger.WithField("user_id", userID).Warn(fmt.Sprintf("Failed to send match email: %v", err))
		}
	}
}

// PotentialMatches lists users interested in the event the caller has not
// swiped on yet, best compatibility first.
func (s *MatchingService) PotentialMatches(ctx context.Context, userID string, eventID string) ([]*domain.PotentialMatch, error) {
	ids, err := s.repo.ListPotentialMatchIDs(ctx, userID, eventID)
	if err != nil {
		s.logger.WithFields(map[string]interface{}{
			"user_id":  userID,
			"event_id": eventID,
		}).Error(fmt.Sprintf("Failed to list potential matches: %v", err))
		return nil, fmt.Errorf("failed to list potential matches: %w", err)
	}
	if len(ids) == 0 {
		return []*domain.PotentialMatch{}, nil
	}

	mine, err := s.repo.GetTasteProfile(ctx, userID)
	if err != nil {
		s.logger.WithField("user_id", userID).Warn(fmt.Sprintf("Failed to load taste profile: %v", err))
		mine = nil
	}

	profiles, err := s.profiles.GetProfiles(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}

	matches := make([]*domain.PotentialMatch, 0, len(profiles))
	for _, p := range profiles {
		if p.UserID == userID {
			continue
		}
		theirs, err := s.repo.GetTasteProfile(ctx, p.UserID)
		if err != nil {
			s.logger.WithField("user_id", p.UserID).Warn(fmt.Sprintf("Failed to load taste profile: %v", err))
			theirs = nil
		}
		matches = append(matches, &domain.PotentialMatch{
			Profile:            p,
			CompatibilityScore: domain.CompatibilityScore(mine, theirs),
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CompatibilityScore > matches[j].CompatibilityScore
	})
	return matches, nil
}

func (s *MatchingService) Compatibility(ctx context.Context, userID string, otherID string) (int, error) {
	a, err := s.repo.GetTasteProfile(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get taste profile: %w", err)
	}
	b, err := s.repo.GetTasteProfile(ctx, otherID)
	if err != nil {
		return 0, fmt.Errorf("failed to get taste profile: %w", err)
	}
	return domain.CompatibilityScore(a, b), nil
}

func (s *MatchingService) EventMatches(ctx context.Context, userID string, eventID string) ([]*domain.Match, error) {
	matches, err := s.repo.ListEventMatches(ctx, userID, eventID)
	if err != nil {
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to list event matches: %v", err))
		return nil, fmt.Errorf("failed to list event matches: %w", err)
	}
	return s.attachPartners(ctx, userID, matches)
}

func (s *MatchingService) ListMatches(ctx context.Context, userID string) ([]*domain.Match, error) {
	matches, err := s.repo.ListMatches(ctx, userID)
	if err != nil {
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to list matches: %v", err))
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return s.attachPartners(ctx, userID, matches)
}

func (s *MatchingService) attachPartners(ctx context.Context, userID string, matches []*domain.Match) ([]*domain.Match, error) {
	if len(matches) == 0 {
		return matches, nil
	}
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.PartnerID(userID))
	}
	profiles, err := s.profiles.GetProfiles(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}
	byID := make(map[string]*domain.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.UserID] = p
	}
	for _, m := range matches {
		m.Partner = byID[m.PartnerID(userID)]
	}
	return matches, nil
}

func (s *MatchingService) HasSwiped(ctx context.Context, swiperID string, swipedID string, eventID string) (bool, error) {
	if _, err := s.repo.GetSwipe(ctx, swiperID, swipedID, eventID); err != nil {
		if domain.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get swipe: %w", err)
	}
	return true, nil
}

func (s *MatchingService) MatchCount(ctx context.Context, userID string) (int, error) {
	count, err := s.repo.CountMatches(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return count, nil
}
