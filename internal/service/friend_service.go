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

const maxSuggestionLimit = 50

type FriendService struct {
	repo          domain.FriendRepository
	profiles      domain.ProfileRepository
	moderation    domain.ModerationRepository
	notifications domain.NotificationService
	mailer        mailer.Mailer
	logger        logger.Logger
}

func NewFriendService(
	repo domain.FriendRepository,
	profiles domain.ProfileRepository,
	moderation domain.ModerationRepository,
	notifications domain.NotificationService,
	mailer mailer.Mailer,
	logger logger.Logger,
) *FriendService {
	return &FriendService{
		repo:          repo,
		profiles:      profiles,
		moderation:    moderation,
		notifications: notifications,
		mailer:        mailer,
		logger:        logger,
	}
}

func (s *FriendService) SendFriendRequest(ctx context.Context, fromUserID string, toUserID string) (*domain.Friendship, error) {
	if fromUserID == toUserID {
		return nil, domain.NewValidationError("you cannot send a friend request to yourself")
	}

	blocked, err := s.moderation.IsBlocked(ctx, fromUserID, toUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check block: %w", err)
	}
	if blocked {
		return nil, domain.ErrForbidden
	}

	existing, err := s.repo.FindFriendship(ctx, fromUserID, toUserID)
	switch {
	case err == nil:
		switch existing.Status {
		case domain.FriendshipAccepted:
			return nil, &domain.ErrConflict{Message: "you are already friends"}
		case domain.FriendshipPending:
			return nil, &domain.ErrConflict{Message: "friend request already sent"}
		}
		// a declined request can be sent again
		if err := s.repo.DeleteFriendship(ctx, fromUserID, toUserID); err != nil {
			return nil, fmt.Errorf("failed to clear declined request: %w", err)
		}
	case !domain.IsNotFound(err):
		return nil, fmt.Errorf("failed to look up friendship: %w", err)
	}

	receiver, err := s.profiles.GetProfile(ctx, toUserID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	now := time.Now().UTC()
	friendship := &domain.Friendship{
		ID:        uuid.New().String(),
		UserID:    fromUserID,
		FriendID:  toUserID,
		Status:    domain.FriendshipPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateFriendRequest(ctx, friendship); err != nil {
		if domain.IsConflict(err) {
			return nil, err
		}
		s.logger.WithFields(map[string]interface{}{
			"user_id":   fromUserID,
			"friend_id": toUserID,
		}).Error(fmt.Sprintf("Failed to create friend request: %v", err))
		return nil, fmt.Errorf("failed to create friend request: %w", err)
	}

	sender := s.profileOrNil(ctx, fromUserID)
	s.notify(ctx, &domain.Notification{
		UserID:  toUserID,
		Type:    domain.NotificationFriendRequest,
		Title:   "New Friend Request",
		Message: fmt.Sprintf("%s sent you a friend request", sender.DisplayName()),
		Data:    domain.JSONMap{"sender_id": fromUserID, "request_id": friendship.ID},
	})
	if receiver.Email != "" {
		if err := s.mailer.SendFriendRequest(receiver.Email, receiver.DisplayName(), sender.DisplayName()); err != nil {
			s.logger.WithField("user_id", toUserID).Warn(fmt.Sprintf("Failed to send friend request email: %v", err))
		}
	}

	return friendship, nil
}

// pendingRequestFor loads a request addressed to userID that is still pending
func (s *FriendService) pendingRequestFor(ctx context.Context, userID string, requestID string) (*domain.Friendship, error) {
	request, err := s.repo.GetFriendRequest(ctx, requestID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get friend request: %w", err)
	}
	if request.FriendID != userID {
		return nil, domain.ErrForbidden
	}
	if request.Status != domain.FriendshipPending {
		return nil, domain.NewValidationError(fmt.Sprintf("friend request is already %s", request.Status))
	}
	return request, nil
}

func (s *FriendService) AcceptFriendRequest(ctx context.Context, userID string, requestID string) (*domain.Friendship, error) {
	request, err := s.pendingRequestFor(ctx, userID, requestID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateFriendshipStatus(ctx, requestID, domain.FriendshipAccepted); err != nil {
		s.logger.WithField("request_id", requestID).Error(fmt.Sprintf("Failed to accept friend request: %v", err))
		return nil, fmt.Errorf("failed to accept friend request: %w", err)
	}
	request.Status = domain.FriendshipAccepted
	request.UpdatedAt = time.Now().UTC()

	sender := s.profileOrNil(ctx, request.UserID)
	receiver := s.profileOrNil(ctx, userID)
	s.notify(ctx, &domain.Notification{
		UserID:  request.UserID,
		Type:    domain.NotificationFriendAccepted,
		Title:   "Friend Request Accepted",
		Message: fmt.Sprintf("%s accepted your friend request", receiver.DisplayName()),
		Data:    domain.JSONMap{"friend_id": userID},
	})
	if sender != nil && sender.Email != "" {
		if err := s.mailer.SendFriendAccepted(sender.Email, sender.DisplayName(), receiver.DisplayName()); err != nil {
			s.logger.WithField("user_id", request.UserID).Warn(fmt.Sprintf("Failed to send friend accepted email: %v", err))
		}
	}

	return request, nil
}

func (s *FriendService) DeclineFriendRequest(ctx context.Context, userID string, requestID string) error {
	if _, err := s.pendingRequestFor(ctx, userID, requestID); err != nil {
		return err
	}
	if err := s.repo.UpdateFriendshipStatus(ctx, requestID, domain.FriendshipDeclined); err != nil {
		s.logger.WithField("request_id", requestID).Error(fmt.Sprintf("Failed to decline friend request: %v", err))
		return fmt.Errorf("failed to decline friend request: %w", err)
	}
	return nil
}

// ListFriends returns one entry per friend, most recently updated first
func (s *FriendService) ListFriends(ctx context.Context, userID string) ([]*domain.Friend, error) {
	friendships, err := s.repo.ListFriendships(ctx, userID)
	if err != nil {
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to list friendships: %v", err))
		return nil, fmt.Errorf("failed to list friendships: %w", err)
	}

	seen := make(map[string]struct{}, len(friendships))
	unique := make([]*domain.Friendship, 0, len(friendships))
	ids := make([]string, 0, len(friendships))
	for _, f := range friendships {
		other := f.Other(userID)
		if _, ok := seen[other]; ok {
			continue
		}
		seen[other] = struct{}{}
		unique = append(unique, f)
		ids = append(ids, other)
	}

	profiles, err := s.profileMap(ctx, ids)
	if err != nil {
		return nil, err
	}

	friends := make([]*domain.Friend, 0, len(unique))
	for _, f := range unique {
		other := f.Other(userID)
		p := profiles[other]
		friend := &domain.Friend{
			UserID:       other,
			Name:         p.DisplayName(),
			FriendshipID: f.ID,
			Since:        f.UpdatedAt,
		}
		if p != nil {
			friend.AvatarURL = p.AvatarURL
			friend.Verified = p.Verified
		}
		friends = append(friends, friend)
	}
	return friends, nil
}

func (s *FriendService) ListPendingRequests(ctx context.Context, userID string) ([]*domain.FriendRequest, error) {
	pending, err := s.repo.ListPendingRequests(ctx, userID)
	if err != nil {
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to list pending requests: %v", err))
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}

	ids := make([]string, 0, len(pending))
	for _, f := range pending {
		ids = append(ids, f.UserID)
	}
	profiles, err := s.profileMap(ctx, ids)
	if err != nil {
		return nil, err
	}

	requests := make([]*domain.FriendRequest, 0, len(pending))
	for _, f := range pending {
		p := profiles[f.UserID]
		req := &domain.FriendRequest{
			ID:         f.ID,
			SenderID:   f.UserID,
			SenderName: p.DisplayName(),
			CreatedAt:  f.CreatedAt,
		}
		if p != nil {
			req.AvatarURL = p.AvatarURL
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func (s *FriendService) Unfriend(ctx context.Context, userID string, friendID string) error {
	if err := s.repo.DeleteFriendship(ctx, userID, friendID); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"user_id":   userID,
			"friend_id": friendID,
		}).Error(fmt.Sprintf("Failed to remove friendship: %v", err))
		return fmt.Errorf("failed to remove friendship: %w", err)
	}
	return nil
}

func (s *FriendService) AreFriends(ctx context.Context, userID string, otherID string) (bool, error) {
	f, err := s.repo.FindFriendship(ctx, userID, otherID)
	if err != nil {
		if domain.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up friendship: %w", err)
	}
	return f.Status == domain.FriendshipAccepted, nil
}

// FriendSuggestions ranks non-friends by mutual friends and shared
// interested events. Friends, pending requests and blocks are excluded
// by the repository query.
func (s *FriendService) FriendSuggestions(ctx context.Context, userID string, limit int) ([]*domain.FriendSuggestion, error) {
	if limit <= 0 {
		limit = domain.DefaultSuggestionLimit
	}
	if limit > maxSuggestionLimit {
		limit = maxSuggestionLimit
	}

	candidates, err := s.repo.ListSuggestionCandidates(ctx, userID, limit)
	if err != nil {
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to list suggestion candidates: %v", err))
		return nil, fmt.Errorf("failed to list suggestion candidates: %w", err)
	}

	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.UserID)
	}
	profiles, err := s.profileMap(ctx, ids)
	if err != nil {
		return nil, err
	}

	suggestions := make([]*domain.FriendSuggestion, 0, len(candidates))
	for _, c := range candidates {
		if c.UserID == userID {
			continue
		}
		p := profiles[c.UserID]
		suggestion := &domain.FriendSuggestion{
			UserID:       c.UserID,
			Name:         p.DisplayName(),
			MutualCount:  c.MutualCount,
			SharedEvents: c.SharedEvents,
			Score:        domain.SuggestionScore(c.MutualCount, c.SharedEvents),
		}
		if p != nil {
			suggestion.AvatarURL = p.AvatarURL
		}
		suggestions = append(suggestions, suggestion)
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	return suggestions, nil
}

func (s *FriendService) profileMap(ctx context.Context, ids []string) (map[string]*domain.Profile, error) {
	out := make(map[string]*domain.Profile, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	profiles, err := s.profiles.GetProfiles(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}
	for _, p := range profiles {
		out[p.UserID] = p
	}
	return out, nil
}

// profileOrNil is used for display names only; a nil profile renders as "Unknown User"
func (s *FriendService) profileOrNil(ctx context.Context, userID string) *domain.Profile {
	p, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		s.logger.WithField("user_id", userID).Debug(fmt.Sprintf("Profile lookup failed: %v", err))
		return nil
	}
	return p
}

func (s *FriendService) notify(ctx context.Context, n *domain.Notification) {
	if err := s.notifications.Create(ctx, n); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"user_id": n.UserID,
			"type":    n.Type,
		}).Warn(fmt.Sprintf("Failed to create notification: %v", err))
	}
}
