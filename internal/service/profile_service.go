package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/pkg/logger"
)

type ProfileService struct {
	repo         domain.ProfileRepository
	verification domain.VerificationService
	logger       logger.Logger
}

func NewProfileService(repo domain.ProfileRepository, verification domain.VerificationService, logger logger.Logger) *ProfileService {
	return &ProfileService{
		repo:         repo,
		verification: verification,
		logger:       logger,
	}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to get profile: %v", err))
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

func (s *ProfileService) EnsureProfile(ctx context.Context, userID string, email string) (*domain.Profile, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !domain.IsNotFound(err) {
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to get profile: %v", err))
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	now := time.Now().UTC()
	profile = &domain.Profile{
		UserID:      userID,
		Email:       email,
		AccountType: domain.AccountTypeUser,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreateProfile(ctx, profile); err != nil {
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to create profile: %v", err))
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	// a concurrent first request may have won the insert
	created, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to reload profile: %v", err))
		return nil, fmt.Errorf("failed to reload profile: %w", err)
	}
	s.logger.WithField("user_id", userID).Info("Created profile")
	return created, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, req *domain.UpdateProfileRequest) (*domain.Profile, error) {
	if err := req.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	req.Apply(profile)
	profile.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateProfile(ctx, profile); err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to update profile: %v", err))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	// profile fields feed the trust score
	score, err := s.verification.RefreshTrustScore(ctx, userID)
	if err != nil {
		s.logger.WithField("user_id", userID).Warn(fmt.Sprintf("Failed to refresh trust score: %v", err))
		return profile, nil
	}
	profile.TrustScore = score.Score
	profile.Verified = score.Verified
	criteria := score.Criteria
	profile.VerificationCriteria = &criteria

	return profile, nil
}

// usernameSampleSize bounds how many taken names are read to build suggestions
const usernameSampleSize = 1000

func (s *ProfileService) CheckUsername(ctx context.Context, userID string, username string) (*domain.UsernameAvailability, error) {
	sanitized := domain.SanitizeUsername(username)
	result := &domain.UsernameAvailability{Username: sanitized}

	if err := domain.ValidateUsername(username); err != nil {
		var verr domain.ValidationError
		if errors.As(err, &verr) {
			result.Reason = verr.Message
		}
		return result, nil
	}

	taken, err := s.repo.UsernameTaken(ctx, sanitized, userID)
	if err != nil {
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to check username: %v", err))
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if !taken {
		result.Available = true
		return result, nil
	}

	result.Reason = "this username is already taken"
	suggestions, err := s.suggestUsernames(ctx, userID, sanitized)
	if err != nil {
		s.logger.WithField("user_id", userID).Warn(fmt.Sprintf("Failed to suggest usernames: %v", err))
		return result, nil
	}
	result.Suggestions = suggestions
	return result, nil
}

// suggestUsernames derives candidates from the caller's display name, or from
// the requested username when the profile has no name
func (s *ProfileService) suggestUsernames(ctx context.Context, userID string, requested string) ([]string, error) {
	name := requested
	if profile, err := s.repo.GetProfile(ctx, userID); err == nil && domain.BaseUsernameFromName(profile.Name) != "" {
		name = profile.Name
	}
	base := domain.BaseUsernameFromName(name)
	if base == "" {
		return []string{}, nil
	}

	existing, err := s.repo.ListUsernamesWithPrefix(ctx, base, userID, usernameSampleSize)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(existing)+1)
	for _, u := range existing {
		taken[u] = true
	}
	taken[requested] = true
	return domain.SuggestUsernames(name, taken, domain.UsernameSuggestionCount), nil
}

func (s *ProfileService) UpdateUsername(ctx context.Context, userID string, username string) (*domain.Profile, error) {
	if err := domain.ValidateUsername(username); err != nil {
		return nil, err
	}
	sanitized := domain.SanitizeUsername(username)

	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.Username != nil && *profile.Username == sanitized {
		return profile, nil
	}

	now := time.Now().UTC()
	if remaining := domain.UsernameCooldownRemaining(profile.UsernameChangedAt, now); remaining > 0 {
		days := domain.CooldownDays(remaining)
		unit := "days"
		if days == 1 {
			unit = "day"
		}
		return nil, domain.NewValidationError(fmt.Sprintf(
			"you can only change your username once every %d days, you can change it again in %d %s",
			int(domain.UsernameChangeCooldown.Hours()/24), days, unit,
		))
	}

	taken, err := s.repo.UsernameTaken(ctx, sanitized, userID)
	if err != nil {
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to check username: %v", err))
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, &domain.ErrConflict{Message: "this username is already taken"}
	}

	// the unique index settles a race between the check and the write
	if err := s.repo.UpdateUsername(ctx, userID, sanitized, now); err != nil {
		if domain.IsConflict(err) || domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to update username: %v", err))
		return nil, fmt.Errorf("failed to update username: %w", err)
	}

	profile.Username = &sanitized
	profile.UsernameChangedAt = &now
	profile.UpdatedAt = now
	s.logger.WithField("user_id", userID).Info("Updated username")
	return profile, nil
}
