package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/pkg/logger"
	"golang.org/x/sync/errgroup"
)

const trustRecomputeWorkers = 4

type VerificationService struct {
	repo        domain.VerificationRepository
	profiles    domain.ProfileRepository
	authService domain.AuthService
	logger      logger.Logger
	now         func() time.Time
}

func NewVerificationService(repo domain.VerificationRepository, profiles domain.ProfileRepository, authService domain.AuthService, logger logger.Logger) *VerificationService {
	return &VerificationService{
		repo:        repo,
		profiles:    profiles,
		authService: authService,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *VerificationService) calculate(ctx context.Context, userID string) (*domain.TrustScore, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var stats domain.TrustStats
	if profile.AccountType == "" || profile.AccountType == domain.AccountTypeUser {
		st, err := s.repo.GetTrustStats(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to get trust stats: %w", err)
		}
		stats = *st
	}

	score := domain.CalculateTrustScore(profile, stats, s.now())
	return &score, nil
}

func (s *VerificationService) GetTrustScore(ctx context.Context, userID string) (*domain.TrustScore, error) {
	score, err := s.calculate(ctx, userID)
	if err != nil {
		if !domain.IsNotFound(err) {
			s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to calculate trust score: %v", err))
		}
		return nil, err
	}
	return score, nil
}

func (s *VerificationService) RefreshTrustScore(ctx context.Context, userID string) (*domain.TrustScore, error) {
	score, err := s.GetTrustScore(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveTrustScore(ctx, userID, score); err != nil {
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to save trust score: %v", err))
		return nil, fmt.Errorf("failed to save trust score: %w", err)
	}
	return score, nil
}

func (s *VerificationService) SetVerified(ctx context.Context, userID string, verified bool) error {
	admin, err := s.authService.RequireAdmin(ctx)
	if err != nil {
		return err
	}

	if err := s.repo.SetVerified(ctx, userID, verified, admin.ID); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		s.logger.WithFields(map[string]interface{}{
			"user_id":  userID,
			"admin_id": admin.ID,
		}).Error(fmt.Sprintf("Failed to set verified: %v", err))
		return fmt.Errorf("failed to set verified: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id":  userID,
		"admin_id": admin.ID,
		"verified": verified,
	}).Info("Verification status changed by admin")
	return nil
}

func (s *VerificationService) UsersNearVerification(ctx context.Context) ([]*domain.VerificationCandidate, error) {
	if _, err := s.authService.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	candidates, err := s.repo.ListNearVerification(ctx, domain.NearVerificationMin, domain.NearVerificationLimit)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list users near verification: %v", err))
		return nil, fmt.Errorf("failed to list users near verification: %w", err)
	}
	return candidates, nil
}

// RecomputeAll refreshes the stored trust score of every profile. Failures
// are logged per user and counted.
func (s *VerificationService) RecomputeAll(ctx context.Context) (updated int, failed int, err error) {
	ids, err := s.repo.ListUserIDs(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list users: %w", err)
	}

	var ok, ko int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(trustRecomputeWorkers)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			if _, err := s.RefreshTrustScore(gctx, id); err != nil {
				atomic.AddInt64(&ko, 1)
				return nil
			}
			atomic.AddInt64(&ok, 1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return int(ok), int(ko), err
	}
	return int(ok), int(ko), nil
}
