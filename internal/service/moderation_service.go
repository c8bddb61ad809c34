package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/pkg/logger"
)

type ModerationService struct {
	repo    domain.ModerationRepository
	friends domain.FriendRepository
	logger  logger.Logger
}

func NewModerationService(repo domain.ModerationRepository, friends domain.FriendRepository, logger logger.Logger) *ModerationService {
	return &ModerationService{repo: repo, friends: friends, logger: logger}
}

// Block records the block and drops any friendship or pending request
// between the two users.
func (s *ModerationService) Block(ctx context.Context, blockerID string, req *domain.BlockRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if req.UserID == blockerID {
		return domain.NewValidationError("you cannot block yourself")
	}

	block := &domain.Block{
		BlockerID: blockerID,
		BlockedID: req.UserID,
		Reason:    req.Reason,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateBlock(ctx, block); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"blocker_id": blockerID,
			"blocked_id": req.UserID,
		}).Error(fmt.Sprintf("Failed to block user: %v", err))
		return fmt.Errorf("failed to block user: %w", err)
	}

	if err := s.friends.DeleteFriendship(ctx, blockerID, req.UserID); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"blocker_id": blockerID,
			"blocked_id": req.UserID,
		}).Error(fmt.Sprintf("Failed to remove friendship after block: %v", err))
		return fmt.Errorf("failed to remove friendship: %w", err)
	}
	return nil
}

func (s *ModerationService) Unblock(ctx context.Context, blockerID string, blockedID string) error {
	if err := s.repo.DeleteBlock(ctx, blockerID, blockedID); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"blocker_id": blockerID,
			"blocked_id": blockedID,
		}).Error(fmt.Sprintf("Failed to unblock user: %v", err))
		return fmt.Errorf("failed to unblock user: %w", err)
	}
	return nil
}

func (s *ModerationService) IsBlocked(ctx context.Context, userID string, otherID string) (bool, error) {
	blocked, err := s.repo.IsBlocked(ctx, userID, otherID)
	if err != nil {
		return false, fmt.Errorf("failed to check block: %w", err)
	}
	return blocked, nil
}

func (s *ModerationService) ListBlocked(ctx context.Context, userID string) ([]*domain.Block, error) {
	blocks, err := s.repo.ListBlocked(ctx, userID)
	if err != nil {
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to list blocked users: %v", err))
		return nil, fmt.Errorf("failed to list blocked users: %w", err)
	}
	return blocks, nil
}

func (s *ModerationService) Report(ctx context.Context, reporterID string, req *domain.ReportRequest) (*domain.Report, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	report := &domain.Report{
		ID:          uuid.New().String(),
		ReporterID:  reporterID,
		ContentType: req.ContentType,
		ContentID:   req.ContentID,
		Reason:      req.Reason,
		Details:     req.Details,
		Status:      domain.ReportStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.CreateReport(ctx, report); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"reporter_id":  reporterID,
			"content_type": string(req.ContentType),
			"content_id":   req.ContentID,
		}).Error(fmt.Sprintf("Failed to create report: %v", err))
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"report_id":    report.ID,
		"content_type": string(req.ContentType),
	}).Info("Content reported")
	return report, nil
}
