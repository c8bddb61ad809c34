package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/pkg/logger"
)

type NotificationService struct {
	repo   domain.NotificationRepository
	logger logger.Logger
}

func NewNotificationService(repo domain.NotificationRepository, logger logger.Logger) *NotificationService {
	return &NotificationService{repo: repo, logger: logger}
}

func (s *NotificationService) Create(ctx context.Context, n *domain.Notification) error {
	if n.UserID == "" {
		return domain.NewValidationError("user_id is required")
	}
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	n.IsRead = false

	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"user_id": n.UserID,
			"type":    string(n.Type),
		}).Error(fmt.Sprintf("Failed to create notification: %v", err))
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (s *NotificationService) List(ctx context.Context, userID string, req *domain.ListNotificationsRequest) ([]*domain.Notification, error) {
	if req == nil {
		req = &domain.ListNotificationsRequest{}
	}
	req.Normalize()

	notifications, err := s.repo.List(ctx, userID, req.UnreadOnly, req.Limit, req.Offset)
	if err != nil {
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to list notifications: %v", err))
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, userID string, notificationID string) error {
	if err := s.repo.MarkRead(ctx, userID, notificationID); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		s.logger.WithFields(map[string]interface{}{
			"user_id":         userID,
			"notification_id": notificationID,
		}).Error(fmt.Sprintf("Failed to mark notification read: %v", err))
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	if err := s.repo.MarkAllRead(ctx, userID); err != nil {
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to mark notifications read: %v", err))
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
