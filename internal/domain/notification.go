package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_notification_service.go -package mocks github.com/synthapp/synth/internal/domain NotificationService
//go:generate mockgen -destination mocks/mock_notification_repository.go -package mocks github.com/synthapp/synth/internal/domain NotificationRepository

type NotificationType string

const (
	NotificationFriendRequest  NotificationType = "friend_request"
	NotificationFriendAccepted NotificationType = "friend_accepted"
	NotificationMatch          NotificationType = "match"
	NotificationMessage        NotificationType = "message"
	NotificationReview         NotificationType = "review"
	NotificationVerified       NotificationType = "verified"
)

const (
	DefaultNotificationLimit = 20
	MaxNotificationLimit     = 100
)

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Data      JSONMap          `json:"data,omitempty"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

type ListNotificationsRequest struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

func (r *ListNotificationsRequest) Normalize() {
	if r.Limit <= 0 {
		r.Limit = DefaultNotificationLimit
	}
	if r.Limit > MaxNotificationLimit {
		r.Limit = MaxNotificationLimit
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
}

type NotificationService interface {
	Create(ctx context.Context, notification *Notification) error
	List(ctx context.Context, userID string, req *ListNotificationsRequest) ([]*Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, userID string, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) error
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) error
	List(ctx context.Context, userID string, unreadOnly bool, limit int, offset int) ([]*Notification, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, userID string, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) error
}
