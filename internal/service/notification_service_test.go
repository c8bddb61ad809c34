package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/domain/mocks"
	"github.com/synthapp/synth/pkg/logger"
)

func TestNotificationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockNotificationRepository(ctrl)
	svc := NewNotificationService(repo, logger.NewMockLogger(t))
	ctx := context.Background()

	t.Run("assigns id and timestamp", func(t *testing.T) {
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, n *domain.Notification) error {
			assert.NotEmpty(t, n.ID)
			assert.False(t, n.CreatedAt.IsZero())
			assert.False(t, n.IsRead)
			return nil
		})

		err := svc.Create(ctx, &domain.Notification{UserID: "u1", Type: domain.NotificationMatch, Title: "t"})
		require.NoError(t, err)
	})

	t.Run("requires user", func(t *testing.T) {
		err := svc.Create(ctx, &domain.Notification{Type: domain.NotificationMatch})
		var verr domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("boom"))
		err := svc.Create(ctx, &domain.Notification{UserID: "u1"})
		assert.EqualError(t, err, "failed to create notification: boom")
	})
}

func TestNotificationService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockNotificationRepository(ctrl)
	svc := NewNotificationService(repo, logger.NewMockLogger(t))
	ctx := context.Background()

	t.Run("defaults limit", func(t *testing.T) {
		repo.EXPECT().List(ctx, "u1", false, domain.DefaultNotificationLimit, 0).Return([]*domain.Notification{{ID: "n1"}}, nil)
		list, err := svc.List(ctx, "u1", nil)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("caps limit", func(t *testing.T) {
		repo.EXPECT().List(ctx, "u1", true, domain.MaxNotificationLimit, 40).Return(nil, nil)
		_, err := svc.List(ctx, "u1", &domain.ListNotificationsRequest{UnreadOnly: true, Limit: 1000, Offset: 40})
		require.NoError(t, err)
	})
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockNotificationRepository(ctrl)
	svc := NewNotificationService(repo, logger.NewMockLogger(t))
	ctx := context.Background()

	repo.EXPECT().MarkRead(ctx, "u1", "missing").Return(domain.NewNotFound("notification", "missing"))
	err := svc.MarkRead(ctx, "u1", "missing")
	assert.True(t, domain.IsNotFound(err))

	repo.EXPECT().MarkAllRead(ctx, "u1").Return(nil)
	assert.NoError(t, svc.MarkAllRead(ctx, "u1"))

	repo.EXPECT().CountUnread(ctx, "u1").Return(3, nil)
	count, err := svc.UnreadCount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
