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

func TestFollowService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockFollowRepository(ctrl)
	svc := NewFollowService(repo, logger.NewMockLogger(t))
	ctx := context.Background()

	t.Run("follow artist", func(t *testing.T) {
		repo.EXPECT().Follow(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, f *domain.Follow) error {
			assert.Equal(t, "user-1", f.UserID)
			assert.Equal(t, domain.FollowTargetArtist, f.TargetType)
			assert.Equal(t, "art-1", f.TargetID)
			return nil
		})

		err := svc.Follow(ctx, "user-1", &domain.FollowRequest{TargetType: domain.FollowTargetArtist, TargetID: "art-1", TargetName: "Phoebe Bridgers"})
		assert.NoError(t, err)
	})

	t.Run("follow unknown type", func(t *testing.T) {
		err := svc.Follow(ctx, "user-1", &domain.FollowRequest{TargetType: "label", TargetID: "x"})
		var verr domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("unfollow", func(t *testing.T) {
		repo.EXPECT().Unfollow(ctx, "user-1", domain.FollowTargetVenue, "ven-1").Return(nil)
		assert.NoError(t, svc.Unfollow(ctx, "user-1", domain.FollowTargetVenue, "ven-1"))
	})

	t.Run("list all types", func(t *testing.T) {
		repo.EXPECT().ListFollows(ctx, "user-1", domain.FollowTargetType("")).Return([]*domain.Follow{{TargetID: "a"}, {TargetID: "v"}}, nil)

		follows, err := svc.ListFollows(ctx, "user-1", "")
		require.NoError(t, err)
		assert.Len(t, follows, 2)
	})

	t.Run("follower count error", func(t *testing.T) {
		repo.EXPECT().CountFollowers(ctx, domain.FollowTargetArtist, "art-1").Return(0, errors.New("boom"))

		_, err := svc.FollowerCount(ctx, domain.FollowTargetArtist, "art-1")
		assert.EqualError(t, err, "failed to count followers: boom")
	})
}
