package http

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/domain/mocks"
	"github.com/synthapp/synth/pkg/logger"
)

func TestFollowHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockFollowService(ctrl)
	mux := http.NewServeMux()
	NewFollowHandler(service, newAuthMock(ctrl), logger.NewMockLogger(t)).RegisterRoutes(mux)

	followReq := domain.FollowRequest{TargetType: domain.FollowTargetArtist, TargetID: "a1", TargetName: "Phoebe Bridgers"}
	service.EXPECT().Follow(gomock.Any(), testUserID, &followReq).Return(nil)
	service.EXPECT().Unfollow(gomock.Any(), testUserID, domain.FollowTargetArtist, "a1").Return(nil)
	service.EXPECT().IsFollowing(gomock.Any(), testUserID, domain.FollowTargetVenue, "v1").Return(true, nil)
	service.EXPECT().ListFollows(gomock.Any(), testUserID, domain.FollowTargetType("")).Return([]*domain.Follow{}, nil)
	service.EXPECT().FollowerCount(gomock.Any(), domain.FollowTargetArtist, "a1").Return(42, nil)

	w := serve(mux, authedRequest(t, http.MethodPost, "/api/follows.follow", followReq))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(mux, authedRequest(t, http.MethodPost, "/api/follows.unfollow", domain.FollowRequest{TargetType: domain.FollowTargetArtist, TargetID: "a1"}))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(mux, authedRequest(t, http.MethodGet, "/api/follows.check?target_type=venue&target_id=v1", nil))
	assert.Equal(t, true, decodeResponse(t, w)["following"])

	w = serve(mux, authedRequest(t, http.MethodGet, "/api/follows.list", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// follower counts are public
	w = serve(mux, newRequest(t, http.MethodGet, "/api/follows.count?target_type=artist&target_id=a1", nil))
	assert.Equal(t, float64(42), decodeResponse(t, w)["count"])

	w = serve(mux, newRequest(t, http.MethodGet, "/api/follows.count?target_type=artist", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
