package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/domain/mocks"
	"github.com/synthapp/synth/pkg/logger"
)

func setupInterestHandlerTest(t *testing.T) (*mocks.MockInterestService, *http.ServeMux) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockInterestService(ctrl)
	mux := http.NewServeMux()
	NewInterestHandler(service, newAuthMock(ctrl), logger.NewMockLogger(t)).RegisterRoutes(mux)
	return service, mux
}

func TestInterestHandler_SetAndRemove(t *testing.T) {
	service, mux := setupInterestHandlerTest(t)

	service.EXPECT().SetInterest(gomock.Any(), testUserID, "e1").Return(nil)
	service.EXPECT().RemoveInterest(gomock.Any(), testUserID, "e1").Return(errors.New("db down"))

	w := serve(mux, authedRequest(t, http.MethodPost, "/api/interests.set", domain.InterestRequest{EventID: "e1"}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeResponse(t, w)["success"])

	w = serve(mux, authedRequest(t, http.MethodPost, "/api/interests.remove", domain.InterestRequest{EventID: "e1"}))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to remove interest", decodeResponse(t, w)["error"])

	w = serve(mux, authedRequest(t, http.MethodPost, "/api/interests.set", map[string]string{}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInterestHandler_CheckAndList(t *testing.T) {
	service, mux := setupInterestHandlerTest(t)

	service.EXPECT().IsInterested(gomock.Any(), testUserID, "e1").Return(true, nil)
	service.EXPECT().ListInterestedEvents(gomock.Any(), testUserID).Return([]*domain.InterestedEvent{}, nil)
	service.EXPECT().ListInterestedEvents(gomock.Any(), "friend-9").Return([]*domain.InterestedEvent{}, nil)
	service.EXPECT().ListInterestedUsers(gomock.Any(), "e1").Return([]*domain.Profile{{UserID: "u2"}}, nil)

	w := serve(mux, authedRequest(t, http.MethodGet, "/api/interests.check?event_id=e1", nil))
	assert.Equal(t, true, decodeResponse(t, w)["interested"])

	w = serve(mux, authedRequest(t, http.MethodGet, "/api/interests.list", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(mux, authedRequest(t, http.MethodGet, "/api/interests.list?user_id=friend-9", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(mux, authedRequest(t, http.MethodGet, "/api/interests.users?event_id=e1", nil))
	users := decodeResponse(t, w)["users"].([]interface{})
	assert.Len(t, users, 1)
}
