package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/domain/mocks"
	"github.com/synthapp/synth/pkg/logger"
)

func TestNotificationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockNotificationService(ctrl)
	mux := http.NewServeMux()
	NewNotificationHandler(service, newAuthMock(ctrl), logger.NewMockLogger(t)).RegisterRoutes(mux)

	service.EXPECT().List(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req *domain.ListNotificationsRequest) ([]*domain.Notification, error) {
			assert.True(t, req.UnreadOnly)
			assert.Equal(t, 5, req.Limit)
			assert.Equal(t, 10, req.Offset)
			return []*domain.Notification{{ID: "n1", Title: "New match"}}, nil
		})
	service.EXPECT().UnreadCount(gomock.Any(), testUserID).Return(3, nil)
	service.EXPECT().MarkRead(gomock.Any(), testUserID, "n1").Return(nil)
	service.EXPECT().MarkRead(gomock.Any(), testUserID, "n9").Return(domain.NewNotFound("notification", "n9"))
	service.EXPECT().MarkAllRead(gomock.Any(), testUserID).Return(nil)

	w := serve(mux, authedRequest(t, http.MethodGet, "/api/notifications.list?unread_only=true&limit=5&offset=10", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeResponse(t, w)["notifications"], 1)

	w = serve(mux, authedRequest(t, http.MethodGet, "/api/notifications.list?offset=-x", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(mux, authedRequest(t, http.MethodGet, "/api/notifications.unreadCount", nil))
	assert.Equal(t, float64(3), decodeResponse(t, w)["count"])

	w = serve(mux, authedRequest(t, http.MethodPost, "/api/notifications.markRead", map[string]string{"id": "n1"}))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(mux, authedRequest(t, http.MethodPost, "/api/notifications.markRead", map[string]string{"id": "n9"}))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(mux, authedRequest(t, http.MethodPost, "/api/notifications.markRead", map[string]string{}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(mux, authedRequest(t, http.MethodPost, "/api/notifications.markAllRead", nil))
	assert.Equal(t, true, decodeResponse(t, w)["success"])

	w = serve(mux, newRequest(t, http.MethodGet, "/api/notifications.unreadCount", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
