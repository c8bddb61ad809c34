package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/domain/mocks"
	"github.com/synthapp/synth/pkg/logger"
)

type stubChatSocket struct {
	calls []string
	err   error
}

func (s *stubChatSocket) Serve(w http.ResponseWriter, r *http.Request, chatID, userID string) error {
	s.calls = append(s.calls, chatID+"/"+userID)
	if s.err != nil {
		return s.err
	}
	w.WriteHeader(http.StatusSwitchingProtocols)
	return nil
}

func setupChatHandlerTest(t *testing.T) (*mocks.MockChatService, *stubChatSocket, *http.ServeMux) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockChatService(ctrl)
	socket := &stubChatSocket{}
	mux := http.NewServeMux()
	NewChatHandler(service, socket, newAuthMock(ctrl), logger.NewMockLogger(t)).RegisterRoutes(mux)
	return service, socket, mux
}

func TestChatHandler_VerifiedChats(t *testing.T) {
	service, _, mux := setupChatHandlerTest(t)

	req := domain.VerifiedChatRequest{EntityType: domain.ChatEntityArtist, EntityID: "a1", EntityName: "Boygenius"}
	service.EXPECT().GetOrCreateVerifiedChat(gomock.Any(), &req).Return(&domain.Chat{ID: "c1", Name: "Boygenius"}, nil)
	service.EXPECT().JoinVerifiedChat(gomock.Any(), "c1", testUserID).Return(nil)
	service.EXPECT().GetVerifiedChatInfo(gomock.Any(), domain.ChatEntityArtist, "a1", testUserID).
		Return(&domain.VerifiedChatInfo{ChatID: "c1", ChatName: "Boygenius", MemberCount: 3, IsUserMember: true}, nil)
	service.EXPECT().JoinOrOpen(gomock.Any(), testUserID, &req).Return(&domain.Chat{ID: "c1"}, nil)

	w := serve(mux, authedRequest(t, http.MethodPost, "/api/chats.verified.getOrCreate", req))
	require.Equal(t, http.StatusOK, w.Code)
	chat, ok := decodeResponse(t, w)["chat"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "c1", chat["id"])

	w = serve(mux, authedRequest(t, http.MethodPost, "/api/chats.verified.join", map[string]string{"chat_id": "c1"}))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(mux, authedRequest(t, http.MethodPost, "/api/chats.verified.join", map[string]string{}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(mux, authedRequest(t, http.MethodGet, "/api/chats.verified.info?entity_type=artist&entity_id=a1", nil))
	body := decodeResponse(t, w)
	assert.Equal(t, float64(3), body["member_count"])
	assert.Equal(t, true, body["is_user_member"])

	w = serve(mux, authedRequest(t, http.MethodGet, "/api/chats.verified.info?entity_type=artist", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(mux, authedRequest(t, http.MethodPost, "/api/chats.verified.joinOrOpen", req))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestChatHandler_Direct(t *testing.T) {
	service, _, mux := setupChatHandlerTest(t)

	service.EXPECT().GetOrCreateDirectChat(gomock.Any(), testUserID, "u2").Return(&domain.Chat{ID: "d1", Type: domain.ChatTypeDirect}, nil)
	service.EXPECT().GetOrCreateDirectChat(gomock.Any(), testUserID, "stranger").
		Return(nil, fmt.Errorf("open chat: %w", domain.ErrForbidden))
	service.EXPECT().ListChats(gomock.Any(), testUserID).Return([]*domain.Chat{{ID: "d1"}}, nil)

	w := serve(mux, authedRequest(t, http.MethodPost, "/api/chats.direct", map[string]string{"friend_id": "u2"}))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(mux, authedRequest(t, http.MethodPost, "/api/chats.direct", map[string]string{"friend_id": "stranger"}))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = serve(mux, authedRequest(t, http.MethodGet, "/api/chats.list", nil))
	assert.Len(t, decodeResponse(t, w)["chats"], 1)
}

func TestChatHandler_Messages(t *testing.T) {
	service, _, mux := setupChatHandlerTest(t)

	send := domain.SendMessageRequest{ChatID: "c1", Content: "who's going early?"}
	service.EXPECT().SendMessage(gomock.Any(), testUserID, &send).
		Return(&domain.Message{ID: "m1", ChatID: "c1", SenderID: testUserID, Content: send.Content}, nil)

	w := serve(mux, authedRequest(t, http.MethodPost, "/api/chats.messages.send", send))
	assert.Equal(t, http.StatusCreated, w.Code)

	before := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	service.EXPECT().ListMessages(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req *domain.ListMessagesRequest) ([]*domain.Message, error) {
			assert.Equal(t, "c1", req.ChatID)
			require.NotNil(t, req.Before)
			assert.True(t, before.Equal(*req.Before))
			assert.Equal(t, 20, req.Limit)
			return []*domain.Message{{ID: "m0"}}, nil
		})
	service.EXPECT().ListMessages(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req *domain.ListMessagesRequest) ([]*domain.Message, error) {
			assert.Nil(t, req.Before)
			assert.Equal(t, defaultMessagePageSize, req.Limit)
			return nil, nil
		})

	w = serve(mux, authedRequest(t, http.MethodGet, "/api/chats.messages.list?chat_id=c1&before=2026-10-01T12:00:00Z&limit=20", nil))
	assert.Len(t, decodeResponse(t, w)["messages"], 1)

	w = serve(mux, authedRequest(t, http.MethodGet, "/api/chats.messages.list?chat_id=c1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(mux, authedRequest(t, http.MethodGet, "/api/chats.messages.list?chat_id=c1&before=yesterday", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatHandler_Socket(t *testing.T) {
	service, socket, mux := setupChatHandlerTest(t)

	service.EXPECT().IsMember(gomock.Any(), "c1", testUserID).Return(true, nil).Times(2)
	service.EXPECT().IsMember(gomock.Any(), "c2", testUserID).Return(false, nil)

	// the token may arrive as a query parameter
	w := serve(mux, newRequest(t, http.MethodGet, "/ws/chat?chat_id=c1&token="+testToken, nil))
	assert.Equal(t, http.StatusSwitchingProtocols, w.Code)
	assert.Equal(t, []string{"c1/" + testUserID}, socket.calls)

	w = serve(mux, newRequest(t, http.MethodGet, "/ws/chat?chat_id=c2&token="+testToken, nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Not a member of this chat", decodeResponse(t, w)["error"])

	w = serve(mux, newRequest(t, http.MethodGet, "/ws/chat?chat_id=c1&token=forged", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(mux, newRequest(t, http.MethodGet, "/ws/chat?chat_id=c1", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(mux, authedRequest(t, http.MethodGet, "/ws/chat", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// a failed upgrade is only logged
	socket.err = errors.New("bad handshake")
	serve(mux, authedRequest(t, http.MethodGet, "/ws/chat?chat_id=c1", nil))
	assert.Len(t, socket.calls, 2)
}
