package http

import (
	"net/http"

	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/http/middleware"
	"github.com/synthapp/synth/pkg/logger"
)

const defaultSuggestionLimit = 10

type FriendHandler struct {
	service     domain.FriendService
	authService domain.AuthService
	logger      logger.Logger
}

func NewFriendHandler(service domain.FriendService, authService domain.AuthService, logger logger.Logger) *FriendHandler {
	return &FriendHandler{
		service:     service,
		authService: authService,
		logger:      logger,
	}
}

type removeFriendRequest struct {
	FriendID string `json:"friend_id"`
}

func (h *FriendHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.authService).RequireAuth()

	mux.Handle("/api/friends.request", requireAuth(http.HandlerFunc(h.handleRequest)))
	mux.Handle("/api/friends.accept", requireAuth(http.HandlerFunc(h.handleAccept)))
	mux.Handle("/api/friends.decline", requireAuth(http.HandlerFunc(h.handleDecline)))
	mux.Handle("/api/friends.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/friends.pending", requireAuth(http.HandlerFunc(h.handlePending)))
	mux.Handle("/api/friends.remove", requireAuth(http.HandlerFunc(h.handleRemove)))
	mux.Handle("/api/friends.suggestions", requireAuth(http.HandlerFunc(h.handleSuggestions)))
}

func (h *FriendHandler) handleRequest(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req domain.SendFriendRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		WriteJSONError(w, "Missing user_id", http.StatusBadRequest)
		return
	}

	friendship, err := h.service.SendFriendRequest(r.Context(), user.ID, req.UserID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to send friend request")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"friendship": friendship,
	})
}

func (h *FriendHandler) handleAccept(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	req, ok := decodeRespondRequest(w, r)
	if !ok {
		return
	}

	friendship, err := h.service.AcceptFriendRequest(r.Context(), user.ID, req.RequestID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to accept friend request")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"friendship": friendship,
	})
}

func (h *FriendHandler) handleDecline(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	req, ok := decodeRespondRequest(w, r)
	if !ok {
		return
	}

	if err := h.service.DeclineFriendRequest(r.Context(), user.ID, req.RequestID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to decline friend request")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func decodeRespondRequest(w http.ResponseWriter, r *http.Request) (*domain.RespondFriendRequest, bool) {
	var req domain.RespondFriendRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return nil, false
	}
	if req.RequestID == "" {
		WriteJSONError(w, "Missing request_id", http.StatusBadRequest)
		return nil, false
	}
	return &req, true
}

func (h *FriendHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		userID = user.ID
	}

	friends, err := h.service.ListFriends(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list friends")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"friends": friends,
	})
}

func (h *FriendHandler) handlePending(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	requests, err := h.service.ListPendingRequests(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list friend requests")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"requests": requests,
	})
}

func (h *FriendHandler) handleRemove(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req removeFriendRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.FriendID == "" {
		WriteJSONError(w, "Missing friend_id", http.StatusBadRequest)
		return
	}

	if err := h.service.Unfriend(r.Context(), user.ID, req.FriendID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to remove friend")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func (h *FriendHandler) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	limit, err := queryInt(r.URL.Query(), "limit", defaultSuggestionLimit)
	if err != nil {
		writeServiceError(w, h.logger, err, "Invalid limit")
		return
	}

	suggestions, err := h.service.FriendSuggestions(r.Context(), user.ID, limit)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get friend suggestions")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"suggestions": suggestions,
	})
}
