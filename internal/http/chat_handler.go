package http

import (
	"net/http"

	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/http/middleware"
	"github.com/synthapp/synth/pkg/logger"
)

const defaultMessagePageSize = 50

// ChatSocket upgrades a request into a realtime chat subscription
type ChatSocket interface {
	Serve(w http.ResponseWriter, r *http.Request, chatID, userID string) error
}

type ChatHandler struct {
	service     domain.ChatService
	socket      ChatSocket
	authService domain.AuthService
	logger      logger.Logger
}

func NewChatHandler(service domain.ChatService, socket ChatSocket, authService domain.AuthService, logger logger.Logger) *ChatHandler {
	return &ChatHandler{
		service:     service,
		socket:      socket,
		authService: authService,
		logger:      logger,
	}
}

type joinChatRequest struct {
	ChatID string `json:"chat_id"`
}

type directChatRequest struct {
	FriendID string `json:"friend_id"`
}

func (h *ChatHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.authService).RequireAuth()

	mux.Handle("/api/chats.verified.getOrCreate", requireAuth(http.HandlerFunc(h.handleGetOrCreateVerified)))
	mux.Handle("/api/chats.verified.join", requireAuth(http.HandlerFunc(h.handleJoinVerified)))
	mux.Handle("/api/chats.verified.info", requireAuth(http.HandlerFunc(h.handleVerifiedInfo)))
	mux.Handle("/api/chats.verified.joinOrOpen", requireAuth(http.HandlerFunc(h.handleJoinOrOpen)))
	mux.Handle("/api/chats.direct", requireAuth(http.HandlerFunc(h.handleDirect)))
	mux.Handle("/api/chats.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/chats.messages.send", requireAuth(http.HandlerFunc(h.handleSendMessage)))
	mux.Handle("/api/chats.messages.list", requireAuth(http.HandlerFunc(h.handleListMessages)))
	mux.Handle("/ws/chat", tokenFromQuery(requireAuth(http.HandlerFunc(h.handleSocket))))
}

// tokenFromQuery lets browsers, which cannot set headers on websocket
// handshakes, pass the bearer token as ?token=.
func tokenFromQuery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			if token := r.URL.Query().Get("token"); token != "" {
				r.Header.Set("Authorization", "Bearer "+token)
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (h *ChatHandler) handleGetOrCreateVerified(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	if _, ok := currentUser(w, r); !ok {
		return
	}

	var req domain.VerifiedChatRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	chat, err := h.service.GetOrCreateVerifiedChat(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get verified chat")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"chat": chat,
	})
}

func (h *ChatHandler) handleJoinVerified(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req joinChatRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ChatID == "" {
		WriteJSONError(w, "Missing chat_id", http.StatusBadRequest)
		return
	}

	if err := h.service.JoinVerifiedChat(r.Context(), req.ChatID, user.ID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to join chat")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func (h *ChatHandler) handleVerifiedInfo(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	query := r.URL.Query()
	entityType, ok := requireParam(w, query, "entity_type")
	if !ok {
		return
	}
	entityID, ok := requireParam(w, query, "entity_id")
	if !ok {
		return
	}

	info, err := h.service.GetVerifiedChatInfo(r.Context(), domain.ChatEntityType(entityType), entityID, user.ID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get chat info")
		return
	}

	writeJSON(w, http.StatusOK, info)
}

func (h *ChatHandler) handleJoinOrOpen(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req domain.VerifiedChatRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	chat, err := h.service.JoinOrOpen(r.Context(), user.ID, &req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to open chat")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"chat": chat,
	})
}

func (h *ChatHandler) handleDirect(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req directChatRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.FriendID == "" {
		WriteJSONError(w, "Missing friend_id", http.StatusBadRequest)
		return
	}

	chat, err := h.service.GetOrCreateDirectChat(r.Context(), user.ID, req.FriendID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to open direct chat")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"chat": chat,
	})
}

func (h *ChatHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	chats, err := h.service.ListChats(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list chats")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"chats": chats,
	})
}

func (h *ChatHandler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req domain.SendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	message, err := h.service.SendMessage(r.Context(), user.ID, &req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to send message")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": message,
	})
}

func (h *ChatHandler) handleListMessages(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	query := r.URL.Query()
	chatID, ok := requireParam(w, query, "chat_id")
	if !ok {
		return
	}

	req := &domain.ListMessagesRequest{ChatID: chatID}
	var err error
	if req.Before, err = queryTime(query, "before"); err != nil {
		writeServiceError(w, h.logger, err, "Invalid before")
		return
	}
	if req.Limit, err = queryInt(query, "limit", defaultMessagePageSize); err != nil {
		writeServiceError(w, h.logger, err, "Invalid limit")
		return
	}

	messages, err := h.service.ListMessages(r.Context(), user.ID, req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list messages")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"messages": messages,
	})
}

// handleSocket subscribes a chat member to realtime messages
func (h *ChatHandler) handleSocket(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	chatID, ok := requireParam(w, r.URL.Query(), "chat_id")
	if !ok {
		return
	}

	member, err := h.service.IsMember(r.Context(), chatID, user.ID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to check chat membership")
		return
	}
	if !member {
		WriteJSONError(w, "Not a member of this chat", http.StatusForbidden)
		return
	}

	if err := h.socket.Serve(w, r, chatID, user.ID); err != nil {
		// the upgrader has already answered the client
		h.logger.WithFields(map[string]interface{}{
			"chat_id": chatID,
			"user_id": user.ID,
		}).Warn("Websocket subscription failed: " + err.Error())
	}
}
