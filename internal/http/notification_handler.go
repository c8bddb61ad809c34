package http

import (
	"net/http"

	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/http/middleware"
	"github.com/synthapp/synth/pkg/logger"
)

type NotificationHandler struct {
	service     domain.NotificationService
	authService domain.AuthService
	logger      logger.Logger
}

func NewNotificationHandler(service domain.NotificationService, authService domain.AuthService, logger logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		service:     service,
		authService: authService,
		logger:      logger,
	}
}

type markReadRequest struct {
	ID string `json:"id"`
}

func (h *NotificationHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.authService).RequireAuth()

	mux.Handle("/api/notifications.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/notifications.unreadCount", requireAuth(http.HandlerFunc(h.handleUnreadCount)))
	mux.Handle("/api/notifications.markRead", requireAuth(http.HandlerFunc(h.handleMarkRead)))
	mux.Handle("/api/notifications.markAllRead", requireAuth(http.HandlerFunc(h.handleMarkAllRead)))
}

func (h *NotificationHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	query := r.URL.Query()

	req := &domain.ListNotificationsRequest{UnreadOnly: queryBool(query, "unread_only")}
	var err error
	if req.Limit, err = queryInt(query, "limit", 0); err != nil {
		writeServiceError(w, h.logger, err, "Invalid limit")
		return
	}
	if req.Offset, err = queryInt(query, "offset", 0); err != nil {
		writeServiceError(w, h.logger, err, "Invalid offset")
		return
	}

	notifications, err := h.service.List(r.Context(), user.ID, req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list notifications")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": notifications,
	})
}

func (h *NotificationHandler) handleUnreadCount(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	count, err := h.service.UnreadCount(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to count notifications")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count": count,
	})
}

func (h *NotificationHandler) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req markReadRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		WriteJSONError(w, "Missing notification ID", http.StatusBadRequest)
		return
	}

	if err := h.service.MarkRead(r.Context(), user.ID, req.ID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to mark notification read")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func (h *NotificationHandler) handleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.service.MarkAllRead(r.Context(), user.ID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to mark notifications read")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
