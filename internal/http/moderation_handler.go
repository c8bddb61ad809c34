package http

import (
	"net/http"

	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/http/middleware"
	"github.com/synthapp/synth/pkg/logger"
)

type ModerationHandler struct {
	service     domain.ModerationService
	authService domain.AuthService
	logger      logger.Logger
}

func NewModerationHandler(service domain.ModerationService, authService domain.AuthService, logger logger.Logger) *ModerationHandler {
	return &ModerationHandler{
		service:     service,
		authService: authService,
		logger:      logger,
	}
}

type unblockRequest struct {
	UserID string `json:"user_id"`
}

func (h *ModerationHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.authService).RequireAuth()

	mux.Handle("/api/moderation.block", requireAuth(http.HandlerFunc(h.handleBlock)))
	mux.Handle("/api/moderation.unblock", requireAuth(http.HandlerFunc(h.handleUnblock)))
	mux.Handle("/api/moderation.blocked", requireAuth(http.HandlerFunc(h.handleBlocked)))
	mux.Handle("/api/moderation.isBlocked", requireAuth(http.HandlerFunc(h.handleIsBlocked)))
	mux.Handle("/api/moderation.report", requireAuth(http.HandlerFunc(h.handleReport)))
}

func (h *ModerationHandler) handleBlock(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req domain.BlockRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.Block(r.Context(), user.ID, &req); err != nil {
		writeServiceError(w, h.logger, err, "Failed to block user")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func (h *ModerationHandler) handleUnblock(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req unblockRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		WriteJSONError(w, "Missing user_id", http.StatusBadRequest)
		return
	}

	if err := h.service.Unblock(r.Context(), user.ID, req.UserID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to unblock user")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func (h *ModerationHandler) handleBlocked(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	blocks, err := h.service.ListBlocked(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list blocked users")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"blocked": blocks,
	})
}

func (h *ModerationHandler) handleIsBlocked(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	otherID, ok := requireParam(w, r.URL.Query(), "user_id")
	if !ok {
		return
	}

	blocked, err := h.service.IsBlocked(r.Context(), user.ID, otherID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to check block")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"blocked": blocked,
	})
}

func (h *ModerationHandler) handleReport(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req domain.ReportRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	report, err := h.service.Report(r.Context(), user.ID, &req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to submit report")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"report": report,
	})
}
