package http

import (
	"net/http"

	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/http/middleware"
	"github.com/synthapp/synth/pkg/logger"
)

type VerificationHandler struct {
	service     domain.VerificationService
	authService domain.AuthService
	logger      logger.Logger
}

func NewVerificationHandler(service domain.VerificationService, authService domain.AuthService, logger logger.Logger) *VerificationHandler {
	return &VerificationHandler{
		service:     service,
		authService: authService,
		logger:      logger,
	}
}

func (h *VerificationHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.authService).RequireAuth()

	mux.Handle("/api/verification.status", requireAuth(http.HandlerFunc(h.handleStatus)))
	mux.Handle("/api/verification.refresh", requireAuth(http.HandlerFunc(h.handleRefresh)))
	mux.Handle("/api/verification.set", requireAuth(http.HandlerFunc(h.handleSet)))
	mux.Handle("/api/verification.nearVerification", requireAuth(http.HandlerFunc(h.handleNearVerification)))
}

func (h *VerificationHandler) handleStatus(w http.ResponseWriter, r *http.Request) {
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

	score, err := h.service.GetTrustScore(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get verification status")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"trust_score": score,
	})
}

func (h *VerificationHandler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	score, err := h.service.RefreshTrustScore(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to refresh trust score")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"trust_score": score,
	})
}

// handleSet is admin only; the service checks the caller
func (h *VerificationHandler) handleSet(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.SetVerifiedRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		WriteJSONError(w, "Missing user_id", http.StatusBadRequest)
		return
	}

	if err := h.service.SetVerified(r.Context(), req.UserID, req.Verified); err != nil {
		writeServiceError(w, h.logger, err, "Failed to set verification")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func (h *VerificationHandler) handleNearVerification(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	candidates, err := h.service.UsersNearVerification(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list users near verification")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"users": candidates,
	})
}
