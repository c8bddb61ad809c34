package http

import (
	"net/http"

	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/http/middleware"
	"github.com/synthapp/synth/pkg/logger"
)

type ProfileHandler struct {
	service     domain.ProfileService
	authService domain.AuthService
	logger      logger.Logger
}

func NewProfileHandler(service domain.ProfileService, authService domain.AuthService, logger logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		service:     service,
		authService: authService,
		logger:      logger,
	}
}

func (h *ProfileHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.authService).RequireAuth()

	mux.Handle("/api/profiles.me", requireAuth(http.HandlerFunc(h.handleMe)))
	mux.Handle("/api/profiles.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/profiles.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/profiles.checkUsername", requireAuth(http.HandlerFunc(h.handleCheckUsername)))
	mux.Handle("/api/profiles.updateUsername", requireAuth(http.HandlerFunc(h.handleUpdateUsername)))
}

func (h *ProfileHandler) handleMe(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	profile, err := h.service.EnsureProfile(r.Context(), user.ID, user.Email)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get profile")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"profile": profile,
	})
}

func (h *ProfileHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	userID, ok := requireParam(w, r.URL.Query(), "user_id")
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get profile")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"profile": profile,
	})
}

func (h *ProfileHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req domain.UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), user.ID, &req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to update profile")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"profile": profile,
	})
}

func (h *ProfileHandler) handleCheckUsername(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	username, ok := requireParam(w, r.URL.Query(), "username")
	if !ok {
		return
	}

	availability, err := h.service.CheckUsername(r.Context(), user.ID, username)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to check username")
		return
	}

	writeJSON(w, http.StatusOK, availability)
}

func (h *ProfileHandler) handleUpdateUsername(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req domain.UsernameRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, h.logger, err, "Invalid username")
		return
	}

	profile, err := h.service.UpdateUsername(r.Context(), user.ID, req.Username)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to update username")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"profile": profile,
	})
}
