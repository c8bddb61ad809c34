package http

import (
	"context"
	"net/http"

	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/http/middleware"
	"github.com/synthapp/synth/pkg/logger"
)

type InterestHandler struct {
	service     domain.InterestService
	authService domain.AuthService
	logger      logger.Logger
}

func NewInterestHandler(service domain.InterestService, authService domain.AuthService, logger logger.Logger) *InterestHandler {
	return &InterestHandler{
		service:     service,
		authService: authService,
		logger:      logger,
	}
}

func (h *InterestHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.authService).RequireAuth()

	mux.Handle("/api/interests.set", requireAuth(http.HandlerFunc(h.handleSet)))
	mux.Handle("/api/interests.remove", requireAuth(http.HandlerFunc(h.handleRemove)))
	mux.Handle("/api/interests.check", requireAuth(http.HandlerFunc(h.handleCheck)))
	mux.Handle("/api/interests.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/interests.users", requireAuth(http.HandlerFunc(h.handleUsers)))
}

func (h *InterestHandler) handleSet(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.service.SetInterest, "Failed to set interest")
}

func (h *InterestHandler) handleRemove(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.service.RemoveInterest, "Failed to remove interest")
}

func (h *InterestHandler) mutate(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, userID, eventID string) error, failure string) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req domain.InterestRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.EventID == "" {
		WriteJSONError(w, "Missing event_id", http.StatusBadRequest)
		return
	}

	if err := apply(r.Context(), user.ID, req.EventID); err != nil {
		writeServiceError(w, h.logger, err, failure)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func (h *InterestHandler) handleCheck(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	eventID, ok := requireParam(w, r.URL.Query(), "event_id")
	if !ok {
		return
	}

	interested, err := h.service.IsInterested(r.Context(), user.ID, eventID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to check interest")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"interested": interested,
	})
}

// handleList returns the events a user is interested in, the caller by default
func (h *InterestHandler) handleList(w http.ResponseWriter, r *http.Request) {
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

	events, err := h.service.ListInterestedEvents(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list interests")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"events": events,
	})
}

func (h *InterestHandler) handleUsers(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	eventID, ok := requireParam(w, r.URL.Query(), "event_id")
	if !ok {
		return
	}

	users, err := h.service.ListInterestedUsers(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list interested users")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"users": users,
	})
}
