package http

import (
	"net/http"

	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/http/middleware"
	"github.com/synthapp/synth/pkg/logger"
)

type MatchingHandler struct {
	service     domain.MatchingService
	authService domain.AuthService
	logger      logger.Logger
}

func NewMatchingHandler(service domain.MatchingService, authService domain.AuthService, logger logger.Logger) *MatchingHandler {
	return &MatchingHandler{
		service:     service,
		authService: authService,
		logger:      logger,
	}
}

func (h *MatchingHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.authService).RequireAuth()

	mux.Handle("/api/matching.swipe", requireAuth(http.HandlerFunc(h.handleSwipe)))
	mux.Handle("/api/matching.potential", requireAuth(http.HandlerFunc(h.handlePotential)))
	mux.Handle("/api/matching.eventMatches", requireAuth(http.HandlerFunc(h.handleEventMatches)))
	mux.Handle("/api/matching.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/matching.hasSwiped", requireAuth(http.HandlerFunc(h.handleHasSwiped)))
	mux.Handle("/api/matching.count", requireAuth(http.HandlerFunc(h.handleCount)))
	mux.Handle("/api/matching.compatibility", requireAuth(http.HandlerFunc(h.handleCompatibility)))
}

func (h *MatchingHandler) handleSwipe(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req domain.SwipeRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.RecordSwipe(r.Context(), user.ID, &req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to record swipe")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *MatchingHandler) handlePotential(w http.ResponseWriter, r *http.Request) {
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

	candidates, err := h.service.PotentialMatches(r.Context(), user.ID, eventID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get potential matches")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"users": candidates,
	})
}

func (h *MatchingHandler) handleEventMatches(w http.ResponseWriter, r *http.Request) {
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

	matches, err := h.service.EventMatches(r.Context(), user.ID, eventID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get event matches")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"matches": matches,
	})
}

func (h *MatchingHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	matches, err := h.service.ListMatches(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list matches")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"matches": matches,
	})
}

func (h *MatchingHandler) handleHasSwiped(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	query := r.URL.Query()
	swipedID, ok := requireParam(w, query, "user_id")
	if !ok {
		return
	}
	eventID, ok := requireParam(w, query, "event_id")
	if !ok {
		return
	}

	swiped, err := h.service.HasSwiped(r.Context(), user.ID, swipedID, eventID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to check swipe")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"has_swiped": swiped,
	})
}

func (h *MatchingHandler) handleCount(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	count, err := h.service.MatchCount(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to count matches")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count": count,
	})
}

func (h *MatchingHandler) handleCompatibility(w http.ResponseWriter, r *http.Request) {
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

	score, err := h.service.Compatibility(r.Context(), user.ID, otherID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to compute compatibility")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"score": score,
	})
}
