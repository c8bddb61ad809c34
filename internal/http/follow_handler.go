package http

import (
	"net/http"

	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/http/middleware"
	"github.com/synthapp/synth/pkg/logger"
)

type FollowHandler struct {
	service     domain.FollowService
	authService domain.AuthService
	logger      logger.Logger
}

func NewFollowHandler(service domain.FollowService, authService domain.AuthService, logger logger.Logger) *FollowHandler {
	return &FollowHandler{
		service:     service,
		authService: authService,
		logger:      logger,
	}
}

func (h *FollowHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.authService).RequireAuth()

	mux.Handle("/api/follows.follow", requireAuth(http.HandlerFunc(h.handleFollow)))
	mux.Handle("/api/follows.unfollow", requireAuth(http.HandlerFunc(h.handleUnfollow)))
	mux.Handle("/api/follows.check", requireAuth(http.HandlerFunc(h.handleCheck)))
	mux.Handle("/api/follows.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.HandleFunc("/api/follows.count", h.handleCount)
}

func (h *FollowHandler) handleFollow(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req domain.FollowRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.Follow(r.Context(), user.ID, &req); err != nil {
		writeServiceError(w, h.logger, err, "Failed to follow")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func (h *FollowHandler) handleUnfollow(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req domain.FollowRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.Unfollow(r.Context(), user.ID, req.TargetType, req.TargetID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to unfollow")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func (h *FollowHandler) handleCheck(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	query := r.URL.Query()
	targetID, ok := requireParam(w, query, "target_id")
	if !ok {
		return
	}

	following, err := h.service.IsFollowing(r.Context(), user.ID, domain.FollowTargetType(query.Get("target_type")), targetID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to check follow")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"following": following,
	})
}

// handleList returns the caller's follows, optionally of one target type
func (h *FollowHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	follows, err := h.service.ListFollows(r.Context(), user.ID, domain.FollowTargetType(r.URL.Query().Get("target_type")))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list follows")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"follows": follows,
	})
}

func (h *FollowHandler) handleCount(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	query := r.URL.Query()
	targetID, ok := requireParam(w, query, "target_id")
	if !ok {
		return
	}

	count, err := h.service.FollowerCount(r.Context(), domain.FollowTargetType(query.Get("target_type")), targetID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to count followers")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count": count,
	})
}
