package http

import (
	"net/http"

	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/http/middleware"
	"github.com/synthapp/synth/pkg/logger"
)

type ReviewHandler struct {
	service     domain.ReviewService
	authService domain.AuthService
	logger      logger.Logger
}

func NewReviewHandler(service domain.ReviewService, authService domain.AuthService, logger logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		service:     service,
		authService: authService,
		logger:      logger,
	}
}

type deleteReviewRequest struct {
	ID string `json:"id"`
}

func (h *ReviewHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.authService).RequireAuth()

	mux.Handle("/api/reviews.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/reviews.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/reviews.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
	mux.Handle("/api/reviews.listForEvent", requireAuth(http.HandlerFunc(h.handleListForEvent)))
	mux.Handle("/api/reviews.listForUser", requireAuth(http.HandlerFunc(h.handleListForUser)))
}

func (h *ReviewHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req domain.CreateReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	review, err := h.service.CreateReview(r.Context(), user.ID, &req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to create review")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"review": review,
	})
}

func (h *ReviewHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req domain.UpdateReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		WriteJSONError(w, "Missing review ID", http.StatusBadRequest)
		return
	}

	review, err := h.service.UpdateReview(r.Context(), user.ID, &req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to update review")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"review": review,
	})
}

func (h *ReviewHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req deleteReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		WriteJSONError(w, "Missing review ID", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteReview(r.Context(), user.ID, req.ID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to delete review")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func (h *ReviewHandler) handleListForEvent(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	eventID, ok := requireParam(w, r.URL.Query(), "event_id")
	if !ok {
		return
	}

	reviews, err := h.service.ListEventReviews(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list reviews")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reviews": reviews,
	})
}

// handleListForUser includes drafts only when users list their own reviews
func (h *ReviewHandler) handleListForUser(w http.ResponseWriter, r *http.Request) {
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

	reviews, err := h.service.ListUserReviews(r.Context(), user.ID, userID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list reviews")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reviews": reviews,
	})
}
