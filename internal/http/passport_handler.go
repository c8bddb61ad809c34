package http

import (
	"context"
	"net/http"

	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/http/middleware"
	"github.com/synthapp/synth/pkg/logger"
)

type PassportHandler struct {
	service     domain.PassportService
	authService domain.AuthService
	logger      logger.Logger
}

func NewPassportHandler(service domain.PassportService, authService domain.AuthService, logger logger.Logger) *PassportHandler {
	return &PassportHandler{
		service:     service,
		authService: authService,
		logger:      logger,
	}
}

type pinTimelineRequest struct {
	ReviewID string `json:"review_id"`
}

type timelineEntryRequest struct {
	TimelineID string `json:"timeline_id"`
}

func (h *PassportHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.authService).RequireAuth()

	mux.Handle("/api/passport.progress", requireAuth(http.HandlerFunc(h.handleProgress)))
	mux.Handle("/api/passport.unlock", requireAuth(http.HandlerFunc(h.handleUnlock)))
	mux.Handle("/api/passport.nextToUnlock", requireAuth(http.HandlerFunc(h.handleNextToUnlock)))
	mux.Handle("/api/passport.identity", requireAuth(http.HandlerFunc(h.handleIdentity)))
	mux.Handle("/api/passport.stamps", requireAuth(http.HandlerFunc(h.handleStamps)))
	mux.Handle("/api/passport.timeline", requireAuth(http.HandlerFunc(h.handleTimeline)))
	mux.Handle("/api/passport.pin", requireAuth(http.HandlerFunc(h.handlePin)))
	mux.Handle("/api/passport.unpin", requireAuth(http.HandlerFunc(h.handleUnpin)))
	mux.Handle("/api/passport.milestones.add", requireAuth(http.HandlerFunc(h.handleAddMilestone)))
	mux.Handle("/api/passport.milestones.update", requireAuth(http.HandlerFunc(h.handleUpdateMilestone)))
	mux.Handle("/api/passport.timeline.delete", requireAuth(http.HandlerFunc(h.handleDeleteTimelineEntry)))
	mux.Handle("/api/passport.tasteMap", requireAuth(http.HandlerFunc(h.handleTasteMap)))
	mux.Handle("/api/passport.recalculate", requireAuth(http.HandlerFunc(h.handleRecalculate)))
}

// subjectID is the user a read route is about: ?user_id= or the caller
func subjectID(r *http.Request, user *domain.AuthenticatedUser) string {
	if id := r.URL.Query().Get("user_id"); id != "" {
		return id
	}
	return user.ID
}

func (h *PassportHandler) handleProgress(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	progress, err := h.service.GetProgress(r.Context(), subjectID(r, user))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get passport progress")
		return
	}

	writeJSON(w, http.StatusOK, progress)
}

func (h *PassportHandler) handleUnlock(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req domain.UnlockEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	entry, err := h.service.UnlockEntry(r.Context(), user.ID, &req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to unlock passport entry")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"entry": entry,
	})
}

func (h *PassportHandler) handleNextToUnlock(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	hints, err := h.service.NextToUnlock(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get unlock hints")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"hints": hints,
	})
}

func (h *PassportHandler) handleIdentity(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	identity, err := h.service.GetIdentity(r.Context(), subjectID(r, user))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get passport identity")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"identity": identity,
	})
}

func (h *PassportHandler) handleStamps(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	stamps, err := h.service.GetStamps(r.Context(), subjectID(r, user), domain.Rarity(r.URL.Query().Get("rarity")))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get stamps")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"stamps": stamps,
	})
}

func (h *PassportHandler) handleTimeline(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	timeline, err := h.service.GetTimeline(r.Context(), subjectID(r, user))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get timeline")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"timeline": timeline,
	})
}

func (h *PassportHandler) handlePin(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req pinTimelineRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ReviewID == "" {
		WriteJSONError(w, "Missing review_id", http.StatusBadRequest)
		return
	}

	milestone, err := h.service.PinTimelineEvent(r.Context(), user.ID, req.ReviewID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to pin timeline event")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"milestone": milestone,
	})
}

func (h *PassportHandler) handleUnpin(w http.ResponseWriter, r *http.Request) {
	h.timelineMutation(w, r, h.service.UnpinTimelineEvent, "Failed to unpin timeline event")
}

func (h *PassportHandler) handleDeleteTimelineEntry(w http.ResponseWriter, r *http.Request) {
	h.timelineMutation(w, r, h.service.DeleteTimelineEntry, "Failed to delete timeline entry")
}

func (h *PassportHandler) timelineMutation(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, userID, timelineID string) error, failure string) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req timelineEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.TimelineID == "" {
		WriteJSONError(w, "Missing timeline_id", http.StatusBadRequest)
		return
	}

	if err := apply(r.Context(), user.ID, req.TimelineID); err != nil {
		writeServiceError(w, h.logger, err, failure)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func (h *PassportHandler) handleAddMilestone(w http.ResponseWriter, r *http.Request) {
	h.milestoneMutation(w, r, h.service.AddMilestone, http.StatusCreated, "Failed to add milestone")
}

func (h *PassportHandler) handleUpdateMilestone(w http.ResponseWriter, r *http.Request) {
	h.milestoneMutation(w, r, h.service.UpdateMilestone, http.StatusOK, "Failed to update milestone")
}

func (h *PassportHandler) milestoneMutation(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, userID string, req *domain.MilestoneRequest) (*domain.TimelineMilestone, error),
	status int,
	failure string,
) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req domain.MilestoneRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	milestone, err := apply(r.Context(), user.ID, &req)
	if err != nil {
		writeServiceError(w, h.logger, err, failure)
		return
	}

	writeJSON(w, status, map[string]interface{}{
		"milestone": milestone,
	})
}

func (h *PassportHandler) handleTasteMap(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	tasteMap, err := h.service.GetTasteMap(r.Context(), subjectID(r, user))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get taste map")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"taste_map": tasteMap,
	})
}

func (h *PassportHandler) handleRecalculate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	identity, err := h.service.Recalculate(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to recalculate passport")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"identity": identity,
	})
}
