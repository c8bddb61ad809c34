package http

import (
	"net/http"
	"net/url"
	"time"

	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/http/middleware"
	"github.com/synthapp/synth/pkg/geo"
	"github.com/synthapp/synth/pkg/logger"
)

const viewportPadding = 0.1

// viewport frames located search results on a map
type viewport struct {
	Center geo.Point  `json:"center"`
	Bounds geo.Bounds `json:"bounds"`
	Zoom   int        `json:"zoom"`
}

// EventHandler serves the public event catalog. Signed-in callers younger
// than domain.AdultAge get explicit events filtered out of searches.
type EventHandler struct {
	service     domain.EventService
	profiles    domain.ProfileService
	authService domain.AuthService
	logger      logger.Logger
}

func NewEventHandler(service domain.EventService, profiles domain.ProfileService, authService domain.AuthService, logger logger.Logger) *EventHandler {
	return &EventHandler{
		service:     service,
		profiles:    profiles,
		authService: authService,
		logger:      logger,
	}
}

func (h *EventHandler) RegisterRoutes(mux *http.ServeMux) {
	optionalAuth := middleware.NewAuthMiddleware(h.authService).OptionalAuth()

	mux.HandleFunc("/api/events.get", h.handleGet)
	mux.Handle("/api/events.search", optionalAuth(http.HandlerFunc(h.handleSearch)))
}

func (h *EventHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	id, ok := requireParam(w, r.URL.Query(), "id")
	if !ok {
		return
	}

	event, err := h.service.GetEvent(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get event")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"event": event,
	})
}

func (h *EventHandler) handleSearch(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	filter, err := eventFilterFromQuery(r.URL.Query())
	if err != nil {
		writeServiceError(w, h.logger, err, "Invalid search")
		return
	}

	events, err := h.service.SearchEvents(r.Context(), filter)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to search events")
		return
	}
	if age, ok := h.callerAge(r); ok {
		events = domain.FilterForMinors(events, age)
	}

	response := map[string]interface{}{
		"events": events,
		"total":  len(events),
	}
	if vp := viewportOf(events); vp != nil {
		response["viewport"] = vp
	}
	writeJSON(w, http.StatusOK, response)
}

// callerAge is known only for signed-in callers with a birthday on their profile
func (h *EventHandler) callerAge(r *http.Request) (int, bool) {
	user, ok := domain.UserFromContext(r.Context())
	if !ok || user.ID == "" {
		return 0, false
	}
	profile, err := h.profiles.GetProfile(r.Context(), user.ID)
	if err != nil {
		if !domain.IsNotFound(err) {
			h.logger.WithField("user_id", user.ID).Warn("Failed to load profile for content filter: " + err.Error())
		}
		return 0, false
	}
	if profile.Birthday == nil {
		return 0, false
	}
	return domain.AgeOn(*profile.Birthday, time.Now().UTC()), true
}

func viewportOf(events []*domain.Event) *viewport {
	var points []geo.Point
	for _, e := range events {
		if e.HasLocation() {
			points = append(points, geo.Point{Lat: *e.Latitude, Lng: *e.Longitude})
		}
	}
	if len(points) == 0 {
		return nil
	}
	bounds := geo.BoundsOf(points, viewportPadding)
	return &viewport{
		Center: geo.Center(points),
		Bounds: bounds,
		Zoom:   bounds.ZoomLevel(),
	}
}

func eventFilterFromQuery(values url.Values) (*domain.EventFilter, error) {
	filter := &domain.EventFilter{
		Query:       values.Get("q"),
		City:        values.Get("city"),
		State:       values.Get("state"),
		Artist:      values.Get("artist"),
		Genre:       values.Get("genre"),
		IncludePast: queryBool(values, "include_past"),
	}

	var err error
	if filter.From, err = queryTime(values, "from"); err != nil {
		return nil, err
	}
	if filter.To, err = queryTime(values, "to"); err != nil {
		return nil, err
	}
	if filter.Latitude, err = queryFloat(values, "lat"); err != nil {
		return nil, err
	}
	if filter.Longitude, err = queryFloat(values, "lng"); err != nil {
		return nil, err
	}
	radius, err := queryFloat(values, "radius")
	if err != nil {
		return nil, err
	}
	if radius != nil {
		filter.RadiusMiles = *radius
	}
	if filter.Limit, err = queryInt(values, "limit", 0); err != nil {
		return nil, err
	}
	if filter.Offset, err = queryInt(values, "offset", 0); err != nil {
		return nil, err
	}
	return filter, nil
}

// queryTime accepts RFC 3339 timestamps or plain dates
func queryTime(values url.Values, name string) (*time.Time, error) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, domain.NewValidationError(name + " must be a date (YYYY-MM-DD) or RFC 3339 timestamp")
}
