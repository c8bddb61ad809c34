package http

import (
	"net/http"

	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/http/middleware"
	"github.com/synthapp/synth/pkg/logger"
	"github.com/synthapp/synth/pkg/ratelimiter"
)

// ProviderHandler proxies the third-party event APIs behind rate limit tiers
type ProviderHandler struct {
	service     domain.DiscoveryService
	authService domain.AuthService
	rateLimit   *middleware.RateLimit
	logger      logger.Logger
}

func NewProviderHandler(service domain.DiscoveryService, authService domain.AuthService, rateLimit *middleware.RateLimit, logger logger.Logger) *ProviderHandler {
	return &ProviderHandler{
		service:     service,
		authService: authService,
		rateLimit:   rateLimit,
		logger:      logger,
	}
}

func (h *ProviderHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.authService).RequireAuth()
	moderate := h.rateLimit.Tier(ratelimiter.TierModerate)
	strict := h.rateLimit.Tier(ratelimiter.TierStrict)

	mux.Handle("/api/providers.ticketmaster.events", moderate(requireAuth(http.HandlerFunc(h.handleTicketmaster))))
	mux.Handle("/api/providers.jambase.events", moderate(requireAuth(http.HandlerFunc(h.handleJamBase))))
	mux.Handle("/api/providers.setlists.search", strict(requireAuth(http.HandlerFunc(h.handleSetlists))))
}

func (h *ProviderHandler) handleTicketmaster(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	q := r.URL.Query()

	query := &domain.TicketmasterQuery{
		Keyword:            q.Get("keyword"),
		City:               q.Get("city"),
		StateCode:          q.Get("stateCode"),
		CountryCode:        q.Get("countryCode"),
		PostalCode:         q.Get("postalCode"),
		LatLong:            q.Get("latlong"),
		Radius:             q.Get("radius"),
		Unit:               q.Get("unit"),
		ClassificationName: q.Get("classificationName"),
		StartDateTime:      q.Get("startDateTime"),
		EndDateTime:        q.Get("endDateTime"),
		Size:               q.Get("size"),
		Page:               q.Get("page"),
		Sort:               q.Get("sort"),
		Persist:            queryBool(q, "persist"),
	}

	result, err := h.service.TicketmasterEvents(r.Context(), query)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to search Ticketmaster events")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *ProviderHandler) handleJamBase(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	q := r.URL.Query()

	query := &domain.JamBaseQuery{
		ArtistName: q.Get("artistName"),
		EventType:  q.Get("eventType"),
		Persist:    queryBool(q, "persist"),
	}
	var err error
	if query.Page, err = queryInt(q, "page", 0); err != nil {
		writeServiceError(w, h.logger, err, "Invalid page")
		return
	}
	if query.PerPage, err = queryInt(q, "perPage", 0); err != nil {
		writeServiceError(w, h.logger, err, "Invalid perPage")
		return
	}

	result, err := h.service.JamBaseEvents(r.Context(), query)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to search JamBase events")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *ProviderHandler) handleSetlists(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	q := r.URL.Query()

	query := &domain.SetlistQuery{
		ArtistName: q.Get("artistName"),
		Date:       q.Get("date"),
		VenueName:  q.Get("venueName"),
		CityName:   q.Get("cityName"),
		StateCode:  q.Get("stateCode"),
	}

	setlists, err := h.service.SearchSetlists(r.Context(), query)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to search setlists")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"setlists": setlists,
	})
}
