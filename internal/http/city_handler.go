package http

import (
	"net/http"

	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/pkg/logger"
)

const (
	defaultCitySearchLimit = 10
	defaultNearbyRadius    = 50
)

// CityHandler serves the public city directory
type CityHandler struct {
	service domain.CityService
	logger  logger.Logger
}

func NewCityHandler(service domain.CityService, logger logger.Logger) *CityHandler {
	return &CityHandler{
		service: service,
		logger:  logger,
	}
}

func (h *CityHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/cities.list", h.handleList)
	mux.HandleFunc("/api/cities.search", h.handleSearch)
	mux.HandleFunc("/api/cities.nearby", h.handleNearby)
}

func (h *CityHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	minEvents, err := queryInt(r.URL.Query(), "min_events", 1)
	if err != nil {
		writeServiceError(w, h.logger, err, "Invalid min_events")
		return
	}

	cities, err := h.service.ListCities(r.Context(), minEvents)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list cities")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"cities": cities,
	})
}

func (h *CityHandler) handleSearch(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	query := r.URL.Query()
	q, ok := requireParam(w, query, "q")
	if !ok {
		return
	}
	limit, err := queryInt(query, "limit", defaultCitySearchLimit)
	if err != nil {
		writeServiceError(w, h.logger, err, "Invalid limit")
		return
	}

	cities, err := h.service.SearchCities(r.Context(), q, limit)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to search cities")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"cities": cities,
	})
}

func (h *CityHandler) handleNearby(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	query := r.URL.Query()
	lat, err := queryFloat(query, "lat")
	if err != nil {
		writeServiceError(w, h.logger, err, "Invalid lat")
		return
	}
	lng, err := queryFloat(query, "lng")
	if err != nil {
		writeServiceError(w, h.logger, err, "Invalid lng")
		return
	}
	if lat == nil || lng == nil {
		WriteJSONError(w, "lat and lng are required", http.StatusBadRequest)
		return
	}
	radius, err := queryFloat(query, "radius")
	if err != nil {
		writeServiceError(w, h.logger, err, "Invalid radius")
		return
	}

	req := &domain.NearbyCitiesRequest{Latitude: *lat, Longitude: *lng, RadiusMiles: defaultNearbyRadius}
	if radius != nil {
		req.RadiusMiles = *radius
	}

	cities, err := h.service.NearbyCities(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to find nearby cities")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"cities": cities,
	})
}
