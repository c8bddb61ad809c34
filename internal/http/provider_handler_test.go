package http

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/domain/mocks"
	"github.com/synthapp/synth/internal/http/middleware"
	"github.com/synthapp/synth/pkg/logger"
	"github.com/synthapp/synth/pkg/ratelimiter"
)

func setupProviderHandlerTest(t *testing.T, strictMax int) (*mocks.MockDiscoveryService, *http.ServeMux) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDiscoveryService(ctrl)

	limiter := ratelimiter.NewRateLimiter()
	t.Cleanup(limiter.Stop)
	limiter.SetPolicy(ratelimiter.TierStrict, strictMax, time.Minute)
	limiter.SetPolicy(ratelimiter.TierModerate, 100, time.Minute)

	log := logger.NewMockLogger(t)
	mux := http.NewServeMux()
	NewProviderHandler(service, newAuthMock(ctrl), middleware.NewRateLimit(limiter, log), log).RegisterRoutes(mux)
	return service, mux
}

func TestProviderHandler_Ticketmaster(t *testing.T) {
	service, mux := setupProviderHandlerTest(t, 10)

	service.EXPECT().TicketmasterEvents(gomock.Any(), &domain.TicketmasterQuery{
		Keyword:            "phish",
		City:               "Denver",
		StateCode:          "CO",
		ClassificationName: "music",
		Size:               "50",
		Page:               "2",
		Persist:            true,
	}).Return(&domain.ProviderEventsResult{
		Events:    []*domain.Event{{ID: "e1", Title: "Phish"}},
		Total:     1,
		Page:      2,
		Size:      50,
		Persisted: 1,
	}, nil)

	w := serve(mux, authedRequest(t, http.MethodGet,
		"/api/providers.ticketmaster.events?keyword=phish&city=Denver&stateCode=CO&classificationName=music&size=50&page=2&persist=true", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeResponse(t, w)
	assert.Len(t, body["events"], 1)
	assert.Equal(t, float64(1), body["persisted"])
	assert.Equal(t, "99", w.Header().Get("X-RateLimit-Remaining"))
}

func TestProviderHandler_JamBase(t *testing.T) {
	service, mux := setupProviderHandlerTest(t, 10)

	service.EXPECT().JamBaseEvents(gomock.Any(), &domain.JamBaseQuery{ArtistName: "Goose", EventType: "concerts"}).
		Return(&domain.ProviderEventsResult{Page: 1, Size: 20}, nil)
	service.EXPECT().JamBaseEvents(gomock.Any(), &domain.JamBaseQuery{ArtistName: "Goose", Page: 3, PerPage: 10}).
		Return(nil, &domain.ErrProviderUnavailable{Provider: "jambase", Err: errors.New("status 502")})

	w := serve(mux, authedRequest(t, http.MethodGet, "/api/providers.jambase.events?artistName=Goose&eventType=concerts", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(mux, authedRequest(t, http.MethodGet, "/api/providers.jambase.events?artistName=Goose&page=3&perPage=10", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "jambase is temporarily unavailable", decodeResponse(t, w)["error"])

	w = serve(mux, authedRequest(t, http.MethodGet, "/api/providers.jambase.events?page=first", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProviderHandler_SetlistsStrictTier(t *testing.T) {
	service, mux := setupProviderHandlerTest(t, 1)

	service.EXPECT().SearchSetlists(gomock.Any(), &domain.SetlistQuery{ArtistName: "Wilco", CityName: "Chicago"}).
		Return([]*domain.Setlist{{SetlistFmID: "s1", EventDate: "01-07-2026"}}, nil)

	w := serve(mux, authedRequest(t, http.MethodGet, "/api/providers.setlists.search?artistName=Wilco&cityName=Chicago", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeResponse(t, w)["setlists"], 1)

	w = serve(mux, authedRequest(t, http.MethodGet, "/api/providers.setlists.search?artistName=Wilco&cityName=Chicago", nil))
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	body := decodeResponse(t, w)
	assert.Equal(t, "Rate limit exceeded", body["error"])
	assert.Equal(t, float64(1), body["limit"])
}

func TestProviderHandler_RequiresAuth(t *testing.T) {
	_, mux := setupProviderHandlerTest(t, 10)

	w := serve(mux, newRequest(t, http.MethodGet, "/api/providers.ticketmaster.events?keyword=phish", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
