package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/domain/mocks"
	"github.com/synthapp/synth/pkg/logger"
)

func setupEventHandlerTest(t *testing.T) (*mocks.MockEventService, *http.ServeMux) {
	service, _, mux := setupEventHandlerWithProfiles(t)
	return service, mux
}

func setupEventHandlerWithProfiles(t *testing.T) (*mocks.MockEventService, *mocks.MockProfileService, *http.ServeMux) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockEventService(ctrl)
	profiles := mocks.NewMockProfileService(ctrl)
	mux := http.NewServeMux()
	NewEventHandler(service, profiles, newAuthMock(ctrl), logger.NewMockLogger(t)).RegisterRoutes(mux)
	return service, profiles, mux
}

func TestEventHandler_SearchIsPublic(t *testing.T) {
	service, mux := setupEventHandlerTest(t)

	service.EXPECT().SearchEvents(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, filter *domain.EventFilter) ([]*domain.Event, error) {
			assert.Equal(t, "Austin", filter.City)
			assert.Equal(t, "TX", filter.State)
			assert.Equal(t, "indie", filter.Genre)
			require.NotNil(t, filter.Latitude)
			assert.InDelta(t, 30.27, *filter.Latitude, 0.001)
			assert.InDelta(t, -97.74, *filter.Longitude, 0.001)
			assert.Equal(t, 25.0, filter.RadiusMiles)
			assert.Equal(t, 20, filter.Limit)
			assert.Equal(t, 40, filter.Offset)
			require.NotNil(t, filter.From)
			assert.Equal(t, time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), *filter.From)
			return []*domain.Event{{ID: "e1", Title: "Show"}}, nil
		})

	w := serve(mux, newRequest(t, http.MethodGet,
		"/api/events.search?city=Austin&state=TX&genre=indie&lat=30.27&lng=-97.74&radius=25&limit=20&offset=40&from=2026-11-01", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeResponse(t, w)
	assert.Equal(t, float64(1), body["total"])
	assert.NotContains(t, body, "viewport")
}

func TestEventHandler_SearchViewport(t *testing.T) {
	service, mux := setupEventHandlerTest(t)

	lat1, lng1 := 40.0, -74.0
	lat2, lng2 := 39.0, -77.0
	service.EXPECT().SearchEvents(gomock.Any(), gomock.Any()).Return([]*domain.Event{
		{ID: "e1", Latitude: &lat1, Longitude: &lng1},
		{ID: "e2", Latitude: &lat2, Longitude: &lng2},
		{ID: "e3"},
	}, nil)

	w := serve(mux, newRequest(t, http.MethodGet, "/api/events.search", nil))
	require.Equal(t, http.StatusOK, w.Code)

	vp := decodeResponse(t, w)["viewport"].(map[string]interface{})
	center := vp["center"].(map[string]interface{})
	assert.InDelta(t, 39.5, center["lat"], 0.0001)
	assert.InDelta(t, -75.5, center["lng"], 0.0001)
	bounds := vp["bounds"].(map[string]interface{})
	assert.InDelta(t, 40.1, bounds["north"], 0.0001)
	assert.InDelta(t, -77.1, bounds["west"], 0.0001)
	assert.Equal(t, float64(8), vp["zoom"])
}

func TestEventHandler_SearchRejectsBadParams(t *testing.T) {
	_, mux := setupEventHandlerTest(t)

	for _, target := range []string{
		"/api/events.search?lat=north",
		"/api/events.search?limit=ten",
		"/api/events.search?from=yesterday",
	} {
		w := serve(mux, newRequest(t, http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestEventHandler_Get(t *testing.T) {
	service, mux := setupEventHandlerTest(t)

	service.EXPECT().GetEvent(gomock.Any(), "e1").Return(&domain.Event{ID: "e1", ArtistName: "Wilco"}, nil)
	service.EXPECT().GetEvent(gomock.Any(), "missing").Return(nil, domain.NewNotFound("event", "missing"))

	w := serve(mux, newRequest(t, http.MethodGet, "/api/events.get?id=e1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	event := decodeResponse(t, w)["event"].(map[string]interface{})
	assert.Equal(t, "Wilco", event["artist_name"])

	w = serve(mux, newRequest(t, http.MethodGet, "/api/events.get?id=missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(mux, newRequest(t, http.MethodGet, "/api/events.get", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEventHandler_SearchFiltersExplicitEventsForMinors(t *testing.T) {
	catalog := func() []*domain.Event {
		return []*domain.Event{
			{ID: "e1", Title: "All Ages Matinee"},
			{ID: "e2", Title: "Midnight Rave 21+"},
			{ID: "e3", Title: "Cypher", Genres: []string{"explicit rap"}},
		}
	}
	birthdayAged := func(years int) *time.Time {
		b := time.Now().UTC().AddDate(-years, 0, -1)
		return &b
	}

	t.Run("signed-in minor", func(t *testing.T) {
		service, profiles, mux := setupEventHandlerWithProfiles(t)
		service.EXPECT().SearchEvents(gomock.Any(), gomock.Any()).Return(catalog(), nil)
		profiles.EXPECT().GetProfile(gomock.Any(), testUserID).
			Return(&domain.Profile{UserID: testUserID, Birthday: birthdayAged(16)}, nil)

		w := serve(mux, authedRequest(t, http.MethodGet, "/api/events.search", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeResponse(t, w)
		assert.Equal(t, float64(1), body["total"])
	})

	t.Run("signed-in adult", func(t *testing.T) {
		service, profiles, mux := setupEventHandlerWithProfiles(t)
		service.EXPECT().SearchEvents(gomock.Any(), gomock.Any()).Return(catalog(), nil)
		profiles.EXPECT().GetProfile(gomock.Any(), testUserID).
			Return(&domain.Profile{UserID: testUserID, Birthday: birthdayAged(30)}, nil)

		w := serve(mux, authedRequest(t, http.MethodGet, "/api/events.search", nil))
		assert.Equal(t, float64(3), decodeResponse(t, w)["total"])
	})

	t.Run("no birthday on file", func(t *testing.T) {
		service, profiles, mux := setupEventHandlerWithProfiles(t)
		service.EXPECT().SearchEvents(gomock.Any(), gomock.Any()).Return(catalog(), nil)
		profiles.EXPECT().GetProfile(gomock.Any(), testUserID).
			Return(&domain.Profile{UserID: testUserID}, nil)

		w := serve(mux, authedRequest(t, http.MethodGet, "/api/events.search", nil))
		assert.Equal(t, float64(3), decodeResponse(t, w)["total"])
	})

	t.Run("anonymous callers skip the profile lookup", func(t *testing.T) {
		service, profiles, mux := setupEventHandlerWithProfiles(t)
		service.EXPECT().SearchEvents(gomock.Any(), gomock.Any()).Return(catalog(), nil)
		profiles.EXPECT().GetProfile(gomock.Any(), gomock.Any()).Times(0)

		w := serve(mux, newRequest(t, http.MethodGet, "/api/events.search", nil))
		assert.Equal(t, float64(3), decodeResponse(t, w)["total"])
	})
}
