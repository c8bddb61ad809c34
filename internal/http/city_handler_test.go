package http

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/domain/mocks"
	"github.com/synthapp/synth/pkg/logger"
)

func setupCityHandlerTest(t *testing.T) (*mocks.MockCityService, *http.ServeMux) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCityService(ctrl)
	mux := http.NewServeMux()
	NewCityHandler(service, logger.NewMockLogger(t)).RegisterRoutes(mux)
	return service, mux
}

func TestCityHandler_List(t *testing.T) {
	service, mux := setupCityHandlerTest(t)

	service.EXPECT().ListCities(gomock.Any(), 1).Return([]*domain.City{{Name: "Austin", State: "TX", EventCount: 12}}, nil)
	service.EXPECT().ListCities(gomock.Any(), 5).Return([]*domain.City{}, nil)

	w := serve(mux, newRequest(t, http.MethodGet, "/api/cities.list", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeResponse(t, w)["cities"], 1)

	w = serve(mux, newRequest(t, http.MethodGet, "/api/cities.list?min_events=5", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(mux, newRequest(t, http.MethodGet, "/api/cities.list?min_events=many", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "min_events must be an integer", decodeResponse(t, w)["error"])
}

func TestCityHandler_Search(t *testing.T) {
	service, mux := setupCityHandlerTest(t)

	service.EXPECT().SearchCities(gomock.Any(), "nyc", defaultCitySearchLimit).
		Return([]*domain.City{{Name: "New York", State: "NY"}}, nil)

	w := serve(mux, newRequest(t, http.MethodGet, "/api/cities.search?q=nyc", nil))
	assert.Len(t, decodeResponse(t, w)["cities"], 1)

	w = serve(mux, newRequest(t, http.MethodGet, "/api/cities.search", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCityHandler_Nearby(t *testing.T) {
	service, mux := setupCityHandlerTest(t)

	service.EXPECT().NearbyCities(gomock.Any(), &domain.NearbyCitiesRequest{Latitude: 30.27, Longitude: -97.74, RadiusMiles: defaultNearbyRadius}).
		Return([]*domain.City{{Name: "Austin"}}, nil)
	service.EXPECT().NearbyCities(gomock.Any(), &domain.NearbyCitiesRequest{Latitude: 30.27, Longitude: -97.74, RadiusMiles: 120}).
		Return([]*domain.City{}, nil)

	w := serve(mux, newRequest(t, http.MethodGet, "/api/cities.nearby?lat=30.27&lng=-97.74", nil))
	assert.Len(t, decodeResponse(t, w)["cities"], 1)

	w = serve(mux, newRequest(t, http.MethodGet, "/api/cities.nearby?lat=30.27&lng=-97.74&radius=120", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(mux, newRequest(t, http.MethodGet, "/api/cities.nearby?lat=30.27", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "lat and lng are required", decodeResponse(t, w)["error"])

	w = serve(mux, newRequest(t, http.MethodGet, "/api/cities.nearby?lat=north&lng=-97.74", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
