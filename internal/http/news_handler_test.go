package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/domain/mocks"
	"github.com/synthapp/synth/pkg/logger"
)

func TestNewsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockNewsService(ctrl)
	mux := http.NewServeMux()
	NewNewsHandler(service, logger.NewMockLogger(t)).RegisterRoutes(mux)

	service.EXPECT().ListNews(gomock.Any(), "all").Return([]*domain.NewsArticle{
		{ID: "a1", Title: "Tour announced", Source: "pitchfork"},
		{ID: "a2", Title: "New single", Source: "nme"},
	}, nil)
	service.EXPECT().ListNews(gomock.Any(), "pitchfork").Return([]*domain.NewsArticle{{ID: "a1"}}, nil)
	service.EXPECT().ListNews(gomock.Any(), "myspace").Return(nil, domain.NewValidationError("unknown news source: myspace"))
	service.EXPECT().ListNews(gomock.Any(), "nme").Return(nil, errors.New("feed timeout"))
	service.EXPECT().Sources().Return(domain.NewsSources)

	w := serve(mux, newRequest(t, http.MethodGet, "/api/news.list", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeResponse(t, w)
	assert.Equal(t, "all", body["source"])
	assert.Equal(t, float64(2), body["total"])

	w = serve(mux, newRequest(t, http.MethodGet, "/api/news.list?source=pitchfork", nil))
	assert.Equal(t, float64(1), decodeResponse(t, w)["total"])

	w = serve(mux, newRequest(t, http.MethodGet, "/api/news.list?source=myspace", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(mux, newRequest(t, http.MethodGet, "/api/news.list?source=nme", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch news", decodeResponse(t, w)["error"])

	w = serve(mux, newRequest(t, http.MethodGet, "/api/news.sources", nil))
	assert.Len(t, decodeResponse(t, w)["sources"], len(domain.NewsSources))
}
