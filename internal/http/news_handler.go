package http

import (
	"net/http"

	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/pkg/logger"
)

type NewsHandler struct {
	service domain.NewsService
	logger  logger.Logger
}

func NewNewsHandler(service domain.NewsService, logger logger.Logger) *NewsHandler {
	return &NewsHandler{
		service: service,
		logger:  logger,
	}
}

func (h *NewsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/news.list", h.handleList)
	mux.HandleFunc("/api/news.sources", h.handleSources)
}

func (h *NewsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	source := r.URL.Query().Get("source")
	if source == "" {
		source = "all"
	}

	articles, err := h.service.ListNews(r.Context(), source)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to fetch news")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"articles": articles,
		"source":   source,
		"total":    len(articles),
	})
}

func (h *NewsHandler) handleSources(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sources": h.service.Sources(),
	})
}
