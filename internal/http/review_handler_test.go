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

func setupReviewHandlerTest(t *testing.T) (*mocks.MockReviewService, *http.ServeMux) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReviewService(ctrl)
	mux := http.NewServeMux()
	NewReviewHandler(service, newAuthMock(ctrl), logger.NewMockLogger(t)).RegisterRoutes(mux)
	return service, mux
}

func TestReviewHandler_Create(t *testing.T) {
	service, mux := setupReviewHandlerTest(t)

	service.EXPECT().CreateReview(gomock.Any(), testUserID, &domain.CreateReviewRequest{EventID: "e1", Rating: 4.5, WasThere: true}).
		Return(&domain.Review{ID: "r1", EventID: "e1", Rating: 4.5}, nil)
	service.EXPECT().CreateReview(gomock.Any(), testUserID, &domain.CreateReviewRequest{EventID: "e1", Rating: 7}).
		Return(nil, domain.NewValidationError("rating must be between 0.5 and 5 in 0.5 steps"))
	service.EXPECT().CreateReview(gomock.Any(), testUserID, &domain.CreateReviewRequest{EventID: "e2", Rating: 3}).
		Return(nil, &domain.ErrConflict{Message: "review already exists"})

	w := serve(mux, authedRequest(t, http.MethodPost, "/api/reviews.create", map[string]interface{}{
		"event_id": "e1", "rating": 4.5, "was_there": true,
	}))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = serve(mux, authedRequest(t, http.MethodPost, "/api/reviews.create", map[string]interface{}{
		"event_id": "e1", "rating": 7,
	}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(mux, authedRequest(t, http.MethodPost, "/api/reviews.create", map[string]interface{}{
		"event_id": "e2", "rating": 3,
	}))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestReviewHandler_UpdateAndDelete(t *testing.T) {
	service, mux := setupReviewHandlerTest(t)

	service.EXPECT().UpdateReview(gomock.Any(), testUserID, gomock.Any()).Return(nil, domain.ErrForbidden)
	service.EXPECT().DeleteReview(gomock.Any(), testUserID, "r1").Return(nil)

	w := serve(mux, authedRequest(t, http.MethodPost, "/api/reviews.update", map[string]interface{}{"id": "r9", "rating": 3}))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = serve(mux, authedRequest(t, http.MethodPost, "/api/reviews.update", map[string]interface{}{"rating": 3}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(mux, authedRequest(t, http.MethodPost, "/api/reviews.delete", map[string]string{"id": "r1"}))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReviewHandler_Lists(t *testing.T) {
	service, mux := setupReviewHandlerTest(t)

	service.EXPECT().ListEventReviews(gomock.Any(), "e1").Return([]*domain.Review{{ID: "r1"}}, nil)
	service.EXPECT().ListUserReviews(gomock.Any(), testUserID, testUserID).Return([]*domain.Review{}, nil)
	service.EXPECT().ListUserReviews(gomock.Any(), testUserID, "u2").Return([]*domain.Review{}, nil)

	w := serve(mux, authedRequest(t, http.MethodGet, "/api/reviews.listForEvent?event_id=e1", nil))
	assert.Len(t, decodeResponse(t, w)["reviews"], 1)

	w = serve(mux, authedRequest(t, http.MethodGet, "/api/reviews.listForUser", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(mux, authedRequest(t, http.MethodGet, "/api/reviews.listForUser?user_id=u2", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
