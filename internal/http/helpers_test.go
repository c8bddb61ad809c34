package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/domain/mocks"
)

const (
	testToken  = "valid-token"
	testUserID = "user-1"
)

// newAuthMock accepts testToken as testUserID and rejects everything else
func newAuthMock(ctrl *gomock.Controller) *mocks.MockAuthService {
	auth := mocks.NewMockAuthService(ctrl)
	auth.EXPECT().VerifyToken(gomock.Any(), testToken).
		Return(&domain.AuthenticatedUser{ID: testUserID, Email: "fan@example.com"}, nil).AnyTimes()
	auth.EXPECT().VerifyToken(gomock.Any(), gomock.Not(testToken)).
		Return(nil, errors.New("invalid token")).AnyTimes()
	return auth
}

func newRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func authedRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	req := newRequest(t, method, target, body)
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

func serve(mux *http.ServeMux, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}
