package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synthapp/synth/pkg/logger"
	"github.com/synthapp/synth/pkg/ratelimiter"
)

func newTestRateLimit(t *testing.T, max int) *RateLimit {
	limiter := ratelimiter.NewRateLimiter()
	t.Cleanup(limiter.Stop)
	limiter.SetPolicy(ratelimiter.TierStrict, max, time.Minute)
	return NewRateLimit(limiter, logger.NewMockLogger(t))
}

func TestRateLimit_Tier(t *testing.T) {
	rl := newTestRateLimit(t, 2)
	handler := rl.Tier(ratelimiter.TierStrict)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	call := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/providers.setlists.search", nil)
		req.RemoteAddr = "203.0.113.9:5555"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	first := call()
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))
	_, err := time.Parse(time.RFC3339, first.Header().Get("X-RateLimit-Reset"))
	assert.NoError(t, err)

	second := call()
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))

	third := call()
	require.Equal(t, http.StatusTooManyRequests, third.Code)
	retryAfter, err := strconv.Atoi(third.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, retryAfter, 1)

	var body rateLimitResponse
	require.NoError(t, json.Unmarshal(third.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Rate limit exceeded", body.Error)
	assert.Equal(t, 2, body.Limit)
	assert.Equal(t, retryAfter, body.RetryAfter)
	assert.Equal(t, "1m0s", body.Window)
	assert.Contains(t, body.Message, "Please try again after")
}

func TestRateLimit_SeparateClients(t *testing.T) {
	rl := newTestRateLimit(t, 1)
	handler := rl.Tier(ratelimiter.TierStrict)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, token := range []string{"aaaaaaaaaaaaaaaa-one", "bbbbbbbbbbbbbbbb-two"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "198.51.100.1:1234"
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, token)
	}
}

func TestRateLimit_FailsOpenWithoutPolicy(t *testing.T) {
	rl := newTestRateLimit(t, 1)
	handler := rl.Tier("unknown")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestClientIdentifier(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.10:4000"
	assert.Equal(t, "192.0.2.10", ClientIdentifier(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")
	assert.Equal(t, "203.0.113.5", ClientIdentifier(req))

	req.Header.Set("Authorization", "Bearer 0123456789abcdefXYZ")
	assert.Equal(t, "203.0.113.5:0123456789abcdef", ClientIdentifier(req))

	req.Header.Set("Authorization", "Bearer short")
	assert.Equal(t, "203.0.113.5:short", ClientIdentifier(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = ""
	req.Header.Set("X-Real-IP", "198.51.100.7")
	assert.Equal(t, "198.51.100.7", ClientIdentifier(req))
}
