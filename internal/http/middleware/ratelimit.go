package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/synthapp/synth/internal/metrics"
	"github.com/synthapp/synth/pkg/logger"
	"github.com/synthapp/synth/pkg/ratelimiter"
)

const tokenPrefixLength = 16

// rateLimitResponse is the body of a 429 answer
type rateLimitResponse struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retry_after"`
	Limit      int    `json:"limit"`
	Window     string `json:"window"`
}

// RateLimit throttles clients per tier. A tier without a policy lets every
// request through.
type RateLimit struct {
	limiter *ratelimiter.RateLimiter
	logger  logger.Logger
	now     func() time.Time
}

func NewRateLimit(limiter *ratelimiter.RateLimiter, log logger.Logger) *RateLimit {
	return &RateLimit{
		limiter: limiter,
		logger:  log,
		now:     time.Now,
	}
}

// Tier returns a middleware counting requests against the named tier
func (rl *RateLimit) Tier(tier string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			policy, ok := rl.limiter.Policy(tier)
			if !ok || policy.MaxAttempts <= 0 {
				rl.logger.WithField("tier", tier).Warn("Rate limit tier has no policy, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			identifier := ClientIdentifier(r)
			decision := rl.limiter.Take(tier, identifier)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
			w.Header().Set("X-RateLimit-Reset", decision.ResetAt.UTC().Format(time.RFC3339))

			if decision.Allowed {
				next.ServeHTTP(w, r)
				return
			}

			retryAfter := decision.RetryAfter(rl.now())
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			metrics.APIRateLimitHits.WithLabelValues(tier).Inc()
			rl.logger.WithFields(map[string]interface{}{
				"tier":        tier,
				"identifier":  identifier,
				"limit":       decision.Limit,
				"retry_after": retryAfter,
			}).Warn("Rate limit exceeded")

			writeJSON(w, http.StatusTooManyRequests, rateLimitResponse{
				Success:    false,
				Error:      "Rate limit exceeded",
				Message:    fmt.Sprintf("Too many requests. Please try again after %d seconds.", retryAfter),
				RetryAfter: retryAfter,
				Limit:      decision.Limit,
				Window:     policy.Window.String(),
			})
		})
	}
}

// ClientIdentifier keys a client by IP, plus the first characters of its
// bearer token when present so users behind one NAT are counted apart.
func ClientIdentifier(r *http.Request) string {
	ip := clientIP(r)
	if token, ok := BearerToken(r); ok {
		if len(token) > tokenPrefixLength {
			token = token[:tokenPrefixLength]
		}
		return ip + ":" + token
	}
	return ip
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		if r.RemoteAddr == "" {
			return "unknown"
		}
		return r.RemoteAddr
	}
	return host
}
