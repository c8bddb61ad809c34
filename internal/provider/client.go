package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/synthapp/synth/config"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/metrics"
	"github.com/synthapp/synth/pkg/cache"
	"github.com/synthapp/synth/pkg/logger"
	"github.com/synthapp/synth/pkg/tracing"
)

const (
	defaultTimeout   = 10 * time.Second
	maxResponseBytes = 10 << 20
)

// response is a raw upstream reply. Only 5xx and 429 replies count as
// breaker failures; other statuses are returned for the caller to map.
type response struct {
	status int
	body   []byte
}

type statusError struct {
	status int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.status, e.body)
}

// apiClient is the HTTP plumbing shared by every provider: a traced client,
// a circuit breaker and a TTL cache of successful bodies.
type apiClient struct {
	name       string
	baseURL    string
	apiKey     string
	keyParam   string
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker[*response]
	cache      *cache.InMemoryCache[[]byte]
	cacheTTL   time.Duration
	logger     logger.Logger
}

func newAPIClient(name string, cfg config.ProviderConfig, keyParam string, log logger.Logger) *apiClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &apiClient{
		name:       name,
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		keyParam:   keyParam,
		httpClient: tracing.WrapHTTPClient(&http.Client{Timeout: timeout}),
		cb:         newBreaker(name, log),
		cache:      cache.NewInMemoryCache[[]byte](time.Minute),
		cacheTTL:   cfg.CacheTTL,
		logger:     log,
	}
}

// newBreaker opens after a 60% failure rate over at least 10 requests and
// probes again after 2 minutes.
func newBreaker(name string, log logger.Logger) *gobreaker.CircuitBreaker[*response] {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	return gobreaker.NewCircuitBreaker[*response](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			if ratio >= 0.6 {
				log.WithFields(map[string]interface{}{
					"provider": name,
					"failures": counts.TotalFailures,
					"requests": counts.Requests,
				}).Warn("Opening provider circuit breaker")
				return true
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.WithFields(map[string]interface{}{
				"provider": name,
				"from":     stateToString(from),
				"to":       stateToString(to),
			}).Info("Provider circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, stateToString(from), stateToString(to)).Inc()
		},
	})
}

// Close stops the response cache janitor
func (c *apiClient) Close() {
	c.cache.Stop()
}

// get performs a GET through the cache and the breaker. params must not hold
// the API key; it is added here so cache keys never carry secrets.
func (c *apiClient) get(ctx context.Context, path string, params url.Values, header http.Header) (*response, error) {
	key := path + "?" + params.Encode()
	if body, ok := c.cache.Get(key); ok {
		metrics.ProviderCacheHits.WithLabelValues(c.name).Inc()
		return &response{status: http.StatusOK, body: body}, nil
	}
	metrics.ProviderCacheMisses.WithLabelValues(c.name).Inc()

	start := time.Now()
	resp, err := c.execute(func() (*response, error) {
		return c.do(ctx, path, params, header)
	})
	metrics.RecordProviderCall(c.name, err, time.Since(start))
	if err != nil {
		return nil, &domain.ErrProviderUnavailable{Provider: c.name, Err: err}
	}

	if resp.status == http.StatusOK && c.cacheTTL > 0 {
		c.cache.Set(key, resp.body, c.cacheTTL)
	}
	return resp, nil
}

func (c *apiClient) execute(fn func() (*response, error)) (*response, error) {
	resp, err := c.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(c.name, "rejected").Inc()
			c.logger.WithField("provider", c.name).Warn(fmt.Sprintf("Provider request rejected: %v", err))
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(c.name, "failure").Inc()
		}
		return nil, err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(c.name, "success").Inc()
	return resp, nil
}

func (c *apiClient) do(ctx context.Context, path string, params url.Values, header http.Header) (*response, error) {
	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	if c.keyParam != "" {
		query.Set(c.keyParam, c.apiKey)
	}

	target := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for k, values := range header {
		for _, v := range values {
			req.Header.Set(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
		return nil, &statusError{status: resp.StatusCode, body: truncate(string(body), 200)}
	}
	return &response{status: resp.StatusCode, body: body}, nil
}

// unexpected converts a non-200 reply the caller does not handle itself
func (c *apiClient) unexpected(resp *response) error {
	c.logger.WithFields(map[string]interface{}{
		"provider": c.name,
		"status":   resp.status,
	}).Warn("Unexpected provider response")
	return &domain.ErrProviderUnavailable{
		Provider: c.name,
		Err:      &statusError{status: resp.status, body: truncate(string(resp.body), 200)},
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
