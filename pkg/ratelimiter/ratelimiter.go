package ratelimiter

import (
	"strings"
	"sync"
	"time"
)

// Tier names used by the HTTP rate limit middleware
const (
	TierStrict   = "strict"
	TierModerate = "moderate"
	TierLenient  = "lenient"
)

// RatePolicy defines the rate limit configuration for a namespace
type RatePolicy struct {
	MaxAttempts int
	Window      time.Duration
}

// Decision is the outcome of a single Take call
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	// ResetAt is when the oldest counted request leaves the window
	ResetAt time.Time
}

// RetryAfter returns the whole seconds until the window frees a slot, at least 1
func (d Decision) RetryAfter(now time.Time) int {
	secs := int(d.ResetAt.Sub(now).Seconds())
	if d.ResetAt.Sub(now) > time.Duration(secs)*time.Second {
		secs++
	}
	if secs < 1 {
		secs = 1
	}
	return secs
}

// RateLimiter is an in-memory sliding window limiter. Attempts are tracked per
// namespace:key and each namespace carries its own policy.
//
//	rl := ratelimiter.NewRateLimiter()
//	rl.SetPolicy(ratelimiter.TierStrict, 10, time.Minute)
//	d := rl.Take(ratelimiter.TierStrict, clientKey)
type RateLimiter struct {
	mu          sync.Mutex
	attempts    map[string][]time.Time
	policies    map[string]RatePolicy
	now         func() time.Time
	stopCleanup chan struct{}
	stopped     bool
}

// NewRateLimiter creates a limiter and starts its background cleanup goroutine.
// Call Stop when done.
func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		attempts:    make(map[string][]time.Time),
		policies:    make(map[string]RatePolicy),
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}

	go rl.cleanup(time.Minute)

	return rl
}

// SetPolicy configures the rate limit policy for a namespace
func (rl *RateLimiter) SetPolicy(namespace string, maxAttempts int, window time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.policies[namespace] = RatePolicy{
		MaxAttempts: maxAttempts,
		Window:      window,
	}
}

// Policy returns the policy of a namespace
func (rl *RateLimiter) Policy(namespace string) (RatePolicy, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	p, ok := rl.policies[namespace]
	return p, ok
}

// Take records an attempt when it fits in the window and reports the resulting quota.
// Namespaces without a policy are denied.
func (rl *RateLimiter) Take(namespace, key string) Decision {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	policy, exists := rl.policies[namespace]
	if !exists {
		return Decision{Allowed: false}
	}

	now := rl.now()
	compositeKey := namespace + ":" + key
	valid := pruned(rl.attempts[compositeKey], now.Add(-policy.Window))

	decision := Decision{Limit: policy.MaxAttempts}
	if len(valid) < policy.MaxAttempts {
		valid = append(valid, now)
		decision.Allowed = true
	}
	rl.attempts[compositeKey] = valid

	decision.Remaining = policy.MaxAttempts - len(valid)
	if decision.Remaining < 0 {
		decision.Remaining = 0
	}
	decision.ResetAt = now.Add(policy.Window)
	if len(valid) > 0 {
		decision.ResetAt = valid[0].Add(policy.Window)
	}
	return decision
}

// Allow is Take reduced to its verdict
func (rl *RateLimiter) Allow(namespace, key string) bool {
	return rl.Take(namespace, key).Allowed
}

// Reset clears all recorded attempts for the given namespace and key
func (rl *RateLimiter) Reset(namespace, key string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	delete(rl.attempts, namespace+":"+key)
}

// pruned drops timestamps at or before cutoff. Timestamps are appended in order.
func pruned(list []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(list) && !list[i].After(cutoff) {
		i++
	}
	out := make([]time.Time, len(list)-i, len(list)-i+1)
	copy(out, list[i:])
	return out
}

func (rl *RateLimiter) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-rl.stopCleanup:
			return
		}
	}
}

// sweep removes keys without attempts inside their namespace window
func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for compositeKey, list := range rl.attempts {
		namespace, _, _ := strings.Cut(compositeKey, ":")
		policy, exists := rl.policies[namespace]
		if !exists || len(pruned(list, now.Add(-policy.Window))) == 0 {
			delete(rl.attempts, compositeKey)
		}
	}
}

// Stop stops the background cleanup goroutine. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if !rl.stopped {
		close(rl.stopCleanup)
		rl.stopped = true
	}
}
