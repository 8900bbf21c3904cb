package jira

import (
	"context"

	"golang.org/x/time/rate"
)

// Conservative client-side limit, well below Atlassian's published
// quotas. The tool issues a single search per run, but shared instances
// also serve interactive users.
const (
	requestsPerSecond = 5.0
	burstSize         = 5
)

// RateLimiter throttles requests to the tracker's API using a token
// bucket.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a rate limiter with the default limits.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize),
	}
}

// Wait blocks until a request can be made without exceeding the limit.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}
