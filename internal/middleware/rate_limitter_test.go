package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRateLimiterDeniesAfterBurst(t *testing.T) {
	limiter := newRateLimiter(rate.Limit(0), 2)
	bucket := limiter.GetLimiterFrom("10.0.0.1")

	assert.True(t, bucket.Allow())
	assert.True(t, bucket.Allow())
	assert.False(t, bucket.Allow())
}

func TestRateLimiterBucketsPerIP(t *testing.T) {
	limiter := newRateLimiter(rate.Limit(0), 1)

	assert.True(t, limiter.GetLimiterFrom("10.0.0.1").Allow())
	assert.False(t, limiter.GetLimiterFrom("10.0.0.1").Allow())

	// A different client gets its own bucket.
	assert.True(t, limiter.GetLimiterFrom("10.0.0.2").Allow())
}
