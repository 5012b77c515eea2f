package ratelimit

// NopLimiter admits every request. It stands in for the token bucket
// when rate limiting is disabled in config.
type NopLimiter struct{}

// Allow reports true for every key.
func (NopLimiter) Allow(string) bool { return true }

// NewNopLimiter returns a pass-through Limiter.
func NewNopLimiter() Limiter { return NopLimiter{} }
