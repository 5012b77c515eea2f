package ratelimit

import "time"

// Clock abstracts time so limiter tests can advance it by hand.
type Clock interface {
	Now() time.Time
}

// RealClock delegates to the system clock.
type RealClock struct{}

// Now returns the system time.
func (RealClock) Now() time.Time { return time.Now() }
