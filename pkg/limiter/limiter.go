package limiter

import "golang.org/x/time/rate"

// Limiter adapts a token bucket to the ratelimit.Limiter interface.
type Limiter struct {
	l *rate.Limiter
}

// New creates a limiter allowing limit events per second with the given burst.
func New(limit int, burst int) *Limiter {
	return &Limiter{rate.NewLimiter(rate.Limit(limit), burst)}
}

// Limit reports whether the current call must be rejected.
func (l *Limiter) Limit() bool {
	return !l.l.Allow()
}
