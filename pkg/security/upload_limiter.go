package security

import (
	"context"
	"time"
)

// UploadLimiter caps the number of uploads a single user may make per hour.
type UploadLimiter struct {
	maxPerHour int
	counter    *Counter
}

// NewUploadLimiter returns a limiter allowing perHour uploads (default 20).
func NewUploadLimiter(perHour int, counter *Counter) *UploadLimiter {
	if perHour <= 0 {
		perHour = 20
	}
	return &UploadLimiter{maxPerHour: perHour, counter: counter}
}

// Allow records an upload for userID and reports whether it is within the
// hourly budget. Counter failures fail open.
func (l *UploadLimiter) Allow(ctx context.Context, userID string) bool {
	n, _, err := l.counter.Incr(ctx, "rl:upload:"+userID, time.Hour)
	if err != nil {
		return true
	}
	return n <= l.maxPerHour
}
