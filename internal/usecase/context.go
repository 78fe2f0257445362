package usecase

import (
	"context"

	"go-jobboard-backend/internal/domain"
)

// requestMeta returns the client IP and request id the HTTP layer stored on ctx.
func requestMeta(ctx context.Context) (ip, requestID string) {
	ip, _ = ctx.Value(domain.KeyClientIP).(string)
	requestID, _ = ctx.Value(domain.KeyRequestID).(string)
	return ip, requestID
}
