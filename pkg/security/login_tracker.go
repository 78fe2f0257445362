package security

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// LoginTrackerConfig holds configuration for login tracking
type LoginTrackerConfig struct {
	MaxAttempts   int           // failed attempts before the account is blocked
	BlockDuration time.Duration // window for counting attempts and length of the block
}

// DefaultLoginTrackerConfig returns sensible defaults
func DefaultLoginTrackerConfig() LoginTrackerConfig {
	return LoginTrackerConfig{
		MaxAttempts:   5,
		BlockDuration: 15 * time.Minute,
	}
}

const failLoginPrefix = "fail:login:"

// LoginTracker counts failed logins per email and blocks further attempts
// once MaxAttempts is reached within BlockDuration.
type LoginTracker struct {
	config  LoginTrackerConfig
	counter *Counter
	logger  *SecurityLogger
}

func NewLoginTracker(config LoginTrackerConfig, counter *Counter, logger *SecurityLogger) *LoginTracker {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = DefaultLoginTrackerConfig().MaxAttempts
	}
	if config.BlockDuration <= 0 {
		config.BlockDuration = DefaultLoginTrackerConfig().BlockDuration
	}
	return &LoginTracker{config: config, counter: counter, logger: logger}
}

func loginKey(email string) string {
	return failLoginPrefix + strings.ToLower(strings.TrimSpace(email))
}

// IsBlocked reports whether email has exhausted its attempts.
func (lt *LoginTracker) IsBlocked(ctx context.Context, email string) (bool, error) {
	n, err := lt.counter.Get(ctx, loginKey(email))
	if err != nil {
		return false, fmt.Errorf("check login block: %w", err)
	}
	return n >= lt.config.MaxAttempts, nil
}

// RecordFailedAttempt counts a failure and reports whether email is now blocked.
func (lt *LoginTracker) RecordFailedAttempt(ctx context.Context, email, ip, requestID string) (bool, error) {
	n, _, err := lt.counter.Incr(ctx, loginKey(email), lt.config.BlockDuration)
	if err != nil {
		return false, fmt.Errorf("record failed login: %w", err)
	}
	lt.logger.LogLoginFailed(ctx, email, ip, requestID, "invalid_credentials")

	if n == lt.config.MaxAttempts {
		lt.logger.Log(ctx, SecurityEvent{
			Event:        EventBlockCreated,
			SubjectType:  "email",
			SubjectValue: email,
			IP:           ip,
			RequestID:    requestID,
			Details:      map[string]interface{}{"duration_minutes": int(lt.config.BlockDuration.Minutes())},
		})
	}
	return n >= lt.config.MaxAttempts, nil
}

// ClearAttempts clears failed login attempts on successful login
func (lt *LoginTracker) ClearAttempts(ctx context.Context, email string) error {
	return lt.counter.Reset(ctx, loginKey(email))
}
