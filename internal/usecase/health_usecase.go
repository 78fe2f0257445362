package usecase

import (
	"context"
	"time"
)

// HealthCheck probes one dependency, e.g. a database ping.
type HealthCheck func(ctx context.Context) error

type HealthUsecase interface {
	// Check reports "ok" or "down" per dependency and whether all are ok.
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	checks  map[string]HealthCheck
	timeout time.Duration
}

func NewHealthUsecase(checks map[string]HealthCheck) HealthUsecase {
	return &healthUsecase{checks: checks, timeout: 2 * time.Second}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	status := map[string]string{"api": "ok"}
	healthy := true
	for name, check := range u.checks {
		cctx, cancel := context.WithTimeout(ctx, u.timeout)
		err := check(cctx)
		cancel()
		if err != nil {
			status[name] = "down"
			healthy = false
			continue
		}
		status[name] = "ok"
	}
	return status, healthy
}
