package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	t.Run("all dependencies up", func(t *testing.T) {
		status, healthy := usecase.NewHealthUsecase(map[string]usecase.HealthCheck{"database": ok}).Check(context.Background())
		assert.True(t, healthy)
		assert.Equal(t, map[string]string{"api": "ok", "database": "ok"}, status)
	})

	t.Run("one dependency down", func(t *testing.T) {
		status, healthy := usecase.NewHealthUsecase(map[string]usecase.HealthCheck{
			"database": ok,
			"redis":    down,
		}).Check(context.Background())
		assert.False(t, healthy)
		assert.Equal(t, "down", status["redis"])
		assert.Equal(t, "ok", status["database"])
	})
}
