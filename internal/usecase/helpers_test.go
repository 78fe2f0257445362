package usecase_test

import (
	"errors"
	"testing"

	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertAppError(t *testing.T, err error, code int) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected *apperror.AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

func ptr[T any](v T) *T {
	return &v
}
