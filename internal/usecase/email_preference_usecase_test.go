package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEmailPreferenceGetCreatesDefaults(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPreferenceRepo)
	repo.On("GetByUserID", ctx, "u1").Return(nil, domain.ErrNotFound)
	repo.On("Create", ctx, mock.AnythingOfType("*domain.EmailPreference")).Return(nil)
	uc := usecase.NewEmailPreferenceUsecase(repo)

	pref, err := uc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, pref.ApplicationUpdates)
	assert.True(t, pref.NewApplications)
	assert.True(t, pref.WeeklyRecommendations)
	assert.False(t, pref.MarketingEmails)
	assert.Len(t, pref.UnsubscribeToken, 64)
}

func TestEmailPreferenceGetConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	existing := domain.DefaultEmailPreference("u1", "winner-token")
	repo := new(MockPreferenceRepo)
	repo.On("GetByUserID", ctx, "u1").Return(nil, domain.ErrNotFound).Once()
	repo.On("Create", ctx, mock.AnythingOfType("*domain.EmailPreference")).Return(domain.ErrDuplicate)
	repo.On("GetByUserID", ctx, "u1").Return(existing, nil).Once()
	uc := usecase.NewEmailPreferenceUsecase(repo)

	pref, err := uc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "winner-token", pref.UnsubscribeToken)
	repo.AssertExpectations(t)
}

func TestEmailPreferenceUpdate(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPreferenceRepo)
	repo.On("GetByUserID", ctx, "u1").Return(domain.DefaultEmailPreference("u1", "tok"), nil)
	repo.On("Update", ctx, mock.MatchedBy(func(p *domain.EmailPreference) bool {
		return p.MarketingEmails && p.ApplicationUpdates
	})).Return(nil)
	uc := usecase.NewEmailPreferenceUsecase(repo)

	pref, err := uc.Update(ctx, "u1", domain.EmailPreferenceUpdate{MarketingEmails: ptr(true)})
	require.NoError(t, err)
	assert.True(t, pref.MarketingEmails)
	repo.AssertExpectations(t)
}

func TestUnsubscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("turns everything off", func(t *testing.T) {
		repo := new(MockPreferenceRepo)
		pref := domain.DefaultEmailPreference("u1", "tok")
		pref.MarketingEmails = true
		repo.On("GetByToken", ctx, "tok").Return(pref, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(p *domain.EmailPreference) bool {
			return !p.ApplicationUpdates && !p.NewApplications && !p.WeeklyRecommendations && !p.MarketingEmails
		})).Return(nil)
		uc := usecase.NewEmailPreferenceUsecase(repo)

		require.NoError(t, uc.Unsubscribe(ctx, "tok"))
		repo.AssertExpectations(t)
	})

	t.Run("unknown token", func(t *testing.T) {
		repo := new(MockPreferenceRepo)
		repo.On("GetByToken", ctx, "bad").Return(nil, domain.ErrNotFound)
		uc := usecase.NewEmailPreferenceUsecase(repo)

		assertAppError(t, uc.Unsubscribe(ctx, "bad"), http.StatusNotFound)
	})
}
