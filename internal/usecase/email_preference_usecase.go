package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"
)

const unsubscribeTokenBytes = 32

type emailPreferenceUsecase struct {
	repo domain.EmailPreferenceRepository
}

func NewEmailPreferenceUsecase(repo domain.EmailPreferenceRepository) domain.EmailPreferenceUsecase {
	return &emailPreferenceUsecase{repo: repo}
}

// Get returns the user's preferences, creating the defaults on first access.
func (uc *emailPreferenceUsecase) Get(ctx context.Context, userID string) (*domain.EmailPreference, error) {
	pref, err := uc.repo.GetByUserID(ctx, userID)
	if err == nil {
		return pref, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	token, _, err := auth.NewOpaqueToken(unsubscribeTokenBytes)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	pref = domain.DefaultEmailPreference(userID, token)
	if err := uc.repo.Create(ctx, pref); err != nil {
		// A concurrent first request created the row.
		if errors.Is(err, domain.ErrDuplicate) {
			if pref, err = uc.repo.GetByUserID(ctx, userID); err == nil {
				return pref, nil
			}
		}
		return nil, apperror.Internal(err)
	}
	return pref, nil
}

func (uc *emailPreferenceUsecase) Update(ctx context.Context, userID string, in domain.EmailPreferenceUpdate) (*domain.EmailPreference, error) {
	pref, err := uc.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	in.Apply(pref)
	if err := uc.repo.Update(ctx, pref); err != nil {
		return nil, apperror.Internal(err)
	}
	return pref, nil
}

// Unsubscribe turns off every email category for the token's owner.
func (uc *emailPreferenceUsecase) Unsubscribe(ctx context.Context, token string) error {
	pref, err := uc.repo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Invalid unsubscribe link")
		}
		return apperror.Internal(err)
	}
	pref.ApplicationUpdates = false
	pref.NewApplications = false
	pref.WeeklyRecommendations = false
	pref.MarketingEmails = false
	if err := uc.repo.Update(ctx, pref); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
