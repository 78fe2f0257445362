package usecase

import (
	"context"
	"errors"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type employerProfileUsecase struct {
	repo     domain.EmployerProfileRepository
	uploader domain.FileUploader
}

// NewEmployerProfileUsecase creates a new employer profile usecase
func NewEmployerProfileUsecase(repo domain.EmployerProfileRepository, uploader domain.FileUploader) domain.EmployerProfileUsecase {
	return &employerProfileUsecase{repo: repo, uploader: uploader}
}

func (uc *employerProfileUsecase) GetMine(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	return uc.load(ctx, userID)
}

// GetByUserID serves the public company page.
func (uc *employerProfileUsecase) GetByUserID(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	return uc.load(ctx, userID)
}

// Upsert creates the profile on first call (company name required) and
// applies a partial update afterwards.
func (uc *employerProfileUsecase) Upsert(ctx context.Context, userID string, in domain.EmployerProfileUpdate) (*domain.EmployerProfile, error) {
	profile, err := uc.repo.GetByUserID(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if in.CompanyName == nil || strings.TrimSpace(*in.CompanyName) == "" {
			return nil, apperror.BadRequest("Company name is required")
		}
		profile = &domain.EmployerProfile{UserID: userID, LogoURL: domain.DefaultCompanyLogo}
		in.Apply(profile)
		if err := uc.repo.Create(ctx, profile); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return nil, apperror.Duplicate("Employer profile already exists")
			}
			return nil, apperror.Internal(err)
		}
	case err != nil:
		return nil, apperror.Internal(err)
	default:
		in.Apply(profile)
		if strings.TrimSpace(profile.CompanyName) == "" {
			return nil, apperror.BadRequest("Company name is required")
		}
		if err := uc.repo.Update(ctx, profile); err != nil {
			return nil, apperror.Internal(err)
		}
	}
	return uc.load(ctx, userID)
}

func (uc *employerProfileUsecase) UploadLogo(ctx context.Context, userID, filename string, data []byte) (*domain.EmployerProfile, error) {
	return uc.uploadImage(ctx, userID, "logos", filename, data, func(p *domain.EmployerProfile, url string) {
		p.LogoURL = url
	})
}

func (uc *employerProfileUsecase) UploadCover(ctx context.Context, userID, filename string, data []byte) (*domain.EmployerProfile, error) {
	return uc.uploadImage(ctx, userID, "covers", filename, data, func(p *domain.EmployerProfile, url string) {
		p.CoverImageURL = url
	})
}

func (uc *employerProfileUsecase) uploadImage(
	ctx context.Context, userID, folder, filename string, data []byte,
	set func(p *domain.EmployerProfile, url string),
) (*domain.EmployerProfile, error) {
	profile, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	url, err := uc.uploader.Upload(ctx, userID, domain.UploadImage, folder, filename, data)
	if err != nil {
		return nil, err
	}
	set(profile, url)
	if err := uc.repo.Update(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}
	return uc.load(ctx, userID)
}

func (uc *employerProfileUsecase) AddLocation(ctx context.Context, userID, address string, headquarters bool) (*domain.EmployerProfile, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, apperror.BadRequest("Address is required")
	}
	profile, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.AddLocation(ctx, profile.ID, &domain.Location{Address: address}, headquarters); err != nil {
		return nil, apperror.Internal(err)
	}
	return uc.load(ctx, userID)
}

func (uc *employerProfileUsecase) SetHeadquarters(ctx context.Context, userID, locationID string) (*domain.EmployerProfile, error) {
	profile, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.SetHeadquarters(ctx, profile.ID, locationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Location not found")
		}
		return nil, apperror.Internal(err)
	}
	return uc.load(ctx, userID)
}

func (uc *employerProfileUsecase) DeleteLocation(ctx context.Context, userID, locationID string) (*domain.EmployerProfile, error) {
	profile, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.DeleteLocation(ctx, profile.ID, locationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Location not found")
		}
		return nil, apperror.Internal(err)
	}
	return uc.load(ctx, userID)
}

func (uc *employerProfileUsecase) load(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	profile, err := uc.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Employer profile not found")
		}
		return nil, apperror.Internal(err)
	}
	profile.CompletionPercentage = profile.Completion()
	return profile, nil
}
