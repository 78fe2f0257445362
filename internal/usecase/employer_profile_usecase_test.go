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

func TestEmployerProfileUpsert(t *testing.T) {
	ctx := context.Background()

	t.Run("company name required on create", func(t *testing.T) {
		repo := new(MockEmployerRepo)
		repo.On("GetByUserID", ctx, "emp").Return(nil, domain.ErrNotFound)
		uc := usecase.NewEmployerProfileUsecase(repo, new(MockUploader))

		_, err := uc.Upsert(ctx, "emp", domain.EmployerProfileUpdate{Website: ptr("https://acme.io")})
		assertAppError(t, err, http.StatusBadRequest)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("create uses default logo", func(t *testing.T) {
		repo := new(MockEmployerRepo)
		repo.On("GetByUserID", ctx, "emp").Return(nil, domain.ErrNotFound).Once()
		repo.On("Create", ctx, mock.MatchedBy(func(p *domain.EmployerProfile) bool {
			return p.CompanyName == "Acme" && p.LogoURL == domain.DefaultCompanyLogo
		})).Return(nil)
		repo.On("GetByUserID", ctx, "emp").Return(&domain.EmployerProfile{CompanyName: "Acme", LogoURL: domain.DefaultCompanyLogo}, nil)
		uc := usecase.NewEmployerProfileUsecase(repo, new(MockUploader))

		p, err := uc.Upsert(ctx, "emp", domain.EmployerProfileUpdate{CompanyName: ptr("Acme")})
		require.NoError(t, err)
		assert.Equal(t, 10, p.CompletionPercentage)
	})

	t.Run("update cannot blank company name", func(t *testing.T) {
		repo := new(MockEmployerRepo)
		repo.On("GetByUserID", ctx, "emp").Return(&domain.EmployerProfile{ID: 1, CompanyName: "Acme"}, nil)
		uc := usecase.NewEmployerProfileUsecase(repo, new(MockUploader))

		_, err := uc.Upsert(ctx, "emp", domain.EmployerProfileUpdate{CompanyName: ptr(" ")})
		assertAppError(t, err, http.StatusBadRequest)
	})
}

func TestEmployerLocations(t *testing.T) {
	ctx := context.Background()

	t.Run("add as headquarters", func(t *testing.T) {
		repo := new(MockEmployerRepo)
		repo.On("GetByUserID", ctx, "emp").Return(&domain.EmployerProfile{ID: 1, CompanyName: "Acme"}, nil)
		repo.On("AddLocation", ctx, int64(1), &domain.Location{Address: "1 Main St"}, true).Return(nil)
		uc := usecase.NewEmployerProfileUsecase(repo, new(MockUploader))

		_, err := uc.AddLocation(ctx, "emp", " 1 Main St ", true)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("address required", func(t *testing.T) {
		uc := usecase.NewEmployerProfileUsecase(new(MockEmployerRepo), new(MockUploader))
		_, err := uc.AddLocation(ctx, "emp", "", false)
		assertAppError(t, err, http.StatusBadRequest)
	})

	t.Run("headquarters must belong to profile", func(t *testing.T) {
		repo := new(MockEmployerRepo)
		repo.On("GetByUserID", ctx, "emp").Return(&domain.EmployerProfile{ID: 1}, nil)
		repo.On("SetHeadquarters", ctx, int64(1), "loc-x").Return(domain.ErrNotFound)
		uc := usecase.NewEmployerProfileUsecase(repo, new(MockUploader))

		_, err := uc.SetHeadquarters(ctx, "emp", "loc-x")
		assertAppError(t, err, http.StatusNotFound)
	})
}

func TestUploadLogo(t *testing.T) {
	ctx := context.Background()
	data := []byte{0x89, 'P', 'N', 'G'}
	repo, up := new(MockEmployerRepo), new(MockUploader)
	repo.On("GetByUserID", ctx, "emp").Return(&domain.EmployerProfile{ID: 1, CompanyName: "Acme"}, nil)
	up.On("Upload", ctx, "emp", domain.UploadImage, "logos", "logo.png", data).Return("/uploads/logos/l.png", nil)
	repo.On("Update", ctx, mock.MatchedBy(func(p *domain.EmployerProfile) bool {
		return p.LogoURL == "/uploads/logos/l.png"
	})).Return(nil)
	uc := usecase.NewEmployerProfileUsecase(repo, up)

	_, err := uc.UploadLogo(ctx, "emp", "logo.png", data)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
