package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCandidateProfileGetMine(t *testing.T) {
	ctx := context.Background()

	t.Run("missing profile", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		repo.On("GetByUserID", ctx, "cand").Return(nil, domain.ErrNotFound)
		uc := usecase.NewCandidateProfileUsecase(repo, new(MockUploader))

		_, err := uc.GetMine(ctx, "cand")
		assertAppError(t, err, http.StatusNotFound)
	})

	t.Run("completion is filled in", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		repo.On("GetByUserID", ctx, "cand").Return(&domain.CandidateProfile{
			Phone: "1", Bio: "b", ResumeURL: "cv.pdf",
		}, nil)
		uc := usecase.NewCandidateProfileUsecase(repo, new(MockUploader))

		p, err := uc.GetMine(ctx, "cand")
		require.NoError(t, err)
		assert.Equal(t, 27, p.CompletionPercentage)
	})
}

func TestCandidateProfileVisibility(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCandidateRepo)
	repo.On("GetByUserID", ctx, "cand").Return(&domain.CandidateProfile{UserID: "cand"}, nil)
	uc := usecase.NewCandidateProfileUsecase(repo, new(MockUploader))

	_, err := uc.GetByUserID(ctx, domain.Actor{UserID: "cand2", Role: domain.RoleCandidate}, "cand")
	assertAppError(t, err, http.StatusForbidden)

	_, err = uc.GetByUserID(ctx, domain.Actor{UserID: "emp", Role: domain.RoleEmployer}, "cand")
	require.NoError(t, err)
	_, err = uc.GetByUserID(ctx, domain.Actor{UserID: "cand", Role: domain.RoleCandidate}, "cand")
	require.NoError(t, err)
}

func TestCandidateProfileUpsertCreatesOnFirstCall(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCandidateRepo)
	repo.On("GetByUserID", ctx, "cand").Return(nil, domain.ErrNotFound).Once()
	repo.On("Upsert", ctx, mock.MatchedBy(func(p *domain.CandidateProfile) bool {
		return p.UserID == "cand" && p.Headline == "Gopher"
	})).Return(nil)
	repo.On("GetByUserID", ctx, "cand").Return(&domain.CandidateProfile{UserID: "cand", Headline: "Gopher"}, nil).Once()
	uc := usecase.NewCandidateProfileUsecase(repo, new(MockUploader))

	p, err := uc.Upsert(ctx, "cand", domain.CandidateProfileUpdate{Headline: ptr("Gopher")})
	require.NoError(t, err)
	assert.Equal(t, "Gopher", p.Headline)
	repo.AssertExpectations(t)
}

func TestAddEducationDateOrder(t *testing.T) {
	repo := new(MockCandidateRepo)
	uc := usecase.NewCandidateProfileUsecase(repo, new(MockUploader))
	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.AddEducation(context.Background(), "cand", domain.Education{
		School: "HUST", From: from, To: ptr(from.AddDate(-1, 0, 0)),
	})
	assertAppError(t, err, http.StatusBadRequest)
	repo.AssertNotCalled(t, "AddEducation", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddExperienceCreatesProfile(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCandidateRepo)
	repo.On("GetByUserID", ctx, "cand").Return(nil, domain.ErrNotFound).Once()
	repo.On("Upsert", ctx, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.CandidateProfile).ID = 3
	}).Return(nil)
	repo.On("AddExperience", ctx, int64(3), mock.AnythingOfType("*domain.Experience")).Return(nil)
	repo.On("GetByUserID", ctx, "cand").Return(&domain.CandidateProfile{ID: 3, Experience: []domain.Experience{{Company: "Acme"}}}, nil)
	uc := usecase.NewCandidateProfileUsecase(repo, new(MockUploader))

	p, err := uc.AddExperience(ctx, "cand", domain.Experience{Company: "Acme", From: time.Now()})
	require.NoError(t, err)
	assert.Len(t, p.Experience, 1)
}

func TestAddSkillDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCandidateRepo)
	repo.On("GetByUserID", ctx, "cand").Return(&domain.CandidateProfile{ID: 3}, nil)
	repo.On("AddSkill", ctx, int64(3), mock.Anything).Return(domain.ErrDuplicate)
	uc := usecase.NewCandidateProfileUsecase(repo, new(MockUploader))

	_, err := uc.AddSkill(ctx, "cand", domain.Skill{Name: " Go "})
	appErr := assertAppError(t, err, http.StatusBadRequest)
	assert.Equal(t, "Skill already exists", appErr.Message)

	_, err = uc.AddSkill(ctx, "cand", domain.Skill{Name: "  "})
	assertAppError(t, err, http.StatusBadRequest)
}

func TestDeleteSkillNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCandidateRepo)
	repo.On("GetByUserID", ctx, "cand").Return(&domain.CandidateProfile{ID: 3}, nil)
	repo.On("DeleteSkill", ctx, int64(3), "nope").Return(domain.ErrNotFound)
	uc := usecase.NewCandidateProfileUsecase(repo, new(MockUploader))

	_, err := uc.DeleteSkill(ctx, "cand", "nope")
	assertAppError(t, err, http.StatusNotFound)
}

func TestUploadResume(t *testing.T) {
	ctx := context.Background()
	data := []byte("%PDF-1.4")

	t.Run("stores url", func(t *testing.T) {
		repo, up := new(MockCandidateRepo), new(MockUploader)
		repo.On("GetByUserID", ctx, "cand").Return(&domain.CandidateProfile{ID: 3}, nil).Once()
		up.On("Upload", ctx, "cand", domain.UploadResume, "resumes", "cv.pdf", data).Return("/uploads/resumes/x.pdf", nil)
		repo.On("UpdateResume", ctx, int64(3), "/uploads/resumes/x.pdf").Return(nil)
		repo.On("GetByUserID", ctx, "cand").Return(&domain.CandidateProfile{ID: 3, ResumeURL: "/uploads/resumes/x.pdf"}, nil)
		uc := usecase.NewCandidateProfileUsecase(repo, up)

		p, err := uc.UploadResume(ctx, "cand", "cv.pdf", data)
		require.NoError(t, err)
		assert.Equal(t, "/uploads/resumes/x.pdf", p.ResumeURL)
	})

	t.Run("upload error passes through", func(t *testing.T) {
		repo, up := new(MockCandidateRepo), new(MockUploader)
		repo.On("GetByUserID", ctx, "cand").Return(&domain.CandidateProfile{ID: 3}, nil)
		rejected := errors.New("rejected")
		up.On("Upload", ctx, "cand", domain.UploadResume, "resumes", "cv.exe", data).Return("", rejected)
		uc := usecase.NewCandidateProfileUsecase(repo, up)

		_, err := uc.UploadResume(ctx, "cand", "cv.exe", data)
		assert.ErrorIs(t, err, rejected)
		repo.AssertNotCalled(t, "UpdateResume", mock.Anything, mock.Anything, mock.Anything)
	})
}
