package usecase

import (
	"context"
	"errors"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type candidateProfileUsecase struct {
	repo     domain.CandidateProfileRepository
	uploader domain.FileUploader
}

func NewCandidateProfileUsecase(repo domain.CandidateProfileRepository, uploader domain.FileUploader) domain.CandidateProfileUsecase {
	return &candidateProfileUsecase{repo: repo, uploader: uploader}
}

func (uc *candidateProfileUsecase) GetMine(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	return uc.load(ctx, userID)
}

// GetByUserID lets employers and admins read any candidate profile; a
// candidate may read only their own.
func (uc *candidateProfileUsecase) GetByUserID(ctx context.Context, viewer domain.Actor, userID string) (*domain.CandidateProfile, error) {
	if viewer.Role == domain.RoleCandidate && viewer.UserID != userID {
		return nil, apperror.Forbidden("You can only view your own profile")
	}
	return uc.load(ctx, userID)
}

func (uc *candidateProfileUsecase) Upsert(ctx context.Context, userID string, in domain.CandidateProfileUpdate) (*domain.CandidateProfile, error) {
	profile, err := uc.repo.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		profile, err = &domain.CandidateProfile{UserID: userID}, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	in.Apply(profile)
	if err := uc.repo.Upsert(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}
	return uc.load(ctx, userID)
}

func (uc *candidateProfileUsecase) AddEducation(ctx context.Context, userID string, e domain.Education) (*domain.CandidateProfile, error) {
	if e.To != nil && e.To.Before(e.From) {
		return nil, apperror.BadRequest("End date must be after start date")
	}
	profileID, err := uc.ensure(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.AddEducation(ctx, profileID, &e); err != nil {
		return nil, apperror.Internal(err)
	}
	return uc.load(ctx, userID)
}

func (uc *candidateProfileUsecase) DeleteEducation(ctx context.Context, userID, entryID string) (*domain.CandidateProfile, error) {
	return uc.deleteEntry(ctx, userID, entryID, "Education", uc.repo.DeleteEducation)
}

func (uc *candidateProfileUsecase) AddExperience(ctx context.Context, userID string, e domain.Experience) (*domain.CandidateProfile, error) {
	if e.To != nil && e.To.Before(e.From) {
		return nil, apperror.BadRequest("End date must be after start date")
	}
	profileID, err := uc.ensure(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.AddExperience(ctx, profileID, &e); err != nil {
		return nil, apperror.Internal(err)
	}
	return uc.load(ctx, userID)
}

func (uc *candidateProfileUsecase) DeleteExperience(ctx context.Context, userID, entryID string) (*domain.CandidateProfile, error) {
	return uc.deleteEntry(ctx, userID, entryID, "Experience", uc.repo.DeleteExperience)
}

func (uc *candidateProfileUsecase) AddSkill(ctx context.Context, userID string, s domain.Skill) (*domain.CandidateProfile, error) {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return nil, apperror.BadRequest("Skill name is required")
	}
	profileID, err := uc.ensure(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.AddSkill(ctx, profileID, &s); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Duplicate("Skill already exists")
		}
		return nil, apperror.Internal(err)
	}
	return uc.load(ctx, userID)
}

func (uc *candidateProfileUsecase) DeleteSkill(ctx context.Context, userID, entryID string) (*domain.CandidateProfile, error) {
	return uc.deleteEntry(ctx, userID, entryID, "Skill", uc.repo.DeleteSkill)
}

func (uc *candidateProfileUsecase) UploadResume(ctx context.Context, userID, filename string, data []byte) (*domain.CandidateProfile, error) {
	profileID, err := uc.ensure(ctx, userID)
	if err != nil {
		return nil, err
	}
	url, err := uc.uploader.Upload(ctx, userID, domain.UploadResume, "resumes", filename, data)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateResume(ctx, profileID, url); err != nil {
		return nil, apperror.Internal(err)
	}
	return uc.load(ctx, userID)
}

func (uc *candidateProfileUsecase) deleteEntry(
	ctx context.Context, userID, entryID, label string,
	del func(ctx context.Context, profileID int64, entryID string) error,
) (*domain.CandidateProfile, error) {
	profile, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := del(ctx, profile.ID, entryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(label + " entry not found")
		}
		return nil, apperror.Internal(err)
	}
	return uc.load(ctx, userID)
}

// ensure returns the profile id, creating an empty profile on first use.
func (uc *candidateProfileUsecase) ensure(ctx context.Context, userID string) (int64, error) {
	profile, err := uc.repo.GetByUserID(ctx, userID)
	if err == nil {
		return profile.ID, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return 0, apperror.Internal(err)
	}
	profile = &domain.CandidateProfile{UserID: userID}
	if err := uc.repo.Upsert(ctx, profile); err != nil {
		return 0, apperror.Internal(err)
	}
	return profile.ID, nil
}

func (uc *candidateProfileUsecase) load(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	profile, err := uc.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate profile not found")
		}
		return nil, apperror.Internal(err)
	}
	profile.CompletionPercentage = profile.Completion()
	return profile, nil
}
