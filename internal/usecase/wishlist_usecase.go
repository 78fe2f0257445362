package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type wishlistUsecase struct {
	repo    domain.WishlistRepository
	jobRepo domain.JobRepository
}

func NewWishlistUsecase(repo domain.WishlistRepository, jobRepo domain.JobRepository) domain.WishlistUsecase {
	return &wishlistUsecase{repo: repo, jobRepo: jobRepo}
}

func (uc *wishlistUsecase) Add(ctx context.Context, candidateID string, jobID int64) (*domain.WishlistEntry, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	// Postings hidden from listings cannot be bookmarked either.
	if !job.IsPublic() {
		return nil, apperror.NotFound("Job not found")
	}

	entry := &domain.WishlistEntry{CandidateID: candidateID, JobID: jobID}
	if err := uc.repo.Add(ctx, entry); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Duplicate("Job is already in your wishlist")
		}
		return nil, apperror.Internal(err)
	}
	return entry, nil
}

func (uc *wishlistUsecase) Remove(ctx context.Context, candidateID string, jobID int64) error {
	if err := uc.repo.Remove(ctx, candidateID, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found in wishlist")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (uc *wishlistUsecase) List(ctx context.Context, candidateID string) ([]domain.WishlistEntry, error) {
	entries, err := uc.repo.List(ctx, candidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return entries, nil
}

func (uc *wishlistUsecase) Check(ctx context.Context, candidateID string, jobID int64) (bool, error) {
	ok, err := uc.repo.Exists(ctx, candidateID, jobID)
	if err != nil {
		return false, apperror.Internal(err)
	}
	return ok, nil
}
