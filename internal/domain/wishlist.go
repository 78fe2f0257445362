package domain

import (
	"context"
	"time"
)

type WishlistEntry struct {
	ID          int64       `json:"id"`
	CandidateID string      `json:"candidate_id"`
	JobID       int64       `json:"job_id"`
	Job         *JobSummary `json:"job,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

type WishlistRepository interface {
	// Add returns ErrDuplicate when the job is already saved.
	Add(ctx context.Context, entry *WishlistEntry) error
	// Remove returns ErrNotFound when there was nothing to remove.
	Remove(ctx context.Context, candidateID string, jobID int64) error
	List(ctx context.Context, candidateID string) ([]WishlistEntry, error)
	Exists(ctx context.Context, candidateID string, jobID int64) (bool, error)
}

type WishlistUsecase interface {
	Add(ctx context.Context, candidateID string, jobID int64) (*WishlistEntry, error)
	Remove(ctx context.Context, candidateID string, jobID int64) error
	List(ctx context.Context, candidateID string) ([]WishlistEntry, error)
	Check(ctx context.Context, candidateID string, jobID int64) (bool, error)
}
