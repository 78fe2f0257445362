package domain

import (
	"context"
	"time"
)

type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusInterview   ApplicationStatus = "interview"
	ApplicationStatusHired       ApplicationStatus = "hired"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusShortlisted,
		ApplicationStatusInterview, ApplicationStatusHired, ApplicationStatusRejected:
		return true
	}
	return false
}

type Note struct {
	ID            int64        `json:"id"`
	ApplicationID int64        `json:"-"`
	Text          string       `json:"text"`
	AuthorID      string       `json:"author_id"`
	Author        *UserSummary `json:"author,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

type Application struct {
	ID          int64             `json:"id"`
	JobID       int64             `json:"job_id"`
	CandidateID string            `json:"candidate_id"`
	ResumeURL   string            `json:"resume_url"`
	CoverLetter string            `json:"cover_letter,omitempty"`
	Status      ApplicationStatus `json:"status"`
	// Most recent first.
	Notes     []Note       `json:"notes"`
	Job       *JobSummary  `json:"job,omitempty"`
	Candidate *UserSummary `json:"candidate,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type ApplicationRepository interface {
	// Create returns ErrDuplicate when the candidate already applied to the job.
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	Exists(ctx context.Context, jobID int64, candidateID string) (bool, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]Application, error)
	ListByJob(ctx context.Context, jobID int64) ([]Application, error)
	UpdateStatus(ctx context.Context, id int64, status ApplicationStatus) error
	AddNote(ctx context.Context, note *Note) error
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, candidateID string, jobID int64, coverLetter string) (*Application, error)
	ListMine(ctx context.Context, candidateID string) ([]Application, error)
	ListForJob(ctx context.Context, employerID string, jobID int64) ([]Application, error)
	Get(ctx context.Context, actor Actor, id int64) (*Application, error)
	UpdateStatus(ctx context.Context, employerID string, id int64, status ApplicationStatus, note string) (*Application, error)
	AddNote(ctx context.Context, employerID string, id int64, text string) (*Application, error)
}
