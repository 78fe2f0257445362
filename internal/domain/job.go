package domain

import (
	"context"
	"time"
)

type JobStatus string

const (
	JobStatusDraft    JobStatus = "draft"
	JobStatusPending  JobStatus = "pending"
	JobStatusOpen     JobStatus = "open"
	JobStatusClosed   JobStatus = "closed"
	JobStatusRejected JobStatus = "rejected"
)

// Number of postings returned by the latest and popular listings.
const (
	LatestJobsLimit  = 8
	PopularJobsLimit = 5
)

// ResolveOwnerStatus maps the status an owner asks for to the status that is
// stored. Only admin approval makes a posting public: an owner asking to open
// an unapproved posting submits it for review instead.
func ResolveOwnerStatus(requested JobStatus, approved bool) (JobStatus, bool) {
	switch requested {
	case JobStatusDraft, JobStatusPending, JobStatusClosed:
		return requested, true
	case JobStatusOpen:
		if approved {
			return JobStatusOpen, true
		}
		return JobStatusPending, true
	default:
		return "", false
	}
}

type Salary struct {
	Min          *float64 `json:"min,omitempty"`
	Max          *float64 `json:"max,omitempty"`
	Currency     string   `json:"currency"`
	IsNegotiable bool     `json:"is_negotiable"`
}

// CompanySnapshot is copied from the employer profile when the job is created.
type CompanySnapshot struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type Job struct {
	ID               int64           `json:"id"`
	EmployerID       string          `json:"employer_id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Requirements     string          `json:"requirements"`
	Benefits         string          `json:"benefits,omitempty"`
	JobType          []string        `json:"job_type"`
	Location         string          `json:"location"`
	Salary           Salary          `json:"salary"`
	Skills           []string        `json:"skills"`
	Experience       string          `json:"experience,omitempty"`
	Education        string          `json:"education,omitempty"`
	Deadline         time.Time       `json:"deadline"`
	Status           JobStatus       `json:"status"`
	IsApproved       bool            `json:"is_approved"`
	Views            int64           `json:"views"`
	Company          CompanySnapshot `json:"company"`
	ApplicationCount int64           `json:"application_count"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// IsPublic reports whether the job shows up in public listings.
func (j *Job) IsPublic() bool {
	return j.Status == JobStatusOpen && j.IsApproved
}

// JobSummary is the job projection embedded in applications and wishlists.
type JobSummary struct {
	ID          int64     `json:"id"`
	EmployerID  string    `json:"employer_id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	JobType     []string  `json:"job_type"`
	Status      JobStatus `json:"status"`
	CompanyName string    `json:"company_name"`
	CompanyLogo string    `json:"company_logo"`
	Deadline    time.Time `json:"deadline"`
}

// JobInput is the owner-editable content of a posting.
type JobInput struct {
	Title        string
	Description  string
	Requirements string
	Benefits     string
	JobType      []string
	Location     string
	Salary       Salary
	Skills       []string
	Experience   string
	Education    string
	Deadline     time.Time
	Status       JobStatus
}

type JobFilter struct {
	Keyword    string
	Location   string
	JobType    []string
	Experience string
	Education  string
	MinSalary  *float64
	MaxSalary  *float64
	Page       Page
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	// Update writes the content fields and status.
	Update(ctx context.Context, job *Job) error
	SetModeration(ctx context.Context, id int64, status JobStatus, approved bool) error
	Delete(ctx context.Context, id int64) error
	IncrementViews(ctx context.Context, id int64) error
	// Search returns public postings matching filter and the total match count.
	Search(ctx context.Context, filter JobFilter) ([]Job, int64, error)
	Latest(ctx context.Context, limit int) ([]Job, error)
	Popular(ctx context.Context, limit int) ([]Job, error)
	ListByEmployer(ctx context.Context, employerID string, page Page) ([]Job, int64, error)
}

type JobUsecase interface {
	Create(ctx context.Context, employerID string, in JobInput) (*Job, error)
	Get(ctx context.Context, viewer *Actor, id int64) (*Job, error)
	Update(ctx context.Context, employerID string, id int64, in JobInput) (*Job, error)
	UpdateStatus(ctx context.Context, employerID string, id int64, status JobStatus) (*Job, error)
	Delete(ctx context.Context, employerID string, id int64) error
	Search(ctx context.Context, filter JobFilter) (*PaginatedResult[Job], error)
	Latest(ctx context.Context) ([]Job, error)
	Popular(ctx context.Context) ([]Job, error)
	ListMine(ctx context.Context, employerID string, page Page) (*PaginatedResult[Job], error)
}
