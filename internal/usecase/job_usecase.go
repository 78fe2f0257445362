package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
)

const defaultCurrency = "VND"

type jobUsecase struct {
	jobRepo      domain.JobRepository
	employerRepo domain.EmployerProfileRepository
	now          func() time.Time
}

func NewJobUsecase(jobRepo domain.JobRepository, employerRepo domain.EmployerProfileRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:      jobRepo,
		employerRepo: employerRepo,
		now:          time.Now,
	}
}

func (u *jobUsecase) Create(ctx context.Context, employerID string, in domain.JobInput) (*domain.Job, error) {
	profile, err := u.employerRepo.GetByUserID(ctx, employerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.BadRequest("Please create a company profile before posting jobs")
		}
		return nil, apperror.Internal(err)
	}

	if in.Status == "" {
		in.Status = domain.JobStatusDraft
	}
	// New postings are never approved, so "open" becomes a review request.
	status, ok := domain.ResolveOwnerStatus(in.Status, false)
	if !ok {
		return nil, apperror.BadRequest("Invalid job status")
	}
	if err := u.validate(in); err != nil {
		return nil, err
	}

	job := &domain.Job{
		EmployerID: employerID,
		Status:     status,
		Company:    domain.CompanySnapshot{Name: profile.CompanyName, Logo: profile.LogoURL},
	}
	applyJobInput(job, in)

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

// Get returns public postings to everyone and any posting to its owner or an
// admin. Reads by anyone but the owner count as a view.
func (u *jobUsecase) Get(ctx context.Context, viewer *domain.Actor, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	isOwner := viewer != nil && viewer.UserID == job.EmployerID
	isAdmin := viewer != nil && viewer.Role == domain.RoleAdmin
	if !job.IsPublic() && !isOwner && !isAdmin {
		return nil, apperror.NotFound("Job not found")
	}

	if !isOwner {
		if err := u.jobRepo.IncrementViews(ctx, id); err != nil {
			logger.Log.Warn("View count not updated", "job_id", id, "error", err)
		} else {
			job.Views++
		}
	}
	return job, nil
}

// Update replaces the posting content. Approval is kept; a requested status
// goes through the same rules as UpdateStatus.
func (u *jobUsecase) Update(ctx context.Context, employerID string, id int64, in domain.JobInput) (*domain.Job, error) {
	job, err := u.owned(ctx, employerID, id)
	if err != nil {
		return nil, err
	}
	if in.Status != "" {
		status, ok := domain.ResolveOwnerStatus(in.Status, job.IsApproved)
		if !ok {
			return nil, apperror.BadRequest("Invalid job status")
		}
		job.Status = status
	}
	if err := u.validate(in); err != nil {
		return nil, err
	}
	applyJobInput(job, in)

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) UpdateStatus(ctx context.Context, employerID string, id int64, status domain.JobStatus) (*domain.Job, error) {
	job, err := u.owned(ctx, employerID, id)
	if err != nil {
		return nil, err
	}
	resolved, ok := domain.ResolveOwnerStatus(status, job.IsApproved)
	if !ok {
		return nil, apperror.BadRequest("Status must be one of: draft, pending, open, closed")
	}
	if err := u.jobRepo.SetModeration(ctx, id, resolved, job.IsApproved); err != nil {
		return nil, apperror.Internal(err)
	}
	job.Status = resolved
	job.UpdatedAt = u.now()
	return job, nil
}

func (u *jobUsecase) Delete(ctx context.Context, employerID string, id int64) error {
	if _, err := u.owned(ctx, employerID, id); err != nil {
		return err
	}
	if err := u.jobRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) Search(ctx context.Context, filter domain.JobFilter) (*domain.PaginatedResult[domain.Job], error) {
	filter.Page = domain.NewPage(filter.Page.Page, filter.Page.Limit)
	if filter.MinSalary != nil && filter.MaxSalary != nil && *filter.MinSalary > *filter.MaxSalary {
		return nil, apperror.BadRequest("minSalary cannot be greater than maxSalary")
	}
	jobs, total, err := u.jobRepo.Search(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return domain.NewPaginatedResult(jobs, total, filter.Page), nil
}

func (u *jobUsecase) Latest(ctx context.Context) ([]domain.Job, error) {
	jobs, err := u.jobRepo.Latest(ctx, domain.LatestJobsLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *jobUsecase) Popular(ctx context.Context) ([]domain.Job, error) {
	jobs, err := u.jobRepo.Popular(ctx, domain.PopularJobsLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *jobUsecase) ListMine(ctx context.Context, employerID string, page domain.Page) (*domain.PaginatedResult[domain.Job], error) {
	page = domain.NewPage(page.Page, page.Limit)
	jobs, total, err := u.jobRepo.ListByEmployer(ctx, employerID, page)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return domain.NewPaginatedResult(jobs, total, page), nil
}

func (u *jobUsecase) owned(ctx context.Context, employerID string, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if job.EmployerID != employerID {
		return nil, apperror.Forbidden("You are not authorized to manage this job")
	}
	return job, nil
}

// Business Validation
func (u *jobUsecase) validate(in domain.JobInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return apperror.BadRequest("Title is required")
	}
	if len(in.JobType) == 0 {
		return apperror.BadRequest("At least one job type is required")
	}
	if in.Salary.Min != nil && in.Salary.Max != nil && *in.Salary.Min > *in.Salary.Max {
		return apperror.BadRequest("Minimum salary cannot be greater than maximum salary")
	}
	if !in.Deadline.After(u.now()) {
		return apperror.BadRequest("Deadline must be in the future")
	}
	return nil
}

func applyJobInput(job *domain.Job, in domain.JobInput) {
	job.Title = strings.TrimSpace(in.Title)
	job.Description = in.Description
	job.Requirements = in.Requirements
	job.Benefits = in.Benefits
	job.JobType = in.JobType
	job.Location = in.Location
	job.Salary = in.Salary
	if job.Salary.Currency == "" {
		job.Salary.Currency = defaultCurrency
	}
	job.Skills = in.Skills
	if job.Skills == nil {
		job.Skills = []string{}
	}
	job.Experience = in.Experience
	job.Education = in.Education
	job.Deadline = in.Deadline
}
