package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/export"
	"go-jobboard-backend/pkg/security"
)

// Upper bound on rows written to a single export.
const maxExportRows = 10000

type adminUsecase struct {
	adminRepo domain.AdminRepository
	jobRepo   domain.JobRepository
	secLog    *security.SecurityLogger
	now       func() time.Time
}

func NewAdminUsecase(adminRepo domain.AdminRepository, jobRepo domain.JobRepository, secLog *security.SecurityLogger) domain.AdminUsecase {
	return &adminUsecase{adminRepo: adminRepo, jobRepo: jobRepo, secLog: secLog, now: time.Now}
}

// GetStats returns dashboard statistics. Daily counters start at local midnight.
func (u *adminUsecase) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}
	now := u.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats, err := u.adminRepo.Stats(ctx, midnight)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return stats, nil
}

// ListUsers returns paginated users
func (u *adminUsecase) ListUsers(ctx context.Context, filter domain.UserFilter) (*domain.PaginatedResult[domain.User], error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}
	if filter.Role != "" && filter.Role != "all" && !domain.Role(filter.Role).Valid() {
		return nil, apperror.BadRequest("Invalid role filter")
	}
	filter.Page = domain.NewPage(filter.Page.Page, filter.Page.Limit)

	users, total, err := u.adminRepo.ListUsers(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return domain.NewPaginatedResult(users, total, filter.Page), nil
}

// UpdateUserStatus activates or deactivates an account. Admins cannot
// deactivate themselves.
func (u *adminUsecase) UpdateUserStatus(ctx context.Context, adminID, userID string, status domain.UserStatus) (*domain.User, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}
	if status != domain.UserStatusActive && status != domain.UserStatusInactive {
		return nil, apperror.BadRequest("Status must be active or inactive")
	}
	if adminID == userID && status == domain.UserStatusInactive {
		return nil, apperror.BadRequest("You cannot deactivate your own account")
	}

	user, err := u.adminRepo.UpdateUserStatus(ctx, userID, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	u.audit(ctx, security.EventUserStatusChanged, adminID, map[string]interface{}{
		"target_user_id": userID, "status": string(status),
	})
	return user, nil
}

func (u *adminUsecase) ListJobs(ctx context.Context, filter domain.AdminJobFilter) (*domain.PaginatedResult[domain.Job], error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}
	filter.Page = domain.NewPage(filter.Page.Page, filter.Page.Limit)

	jobs, total, err := u.adminRepo.ListJobs(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return domain.NewPaginatedResult(jobs, total, filter.Page), nil
}

// ApproveJob publishes a posting.
func (u *adminUsecase) ApproveJob(ctx context.Context, adminID string, jobID int64) (*domain.Job, error) {
	return u.moderate(ctx, adminID, jobID, domain.JobStatusOpen, true)
}

// RejectJob withdraws approval and hides the posting.
func (u *adminUsecase) RejectJob(ctx context.Context, adminID string, jobID int64) (*domain.Job, error) {
	return u.moderate(ctx, adminID, jobID, domain.JobStatusRejected, false)
}

func (u *adminUsecase) moderate(ctx context.Context, adminID string, jobID int64, status domain.JobStatus, approved bool) (*domain.Job, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if err := u.jobRepo.SetModeration(ctx, jobID, status, approved); err != nil {
		return nil, apperror.Internal(err)
	}
	job.Status = status
	job.IsApproved = approved
	job.UpdatedAt = u.now()

	u.audit(ctx, security.EventJobModerated, adminID, map[string]interface{}{
		"job_id": jobID, "status": string(status),
	})
	return job, nil
}

// ExportUsers renders every user matching filter (ignoring its page) as XLSX.
func (u *adminUsecase) ExportUsers(ctx context.Context, filter domain.UserFilter) ([]byte, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}

	table := export.Table{
		Sheet:   "Users",
		Headers: []string{"ID", "NAME", "EMAIL", "ROLE", "STATUS", "EMAIL VERIFIED", "CREATED AT"},
	}
	for page := 1; len(table.Rows) < maxExportRows; page++ {
		filter.Page = domain.Page{Page: page, Limit: domain.MaxPageSize}
		users, _, err := u.adminRepo.ListUsers(ctx, filter)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		for _, usr := range users {
			table.Rows = append(table.Rows, []any{
				usr.ID, usr.Name, usr.Email, string(usr.Role), string(usr.Status), usr.IsEmailVerified,
				usr.CreatedAt.Format(time.RFC3339),
			})
		}
		if len(users) < domain.MaxPageSize {
			break
		}
	}
	return u.render(ctx, "users", table)
}

// ExportJobs renders every job matching filter (ignoring its page) as XLSX.
func (u *adminUsecase) ExportJobs(ctx context.Context, filter domain.AdminJobFilter) ([]byte, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}

	table := export.Table{
		Sheet:   "Jobs",
		Headers: []string{"ID", "TITLE", "COMPANY", "LOCATION", "STATUS", "APPROVED", "VIEWS", "APPLICATIONS", "DEADLINE", "CREATED AT"},
	}
	for page := 1; len(table.Rows) < maxExportRows; page++ {
		filter.Page = domain.Page{Page: page, Limit: domain.MaxPageSize}
		jobs, _, err := u.adminRepo.ListJobs(ctx, filter)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		for _, j := range jobs {
			table.Rows = append(table.Rows, []any{
				j.ID, j.Title, j.Company.Name, j.Location, string(j.Status), j.IsApproved, j.Views,
				j.ApplicationCount, j.Deadline.Format("2006-01-02"), j.CreatedAt.Format(time.RFC3339),
			})
		}
		if len(jobs) < domain.MaxPageSize {
			break
		}
	}
	return u.render(ctx, "jobs", table)
}

func (u *adminUsecase) render(ctx context.Context, dataset string, table export.Table) ([]byte, error) {
	data, err := export.XLSX(table)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	adminID, _ := ctx.Value(domain.KeyUserID).(string)
	u.audit(ctx, security.EventDataExport, adminID, map[string]interface{}{
		"dataset": dataset, "rows": len(table.Rows),
	})
	return data, nil
}

func (u *adminUsecase) audit(ctx context.Context, event security.EventType, adminID string, details map[string]interface{}) {
	ip, reqID := requestMeta(ctx)
	u.secLog.Log(ctx, security.SecurityEvent{
		Event:        event,
		SubjectType:  "user_id",
		SubjectValue: adminID,
		IP:           ip,
		RequestID:    reqID,
		Details:      details,
	})
}

// requireAdmin checks the role the auth middleware stored on the request context.
func (u *adminUsecase) requireAdmin(ctx context.Context) error {
	role, _ := ctx.Value(domain.KeyUserRole).(domain.Role)
	if role != domain.RoleAdmin {
		return apperror.Forbidden("Admin access required")
	}
	return nil
}
