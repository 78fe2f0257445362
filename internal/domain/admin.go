package domain

import (
	"context"
	"time"
)

// AdminStats contains dashboard statistics. "Today" starts at local midnight.
type AdminStats struct {
	Users        UserStats        `json:"users"`
	Jobs         JobStats         `json:"jobs"`
	Applications ApplicationStats `json:"applications"`
}

type UserStats struct {
	Total      int64 `json:"total"`
	NewToday   int64 `json:"new_today"`
	Candidates int64 `json:"candidates"`
	Employers  int64 `json:"employers"`
	Admins     int64 `json:"admins"`
}

type JobStats struct {
	Total    int64               `json:"total"`
	NewToday int64               `json:"new_today"`
	ByStatus map[JobStatus]int64 `json:"by_status"`
}

type ApplicationStats struct {
	Total    int64 `json:"total"`
	NewToday int64 `json:"new_today"`
}

type UserFilter struct {
	Role   string // a Role or "all"
	Search string
	Page   Page
}

type AdminJobFilter struct {
	Status string // a JobStatus or "all"
	Search string
	Page   Page
}

// AdminRepository defines admin-specific data access
type AdminRepository interface {
	Stats(ctx context.Context, since time.Time) (*AdminStats, error)
	ListUsers(ctx context.Context, filter UserFilter) ([]User, int64, error)
	ListJobs(ctx context.Context, filter AdminJobFilter) ([]Job, int64, error)
	UpdateUserStatus(ctx context.Context, userID string, status UserStatus) (*User, error)
}

type AdminUsecase interface {
	GetStats(ctx context.Context) (*AdminStats, error)
	ListUsers(ctx context.Context, filter UserFilter) (*PaginatedResult[User], error)
	UpdateUserStatus(ctx context.Context, adminID, userID string, status UserStatus) (*User, error)
	ListJobs(ctx context.Context, filter AdminJobFilter) (*PaginatedResult[Job], error)
	ApproveJob(ctx context.Context, adminID string, jobID int64) (*Job, error)
	RejectJob(ctx context.Context, adminID string, jobID int64) (*Job, error)
	ExportUsers(ctx context.Context, filter UserFilter) ([]byte, error)
	ExportJobs(ctx context.Context, filter AdminJobFilter) ([]byte, error)
}
