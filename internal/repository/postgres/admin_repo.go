package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type adminRepo struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) domain.AdminRepository {
	return &adminRepo{db: db}
}

// Stats fetches dashboard statistics. since marks the start of "today".
func (r *adminRepo) Stats(ctx context.Context, since time.Time) (*domain.AdminStats, error) {
	stats := &domain.AdminStats{
		Jobs: domain.JobStats{ByStatus: map[domain.JobStatus]int64{}},
	}

	// Users: total, new today and by role
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE created_at >= $1),
		       COUNT(*) FILTER (WHERE role = 'candidate'),
		       COUNT(*) FILTER (WHERE role = 'employer'),
		       COUNT(*) FILTER (WHERE role = 'admin')
		FROM users`, since).Scan(
		&stats.Users.Total, &stats.Users.NewToday,
		&stats.Users.Candidates, &stats.Users.Employers, &stats.Users.Admins,
	)
	if err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}

	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE created_at >= $1) FROM jobs`, since).Scan(
		&stats.Jobs.Total, &stats.Jobs.NewToday,
	)
	if err != nil {
		return nil, fmt.Errorf("job stats: %w", err)
	}

	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM jobs GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("job status stats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status domain.JobStatus
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		stats.Jobs.ByStatus[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE created_at >= $1) FROM applications`, since).Scan(
		&stats.Applications.Total, &stats.Applications.NewToday,
	)
	if err != nil {
		return nil, fmt.Errorf("application stats: %w", err)
	}

	return stats, nil
}

// ListUsers fetches paginated users with optional role filter and name/email search
func (r *adminRepo) ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, int64, error) {
	conds := []string{"TRUE"}
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.Role != "" && filter.Role != "all" {
		conds = append(conds, "role = "+arg(filter.Role))
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		p := arg("%" + escapeLike(s) + "%")
		conds = append(conds, "(name ILIKE "+p+" OR email ILIKE "+p+")")
	}
	where := strings.Join(conds, " AND ")

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s ORDER BY created_at DESC LIMIT %s OFFSET %s`,
		userColumns, where, arg(filter.Page.Limit), arg(filter.Page.Offset()))
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// ListJobs fetches paginated jobs of any status with optional title/company search
func (r *adminRepo) ListJobs(ctx context.Context, filter domain.AdminJobFilter) ([]domain.Job, int64, error) {
	conds := []string{"TRUE"}
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.Status != "" && filter.Status != "all" {
		conds = append(conds, "j.status = "+arg(filter.Status))
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		p := arg("%" + escapeLike(s) + "%")
		conds = append(conds, "(j.title ILIKE "+p+" OR j.company_name ILIKE "+p+")")
	}
	where := strings.Join(conds, " AND ")

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs j WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM jobs j WHERE %s ORDER BY j.created_at DESC LIMIT %s OFFSET %s`,
		jobColumns, where, arg(filter.Page.Limit), arg(filter.Page.Offset()))
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	jobs, err := collectJobs(rows)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// UpdateUserStatus activates or deactivates a user
func (r *adminRepo) UpdateUserStatus(ctx context.Context, userID string, status domain.UserStatus) (*domain.User, error) {
	query := `UPDATE users SET status = $2, updated_at = now() WHERE id = $1 RETURNING ` + userColumns
	return scanUser(r.db.QueryRow(ctx, query, userID, status))
}
