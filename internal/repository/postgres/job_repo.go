package postgres

import (
	"context"
	"fmt"
	"strings"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `j.id, j.employer_id, j.title, j.description, j.requirements, COALESCE(j.benefits, ''),
	j.job_type, j.location, j.salary_min, j.salary_max, j.salary_currency, j.salary_negotiable,
	j.skills, COALESCE(j.experience, ''), COALESCE(j.education, ''), j.deadline, j.status, j.is_approved,
	j.views, j.company_name, COALESCE(j.company_logo, ''),
	(SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id),
	j.created_at, j.updated_at`

// publicJobs restricts a query on jobs j to postings visible to everyone.
const publicJobs = `j.status = 'open' AND j.is_approved`

func scanJob(row rowScanner) (*domain.Job, error) {
	var job domain.Job
	var jobType, skills []string
	err := row.Scan(
		&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Requirements, &job.Benefits,
		pq.Array(&jobType), &job.Location, &job.Salary.Min, &job.Salary.Max, &job.Salary.Currency, &job.Salary.IsNegotiable,
		pq.Array(&skills), &job.Experience, &job.Education, &job.Deadline, &job.Status, &job.IsApproved,
		&job.Views, &job.Company.Name, &job.Company.Logo,
		&job.ApplicationCount,
		&job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	job.JobType = nonNil(jobType)
	job.Skills = nonNil(skills)
	return &job, nil
}

func collectJobs(rows pgx.Rows) ([]domain.Job, error) {
	defer rows.Close()
	jobs := []domain.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (employer_id, title, description, requirements, benefits, job_type, location,
	              salary_min, salary_max, salary_currency, salary_negotiable, skills, experience, education,
	              deadline, status, is_approved, company_name, company_logo)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
              RETURNING id, views, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		job.EmployerID, job.Title, job.Description, job.Requirements, nullString(job.Benefits), pq.Array(job.JobType), job.Location,
		job.Salary.Min, job.Salary.Max, job.Salary.Currency, job.Salary.IsNegotiable, pq.Array(job.Skills),
		nullString(job.Experience), nullString(job.Education),
		job.Deadline, job.Status, job.IsApproved, job.Company.Name, nullString(job.Company.Logo),
	).Scan(&job.ID, &job.Views, &job.CreatedAt, &job.UpdatedAt)
	return mapError(err)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE j.id = $1`
	return scanJob(r.db.QueryRow(ctx, query, id))
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET title = $2, description = $3, requirements = $4, benefits = $5, job_type = $6,
	              location = $7, salary_min = $8, salary_max = $9, salary_currency = $10, salary_negotiable = $11,
	              skills = $12, experience = $13, education = $14, deadline = $15, status = $16, updated_at = now()
              WHERE id = $1
              RETURNING updated_at`
	err := r.db.QueryRow(ctx, query,
		job.ID, job.Title, job.Description, job.Requirements, nullString(job.Benefits), pq.Array(job.JobType),
		job.Location, job.Salary.Min, job.Salary.Max, job.Salary.Currency, job.Salary.IsNegotiable,
		pq.Array(job.Skills), nullString(job.Experience), nullString(job.Education), job.Deadline, job.Status,
	).Scan(&job.UpdatedAt)
	return mapError(err)
}

func (r *jobRepo) SetModeration(ctx context.Context, id int64, status domain.JobStatus, approved bool) error {
	query := `UPDATE jobs SET status = $2, is_approved = $3, updated_at = now() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, status, approved)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) IncrementViews(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE jobs SET views = views + 1 WHERE id = $1`, id)
	return mapError(err)
}

// Search builds the WHERE clause from the filter. Keyword matches are ranked
// before recency; the count runs as a separate statement.
func (r *jobRepo) Search(ctx context.Context, filter domain.JobFilter) ([]domain.Job, int64, error) {
	conds := []string{publicJobs}
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	orderBy := "j.created_at DESC"
	if kw := strings.TrimSpace(filter.Keyword); kw != "" {
		p := arg(kw)
		conds = append(conds, "j.search_vector @@ plainto_tsquery('simple', "+p+")")
		orderBy = "ts_rank(j.search_vector, plainto_tsquery('simple', " + p + ")) DESC, j.created_at DESC"
	}
	if loc := strings.TrimSpace(filter.Location); loc != "" {
		conds = append(conds, "j.location ILIKE "+arg("%"+escapeLike(loc)+"%"))
	}
	if len(filter.JobType) > 0 {
		conds = append(conds, "j.job_type && "+arg(pq.Array(filter.JobType))+"::text[]")
	}
	if filter.Experience != "" {
		conds = append(conds, "j.experience = "+arg(filter.Experience))
	}
	if filter.Education != "" {
		conds = append(conds, "j.education = "+arg(filter.Education))
	}
	if filter.MinSalary != nil {
		conds = append(conds, "j.salary_max >= "+arg(*filter.MinSalary))
	}
	if filter.MaxSalary != nil {
		conds = append(conds, "j.salary_min <= "+arg(*filter.MaxSalary))
	}
	where := strings.Join(conds, " AND ")

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs j WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := arg(filter.Page.Limit)
	offset := arg(filter.Page.Offset())
	query := fmt.Sprintf(`SELECT %s FROM jobs j WHERE %s ORDER BY %s LIMIT %s OFFSET %s`,
		jobColumns, where, orderBy, limit, offset)
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

func (r *jobRepo) Latest(ctx context.Context, limit int) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE ` + publicJobs + ` ORDER BY j.created_at DESC LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func (r *jobRepo) Popular(ctx context.Context, limit int) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE ` + publicJobs + ` ORDER BY j.views DESC, j.created_at DESC LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func (r *jobRepo) ListByEmployer(ctx context.Context, employerID string, page domain.Page) ([]domain.Job, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE employer_id = $1`, employerID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE j.employer_id = $1 ORDER BY j.created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, employerID, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	jobs, err := collectJobs(rows)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
