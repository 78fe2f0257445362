package postgres

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

const applicationColumns = `a.id, a.job_id, a.candidate_id, a.resume_url, COALESCE(a.cover_letter, ''), a.status,
	a.created_at, a.updated_at,
	j.id, j.employer_id, j.title, j.location, j.job_type, j.status, j.company_name, COALESCE(j.company_logo, ''), j.deadline,
	u.id, u.name, u.email, u.avatar_url`

const applicationJoins = `FROM applications a
	JOIN jobs j ON j.id = a.job_id
	JOIN users u ON u.id = a.candidate_id`

func scanApplication(row rowScanner) (*domain.Application, error) {
	var app domain.Application
	var job domain.JobSummary
	var candidate domain.UserSummary
	var jobType []string
	err := row.Scan(
		&app.ID, &app.JobID, &app.CandidateID, &app.ResumeURL, &app.CoverLetter, &app.Status,
		&app.CreatedAt, &app.UpdatedAt,
		&job.ID, &job.EmployerID, &job.Title, &job.Location, pq.Array(&jobType), &job.Status, &job.CompanyName, &job.CompanyLogo, &job.Deadline,
		&candidate.ID, &candidate.Name, &candidate.Email, &candidate.AvatarURL,
	)
	if err != nil {
		return nil, mapError(err)
	}
	job.JobType = nonNil(jobType)
	app.Job = &job
	app.Candidate = &candidate
	app.Notes = []domain.Note{}
	return &app, nil
}

func collectApplications(rows pgx.Rows) ([]domain.Application, error) {
	defer rows.Close()
	apps := []domain.Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

// Create inserts a new application
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (job_id, candidate_id, resume_url, cover_letter, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		app.JobID, app.CandidateID, app.ResumeURL, nullString(app.CoverLetter), app.Status,
	).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
	return mapError(err)
}

// GetByID loads the application with its job, candidate and notes.
func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` ` + applicationJoins + ` WHERE a.id = $1`
	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if app.Notes, err = r.notes(ctx, id); err != nil {
		return nil, err
	}
	return app, nil
}

func (r *applicationRepo) notes(ctx context.Context, applicationID int64) ([]domain.Note, error) {
	query := `
		SELECT n.id, n.application_id, n.text, n.author_id, n.created_at, u.id, u.name, u.email, u.avatar_url
		FROM application_notes n
		JOIN users u ON u.id = n.author_id
		WHERE n.application_id = $1
		ORDER BY n.created_at DESC, n.id DESC`
	rows, err := r.db.Query(ctx, query, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []domain.Note{}
	for rows.Next() {
		var n domain.Note
		var author domain.UserSummary
		if err := rows.Scan(&n.ID, &n.ApplicationID, &n.Text, &n.AuthorID, &n.CreatedAt,
			&author.ID, &author.Name, &author.Email, &author.AvatarURL); err != nil {
			return nil, err
		}
		n.Author = &author
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// Exists checks whether the candidate has already applied to the job
func (r *applicationRepo) Exists(ctx context.Context, jobID int64, candidateID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND candidate_id = $2)`
	err := r.db.QueryRow(ctx, query, jobID, candidateID).Scan(&exists)
	return exists, mapError(err)
}

func (r *applicationRepo) ListByCandidate(ctx context.Context, candidateID string) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` ` + applicationJoins + ` WHERE a.candidate_id = $1 ORDER BY a.created_at DESC`
	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	return collectApplications(rows)
}

func (r *applicationRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` ` + applicationJoins + ` WHERE a.job_id = $1 ORDER BY a.created_at DESC`
	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	return collectApplications(rows)
}

// UpdateStatus updates the status of an application
func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	query := `UPDATE applications SET status = $1, updated_at = now() WHERE id = $2`
	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) AddNote(ctx context.Context, note *domain.Note) error {
	query := `
		INSERT INTO application_notes (application_id, author_id, text)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query, note.ApplicationID, note.AuthorID, note.Text).Scan(&note.ID, &note.CreatedAt)
	return mapError(err)
}
