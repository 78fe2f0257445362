package postgres

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type wishlistRepo struct {
	db *pgxpool.Pool
}

func NewWishlistRepository(db *pgxpool.Pool) domain.WishlistRepository {
	return &wishlistRepo{db: db}
}

func (r *wishlistRepo) Add(ctx context.Context, entry *domain.WishlistEntry) error {
	query := `INSERT INTO wishlists (candidate_id, job_id) VALUES ($1, $2) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query, entry.CandidateID, entry.JobID).Scan(&entry.ID, &entry.CreatedAt)
	return mapError(err)
}

func (r *wishlistRepo) Remove(ctx context.Context, candidateID string, jobID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM wishlists WHERE candidate_id = $1 AND job_id = $2`, candidateID, jobID)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *wishlistRepo) List(ctx context.Context, candidateID string) ([]domain.WishlistEntry, error) {
	query := `
		SELECT w.id, w.candidate_id, w.job_id, w.created_at,
		       j.id, j.employer_id, j.title, j.location, j.job_type, j.status, j.company_name, COALESCE(j.company_logo, ''), j.deadline
		FROM wishlists w
		JOIN jobs j ON j.id = w.job_id
		WHERE w.candidate_id = $1 AND j.is_approved AND j.status IN ('open', 'closed')
		ORDER BY w.created_at DESC`
	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.WishlistEntry{}
	for rows.Next() {
		var e domain.WishlistEntry
		var job domain.JobSummary
		var jobType []string
		if err := rows.Scan(&e.ID, &e.CandidateID, &e.JobID, &e.CreatedAt,
			&job.ID, &job.EmployerID, &job.Title, &job.Location, pq.Array(&jobType), &job.Status,
			&job.CompanyName, &job.CompanyLogo, &job.Deadline); err != nil {
			return nil, err
		}
		job.JobType = nonNil(jobType)
		e.Job = &job
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *wishlistRepo) Exists(ctx context.Context, candidateID string, jobID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM wishlists WHERE candidate_id = $1 AND job_id = $2)`
	err := r.db.QueryRow(ctx, query, candidateID, jobID).Scan(&exists)
	return exists, mapError(err)
}
