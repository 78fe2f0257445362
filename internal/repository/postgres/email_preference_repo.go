package postgres

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type emailPreferenceRepo struct {
	db *pgxpool.Pool
}

func NewEmailPreferenceRepository(db *pgxpool.Pool) domain.EmailPreferenceRepository {
	return &emailPreferenceRepo{db: db}
}

const emailPreferenceColumns = `id, user_id, application_updates, new_applications, weekly_recommendations,
	marketing_emails, unsubscribe_token, created_at, updated_at`

func scanEmailPreference(row rowScanner) (*domain.EmailPreference, error) {
	var p domain.EmailPreference
	err := row.Scan(&p.ID, &p.UserID, &p.ApplicationUpdates, &p.NewApplications, &p.WeeklyRecommendations,
		&p.MarketingEmails, &p.UnsubscribeToken, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *emailPreferenceRepo) GetByUserID(ctx context.Context, userID string) (*domain.EmailPreference, error) {
	query := `SELECT ` + emailPreferenceColumns + ` FROM email_preferences WHERE user_id = $1`
	return scanEmailPreference(r.db.QueryRow(ctx, query, userID))
}

func (r *emailPreferenceRepo) GetByToken(ctx context.Context, token string) (*domain.EmailPreference, error) {
	query := `SELECT ` + emailPreferenceColumns + ` FROM email_preferences WHERE unsubscribe_token = $1`
	return scanEmailPreference(r.db.QueryRow(ctx, query, token))
}

// Create is idempotent per user: a concurrent insert loses and reads the winner's row.
func (r *emailPreferenceRepo) Create(ctx context.Context, pref *domain.EmailPreference) error {
	query := `
		WITH ins AS (
			INSERT INTO email_preferences (user_id, application_updates, new_applications, weekly_recommendations,
			                               marketing_emails, unsubscribe_token)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (user_id) DO NOTHING
			RETURNING ` + emailPreferenceColumns + `
		)
		SELECT ` + emailPreferenceColumns + ` FROM ins
		UNION ALL
		SELECT ` + emailPreferenceColumns + ` FROM email_preferences WHERE user_id = $1
		LIMIT 1`
	stored, err := scanEmailPreference(r.db.QueryRow(ctx, query,
		pref.UserID, pref.ApplicationUpdates, pref.NewApplications, pref.WeeklyRecommendations,
		pref.MarketingEmails, pref.UnsubscribeToken,
	))
	if err != nil {
		return err
	}
	*pref = *stored
	return nil
}

func (r *emailPreferenceRepo) Update(ctx context.Context, pref *domain.EmailPreference) error {
	query := `
		UPDATE email_preferences SET application_updates = $2, new_applications = $3,
		       weekly_recommendations = $4, marketing_emails = $5, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
	err := r.db.QueryRow(ctx, query, pref.ID, pref.ApplicationUpdates, pref.NewApplications,
		pref.WeeklyRecommendations, pref.MarketingEmails).Scan(&pref.UpdatedAt)
	return mapError(err)
}
