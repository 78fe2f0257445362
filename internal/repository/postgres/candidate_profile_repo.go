package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"go-jobboard-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateProfileRepo struct {
	db *pgxpool.Pool
}

func NewCandidateProfileRepository(db *pgxpool.Pool) domain.CandidateProfileRepository {
	return &candidateProfileRepo{db: db}
}

func (r *candidateProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	query := `
		SELECT
			p.id, p.user_id, p.date_of_birth, COALESCE(p.phone, ''), COALESCE(p.address, ''),
			COALESCE(p.bio, ''), COALESCE(p.headline, ''), COALESCE(p.resume_url, ''),
			p.social_links::text, p.job_preferences::text, p.created_at, p.updated_at,
			u.id, u.name, u.email, u.avatar_url
		FROM candidate_profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1`

	var p domain.CandidateProfile
	var user domain.UserSummary
	var socialLinks, preferences string
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.DateOfBirth, &p.Phone, &p.Address,
		&p.Bio, &p.Headline, &p.ResumeURL,
		&socialLinks, &preferences, &p.CreatedAt, &p.UpdatedAt,
		&user.ID, &user.Name, &user.Email, &user.AvatarURL,
	)
	if err != nil {
		return nil, mapError(err)
	}
	p.User = &user

	if err := json.Unmarshal([]byte(socialLinks), &p.SocialLinks); err != nil {
		return nil, fmt.Errorf("decode social_links: %w", err)
	}
	if err := json.Unmarshal([]byte(preferences), &p.JobPreferences); err != nil {
		return nil, fmt.Errorf("decode job_preferences: %w", err)
	}

	if p.Education, err = r.educations(ctx, p.ID); err != nil {
		return nil, err
	}
	if p.Experience, err = r.experiences(ctx, p.ID); err != nil {
		return nil, err
	}
	if p.Skills, err = r.skills(ctx, p.ID); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *candidateProfileRepo) educations(ctx context.Context, profileID int64) ([]domain.Education, error) {
	query := `SELECT id, school, degree, field_of_study, from_date, to_date, is_current, COALESCE(description, '')
	          FROM candidate_educations WHERE profile_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []domain.Education{}
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(&e.ID, &e.School, &e.Degree, &e.FieldOfStudy, &e.From, &e.To, &e.Current, &e.Description); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *candidateProfileRepo) experiences(ctx context.Context, profileID int64) ([]domain.Experience, error) {
	query := `SELECT id, company, position, from_date, to_date, is_current, COALESCE(description, '')
	          FROM candidate_experiences WHERE profile_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []domain.Experience{}
	for rows.Next() {
		var e domain.Experience
		if err := rows.Scan(&e.ID, &e.Company, &e.Position, &e.From, &e.To, &e.Current, &e.Description); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *candidateProfileRepo) skills(ctx context.Context, profileID int64) ([]domain.Skill, error) {
	query := `SELECT id, name, level FROM candidate_skills WHERE profile_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []domain.Skill{}
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Level); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *candidateProfileRepo) Upsert(ctx context.Context, p *domain.CandidateProfile) error {
	socialLinks, err := json.Marshal(p.SocialLinks)
	if err != nil {
		return err
	}
	preferences, err := json.Marshal(p.JobPreferences)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO candidate_profiles (user_id, date_of_birth, phone, address, bio, headline, social_links, job_preferences)
		VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8::jsonb)
		ON CONFLICT (user_id) DO UPDATE SET
			date_of_birth = EXCLUDED.date_of_birth,
			phone = EXCLUDED.phone,
			address = EXCLUDED.address,
			bio = EXCLUDED.bio,
			headline = EXCLUDED.headline,
			social_links = EXCLUDED.social_links,
			job_preferences = EXCLUDED.job_preferences,
			updated_at = now()
		RETURNING id, created_at, updated_at`
	err = r.db.QueryRow(ctx, query,
		p.UserID, p.DateOfBirth, nullString(p.Phone), nullString(p.Address), nullString(p.Bio), nullString(p.Headline),
		string(socialLinks), string(preferences),
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return mapError(err)
}

func (r *candidateProfileRepo) UpdateResume(ctx context.Context, profileID int64, resumeURL string) error {
	query := `UPDATE candidate_profiles SET resume_url = $2, updated_at = now() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, profileID, resumeURL)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateProfileRepo) AddEducation(ctx context.Context, profileID int64, e *domain.Education) error {
	e.ID = uuid.NewString()
	query := `INSERT INTO candidate_educations (id, profile_id, school, degree, field_of_study, from_date, to_date, is_current, description)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query, e.ID, profileID, e.School, e.Degree, e.FieldOfStudy, e.From, e.To, e.Current, nullString(e.Description))
	return mapError(err)
}

func (r *candidateProfileRepo) DeleteEducation(ctx context.Context, profileID int64, entryID string) error {
	return r.deleteEntry(ctx, "candidate_educations", profileID, entryID)
}

func (r *candidateProfileRepo) AddExperience(ctx context.Context, profileID int64, e *domain.Experience) error {
	e.ID = uuid.NewString()
	query := `INSERT INTO candidate_experiences (id, profile_id, company, position, from_date, to_date, is_current, description)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query, e.ID, profileID, e.Company, e.Position, e.From, e.To, e.Current, nullString(e.Description))
	return mapError(err)
}

func (r *candidateProfileRepo) DeleteExperience(ctx context.Context, profileID int64, entryID string) error {
	return r.deleteEntry(ctx, "candidate_experiences", profileID, entryID)
}

func (r *candidateProfileRepo) AddSkill(ctx context.Context, profileID int64, s *domain.Skill) error {
	s.ID = uuid.NewString()
	if s.Level == "" {
		s.Level = domain.SkillIntermediate
	}
	query := `INSERT INTO candidate_skills (id, profile_id, name, level) VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, query, s.ID, profileID, s.Name, s.Level)
	return mapError(err)
}

func (r *candidateProfileRepo) DeleteSkill(ctx context.Context, profileID int64, entryID string) error {
	return r.deleteEntry(ctx, "candidate_skills", profileID, entryID)
}

// deleteEntry removes one child row. table is always one of the constants above.
func (r *candidateProfileRepo) deleteEntry(ctx context.Context, table string, profileID int64, entryID string) error {
	if _, err := uuid.Parse(entryID); err != nil {
		return domain.ErrNotFound
	}
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND profile_id = $2`, table)
	tag, err := r.db.Exec(ctx, query, entryID, profileID)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
