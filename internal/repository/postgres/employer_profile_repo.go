package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"go-jobboard-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type employerProfileRepo struct {
	db *pgxpool.Pool
}

func NewEmployerProfileRepository(db *pgxpool.Pool) domain.EmployerProfileRepository {
	return &employerProfileRepo{db: db}
}

// GetByUserID retrieves a company profile by the employer's user ID
func (r *employerProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	query := `
		SELECT id, user_id, company_name, logo_url, COALESCE(cover_image_url, ''),
		       COALESCE(website, ''), COALESCE(industry, ''), COALESCE(company_size, ''),
		       founded_year, COALESCE(description, ''), social_links::text,
		       COALESCE(contact_email, ''), COALESCE(contact_phone, ''), headquarters_location_id,
		       created_at, updated_at
		FROM employer_profiles
		WHERE user_id = $1`

	var p domain.EmployerProfile
	var socialLinks string
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.CompanyName, &p.LogoURL, &p.CoverImageURL,
		&p.Website, &p.Industry, &p.CompanySize,
		&p.FoundedYear, &p.Description, &socialLinks,
		&p.ContactEmail, &p.ContactPhone, &p.HeadquartersLocationID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	if err := json.Unmarshal([]byte(socialLinks), &p.SocialLinks); err != nil {
		return nil, fmt.Errorf("decode social_links: %w", err)
	}

	rows, err := r.db.Query(ctx, `SELECT id, address FROM employer_locations WHERE profile_id = $1 ORDER BY created_at ASC`, p.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	p.Locations = []domain.Location{}
	for rows.Next() {
		var loc domain.Location
		if err := rows.Scan(&loc.ID, &loc.Address); err != nil {
			return nil, err
		}
		p.Locations = append(p.Locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	p.MarkHeadquarters()
	return &p, nil
}

func (r *employerProfileRepo) Create(ctx context.Context, p *domain.EmployerProfile) error {
	socialLinks, err := json.Marshal(p.SocialLinks)
	if err != nil {
		return err
	}
	if p.LogoURL == "" {
		p.LogoURL = domain.DefaultCompanyLogo
	}
	query := `
		INSERT INTO employer_profiles (user_id, company_name, logo_url, cover_image_url, website, industry, company_size,
		                               founded_year, description, social_links, contact_email, contact_phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::jsonb, $11, $12)
		RETURNING id, created_at, updated_at`
	err = r.db.QueryRow(ctx, query,
		p.UserID, p.CompanyName, p.LogoURL, nullString(p.CoverImageURL), nullString(p.Website), nullString(p.Industry),
		nullString(p.CompanySize), p.FoundedYear, nullString(p.Description), string(socialLinks),
		nullString(p.ContactEmail), nullString(p.ContactPhone),
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return mapError(err)
}

func (r *employerProfileRepo) Update(ctx context.Context, p *domain.EmployerProfile) error {
	socialLinks, err := json.Marshal(p.SocialLinks)
	if err != nil {
		return err
	}
	query := `
		UPDATE employer_profiles SET
			company_name = $2, logo_url = $3, cover_image_url = $4, website = $5, industry = $6,
			company_size = $7, founded_year = $8, description = $9, social_links = $10::jsonb,
			contact_email = $11, contact_phone = $12, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
	err = r.db.QueryRow(ctx, query,
		p.ID, p.CompanyName, p.LogoURL, nullString(p.CoverImageURL), nullString(p.Website), nullString(p.Industry),
		nullString(p.CompanySize), p.FoundedYear, nullString(p.Description), string(socialLinks),
		nullString(p.ContactEmail), nullString(p.ContactPhone),
	).Scan(&p.UpdatedAt)
	return mapError(err)
}

func (r *employerProfileRepo) AddLocation(ctx context.Context, profileID int64, loc *domain.Location, headquarters bool) error {
	loc.ID = uuid.NewString()
	query := `
		WITH loc AS (
			INSERT INTO employer_locations (id, profile_id, address) VALUES ($1, $2, $3) RETURNING id
		)
		UPDATE employer_profiles SET headquarters_location_id = loc.id, updated_at = now()
		FROM loc
		WHERE employer_profiles.id = $2 AND $4::boolean`
	_, err := r.db.Exec(ctx, query, loc.ID, profileID, loc.Address, headquarters)
	if err != nil {
		return mapError(err)
	}
	loc.IsHeadquarters = headquarters
	return nil
}

func (r *employerProfileRepo) SetHeadquarters(ctx context.Context, profileID int64, locationID string) error {
	if _, err := uuid.Parse(locationID); err != nil {
		return domain.ErrNotFound
	}
	query := `
		UPDATE employer_profiles SET headquarters_location_id = l.id, updated_at = now()
		FROM employer_locations l
		WHERE employer_profiles.id = $1 AND l.id = $2 AND l.profile_id = $1`
	tag, err := r.db.Exec(ctx, query, profileID, locationID)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteLocation relies on ON DELETE SET NULL to drop the headquarters mark.
func (r *employerProfileRepo) DeleteLocation(ctx context.Context, profileID int64, locationID string) error {
	if _, err := uuid.Parse(locationID); err != nil {
		return domain.ErrNotFound
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM employer_locations WHERE id = $1 AND profile_id = $2`, locationID, profileID)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
