package postgres

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, name, email, password_hash, role, status, is_email_verified, avatar_url,
	verification_token_hash, verification_token_expires_at, reset_token_hash, reset_token_expires_at,
	created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Status, &u.IsEmailVerified, &u.AvatarURL,
		&u.VerificationTokenHash, &u.VerificationTokenExpiresAt, &u.ResetTokenHash, &u.ResetTokenExpiresAt,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, name, email, password_hash, role, status, is_email_verified, avatar_url,
	              verification_token_hash, verification_token_expires_at, created_at, updated_at)
              VALUES ($1, $2, lower($3), $4, $5, $6, $7, $8, $9, $10, $11, $12)
              RETURNING email`
	err := r.db.QueryRow(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.Status, user.IsEmailVerified, user.AvatarURL,
		user.VerificationTokenHash, user.VerificationTokenExpiresAt, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.Email)
	return mapError(err)
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *userRepo) GetByResetToken(ctx context.Context, tokenHash string, now time.Time) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE reset_token_hash = $1 AND reset_token_expires_at > $2`
	return scanUser(r.db.QueryRow(ctx, query, tokenHash, now))
}

func (r *userRepo) GetByVerificationToken(ctx context.Context, tokenHash string, now time.Time) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE verification_token_hash = $1 AND verification_token_expires_at > $2`
	return scanUser(r.db.QueryRow(ctx, query, tokenHash, now))
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET name = $2, password_hash = $3, status = $4, is_email_verified = $5, avatar_url = $6,
	              verification_token_hash = $7, verification_token_expires_at = $8,
	              reset_token_hash = $9, reset_token_expires_at = $10, updated_at = $11
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		user.ID, user.Name, user.PasswordHash, user.Status, user.IsEmailVerified, user.AvatarURL,
		user.VerificationTokenHash, user.VerificationTokenExpiresAt,
		user.ResetTokenHash, user.ResetTokenExpiresAt, user.UpdatedAt,
	)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
