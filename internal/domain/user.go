package domain

import (
	"context"
	"time"
)

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleEmployer  Role = "employer"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleCandidate || r == RoleEmployer || r == RoleAdmin
}

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

const DefaultAvatar = "default-avatar.jpg"

// Token lifetimes for single-use email tokens.
const (
	PasswordResetTTL     = 10 * time.Minute
	EmailVerificationTTL = 24 * time.Hour
)

type User struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	PasswordHash    string     `json:"-"`
	Role            Role       `json:"role"`
	Status          UserStatus `json:"status"`
	IsEmailVerified bool       `json:"is_email_verified"`
	AvatarURL       string     `json:"avatar_url"`

	VerificationTokenHash      *string    `json:"-"`
	VerificationTokenExpiresAt *time.Time `json:"-"`
	ResetTokenHash             *string    `json:"-"`
	ResetTokenExpiresAt        *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserSummary is the public projection of a user embedded in other resources.
type UserSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID string
	Role   Role
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

type LoginInput struct {
	Email     string
	Password  string
	IP        string
	RequestID string
}

type AuthResult struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByResetToken(ctx context.Context, tokenHash string, now time.Time) (*User, error)
	GetByVerificationToken(ctx context.Context, tokenHash string, now time.Time) (*User, error)
	// Update writes every mutable column. Email and role are never changed.
	Update(ctx context.Context, user *User) error
}

// LoginGuard throttles repeated failed logins for an email.
type LoginGuard interface {
	IsBlocked(ctx context.Context, email string) (bool, error)
	RecordFailedAttempt(ctx context.Context, email, ip, requestID string) (bool, error)
	ClearAttempts(ctx context.Context, email string) error
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
	// Authenticate resolves a bearer credential to an active user.
	Authenticate(ctx context.Context, token string) (*User, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
	UpdateName(ctx context.Context, id, name string) (*User, error)
	UploadAvatar(ctx context.Context, id, filename string, data []byte) (*User, error)
	ChangePassword(ctx context.Context, id, current, next string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) (*AuthResult, error)
	VerifyEmail(ctx context.Context, token string) error
	ResendVerificationEmail(ctx context.Context, id string) error
	TokenLifetime() time.Duration
}
