package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/security"

	"github.com/google/uuid"
)

const (
	resetTokenBytes        = 20
	verificationTokenBytes = 20
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenService
	guard    domain.LoginGuard
	mailer   domain.Mailer
	uploader domain.FileUploader
	secLog   *security.SecurityLogger
	now      func() time.Time
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	tokens *auth.TokenService,
	guard domain.LoginGuard,
	mailer domain.Mailer,
	uploader domain.FileUploader,
	secLog *security.SecurityLogger,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		guard:    guard,
		mailer:   mailer,
		uploader: uploader,
		secLog:   secLog,
		now:      time.Now,
	}
}

func (u *authUsecase) TokenLifetime() time.Duration {
	return u.tokens.ExpiresIn()
}

func (u *authUsecase) Register(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error) {
	if in.Role == "" {
		in.Role = domain.RoleCandidate
	}
	// Admins are provisioned out of band.
	if in.Role != domain.RoleCandidate && in.Role != domain.RoleEmployer {
		return nil, apperror.BadRequest("Role must be candidate or employer")
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if _, err := u.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, apperror.Duplicate("Email already in use")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	rawToken, tokenHash, err := auth.NewOpaqueToken(verificationTokenBytes)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := u.now()
	expires := now.Add(domain.EmailVerificationTTL)
	user := &domain.User{
		ID:                         uuid.NewString(),
		Name:                       strings.TrimSpace(in.Name),
		Email:                      email,
		PasswordHash:               hash,
		Role:                       in.Role,
		Status:                     domain.UserStatusActive,
		AvatarURL:                  domain.DefaultAvatar,
		VerificationTokenHash:      &tokenHash,
		VerificationTokenExpiresAt: &expires,
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Duplicate("Email already in use")
		}
		return nil, apperror.Internal(err)
	}

	if err := u.mailer.SendVerificationEmail(ctx, user.Email, user.Name, rawToken); err != nil {
		logger.Log.Warn("Verification email not sent", "user_id", user.ID, "error", err)
	}

	return u.issue(user)
}

func (u *authUsecase) Login(ctx context.Context, in domain.LoginInput) (*domain.AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	blocked, err := u.guard.IsBlocked(ctx, email)
	if err != nil {
		logger.Log.Warn("Login guard unavailable", "error", err)
	}
	if blocked {
		u.secLog.LogLoginBlocked(ctx, email, in.IP, in.RequestID)
		return nil, apperror.New(http.StatusTooManyRequests, "Too many failed login attempts, please try again later", nil)
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, in.Password) {
		reason := "wrong password"
		if user == nil {
			reason = "unknown email"
		}
		u.secLog.LogLoginFailed(ctx, email, in.IP, in.RequestID, reason)
		if _, err := u.guard.RecordFailedAttempt(ctx, email, in.IP, in.RequestID); err != nil {
			logger.Log.Warn("Failed login not recorded", "error", err)
		}
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	if user.Status != domain.UserStatusActive {
		return nil, apperror.Forbidden("Account is deactivated")
	}

	if err := u.guard.ClearAttempts(ctx, email); err != nil {
		logger.Log.Warn("Failed login counter not cleared", "error", err)
	}
	u.secLog.Log(ctx, security.SecurityEvent{
		Event:        security.EventLoginSuccess,
		SubjectType:  "user_id",
		SubjectValue: user.ID,
		IP:           in.IP,
		RequestID:    in.RequestID,
	})

	return u.issue(user)
}

func (u *authUsecase) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := u.tokens.Validate(token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return nil, apperror.Unauthorized("Token has expired")
		}
		return nil, apperror.Unauthorized("Invalid token")
	}

	user, err := u.userRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("User no longer exists")
		}
		return nil, apperror.Internal(err)
	}
	if user.Status != domain.UserStatusActive {
		return nil, apperror.Unauthorized("Account is deactivated")
	}
	return user, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	return u.getUser(ctx, id)
}

func (u *authUsecase) UpdateName(ctx context.Context, id, name string) (*domain.User, error) {
	user, err := u.getUser(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Name = strings.TrimSpace(name)
	user.UpdatedAt = u.now()
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *authUsecase) UploadAvatar(ctx context.Context, id, filename string, data []byte) (*domain.User, error) {
	user, err := u.getUser(ctx, id)
	if err != nil {
		return nil, err
	}
	url, err := u.uploader.Upload(ctx, id, domain.UploadImage, "avatars", filename, data)
	if err != nil {
		return nil, err
	}
	user.AvatarURL = url
	user.UpdatedAt = u.now()
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *authUsecase) ChangePassword(ctx context.Context, id, current, next string) error {
	user, err := u.getUser(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(user.PasswordHash, current) {
		return apperror.BadRequest("Current password is incorrect")
	}
	hash, err := auth.HashPassword(next)
	if err != nil {
		return apperror.Internal(err)
	}
	user.PasswordHash = hash
	user.UpdatedAt = u.now()
	if err := u.userRepo.Update(ctx, user); err != nil {
		return apperror.Internal(err)
	}

	ip, reqID := requestMeta(ctx)
	u.secLog.Log(ctx, security.SecurityEvent{
		Event: security.EventPasswordChange, SubjectType: "user_id", SubjectValue: user.ID, IP: ip, RequestID: reqID,
	})
	return nil
}

// ForgotPassword stores a reset token and mails the link. The token is
// withdrawn again when the mail cannot be sent.
func (u *authUsecase) ForgotPassword(ctx context.Context, email string) error {
	user, err := u.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("There is no user with that email")
		}
		return apperror.Internal(err)
	}

	rawToken, tokenHash, err := auth.NewOpaqueToken(resetTokenBytes)
	if err != nil {
		return apperror.Internal(err)
	}
	expires := u.now().Add(domain.PasswordResetTTL)
	user.ResetTokenHash = &tokenHash
	user.ResetTokenExpiresAt = &expires
	if err := u.userRepo.Update(ctx, user); err != nil {
		return apperror.Internal(err)
	}

	if err := u.mailer.SendPasswordResetEmail(ctx, user.Email, user.Name, rawToken); err != nil {
		user.ResetTokenHash = nil
		user.ResetTokenExpiresAt = nil
		if uerr := u.userRepo.Update(ctx, user); uerr != nil {
			logger.Log.Error("Reset token not cleared", "user_id", user.ID, "error", uerr)
		}
		return apperror.New(http.StatusInternalServerError, "Email could not be sent", err)
	}
	return nil
}

func (u *authUsecase) ResetPassword(ctx context.Context, token, password string) (*domain.AuthResult, error) {
	user, err := u.userRepo.GetByResetToken(ctx, auth.HashToken(token), u.now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.BadRequest("Invalid or expired token")
		}
		return nil, apperror.Internal(err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	user.PasswordHash = hash
	user.ResetTokenHash = nil
	user.ResetTokenExpiresAt = nil
	user.UpdatedAt = u.now()
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}

	if err := u.guard.ClearAttempts(ctx, user.Email); err != nil {
		logger.Log.Warn("Failed login counter not cleared", "error", err)
	}
	ip, reqID := requestMeta(ctx)
	u.secLog.Log(ctx, security.SecurityEvent{
		Event: security.EventPasswordReset, SubjectType: "user_id", SubjectValue: user.ID, IP: ip, RequestID: reqID,
	})
	return u.issue(user)
}

func (u *authUsecase) VerifyEmail(ctx context.Context, token string) error {
	user, err := u.userRepo.GetByVerificationToken(ctx, auth.HashToken(token), u.now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.BadRequest("Invalid or expired token")
		}
		return apperror.Internal(err)
	}
	user.IsEmailVerified = true
	user.VerificationTokenHash = nil
	user.VerificationTokenExpiresAt = nil
	user.UpdatedAt = u.now()
	if err := u.userRepo.Update(ctx, user); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *authUsecase) ResendVerificationEmail(ctx context.Context, id string) error {
	user, err := u.getUser(ctx, id)
	if err != nil {
		return err
	}
	if user.IsEmailVerified {
		return apperror.BadRequest("Email is already verified")
	}

	rawToken, tokenHash, err := auth.NewOpaqueToken(verificationTokenBytes)
	if err != nil {
		return apperror.Internal(err)
	}
	expires := u.now().Add(domain.EmailVerificationTTL)
	user.VerificationTokenHash = &tokenHash
	user.VerificationTokenExpiresAt = &expires
	user.UpdatedAt = u.now()
	if err := u.userRepo.Update(ctx, user); err != nil {
		return apperror.Internal(err)
	}

	if err := u.mailer.SendVerificationEmail(ctx, user.Email, user.Name, rawToken); err != nil {
		logger.Log.Warn("Verification email not sent", "user_id", user.ID, "error", err)
	}
	return nil
}

func (u *authUsecase) getUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *authUsecase) issue(user *domain.User) (*domain.AuthResult, error) {
	token, err := u.tokens.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.AuthResult{User: user, Token: token}, nil
}
