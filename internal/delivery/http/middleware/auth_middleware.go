package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// AuthCookieName is the HTTP-only cookie set on login.
const AuthCookieName = "auth_token"

// Authenticator resolves a bearer credential to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// AuthMiddleware requires a valid token from the Authorization header or the
// auth_token cookie and stores the caller on the gin and request contexts.
func AuthMiddleware(authn Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response.Abort(c, http.StatusUnauthorized, "Not authorized to access this route")
			return
		}

		user, err := authn.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Abort(c, appErr.Code, appErr.Message)
				return
			}
			response.Abort(c, http.StatusUnauthorized, "Not authorized to access this route")
			return
		}

		setCaller(c, user)
		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is present and lets
// anonymous or badly authenticated requests through unchanged.
func OptionalAuth(authn Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := extractToken(c); tokenString != "" {
			if user, err := authn.Authenticate(c.Request.Context(), tokenString); err == nil {
				setCaller(c, user)
			}
		}
		c.Next()
	}
}

// RequireRoles must run after AuthMiddleware.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	allowed := make(map[domain.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		role := domain.Role(c.GetString(string(domain.KeyUserRole)))
		if !allowed[role] {
			response.Abort(c, http.StatusForbidden, "User role "+string(role)+" is not authorized to access this route")
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	// 1. Try to get token from Header
	if header := c.GetHeader("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
		return ""
	}
	// 2. Try to get token from Cookie
	if cookie, err := c.Cookie(AuthCookieName); err == nil {
		return cookie
	}
	return ""
}

func setCaller(c *gin.Context, user *domain.User) {
	c.Set(string(domain.KeyUserID), user.ID)
	c.Set(string(domain.KeyUserEmail), user.Email)
	c.Set(string(domain.KeyUserRole), string(user.Role))

	ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, user.ID)
	ctx = context.WithValue(ctx, domain.KeyUserRole, user.Role)
	c.Request = c.Request.WithContext(ctx)
}
