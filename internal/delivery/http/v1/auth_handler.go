package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC       domain.AuthUsecase
	cookieSecure bool
}

func NewAuthHandler(public, protected, strict *gin.RouterGroup, authUC domain.AuthUsecase, cookieSecure bool) {
	handler := &AuthHandler{authUC: authUC, cookieSecure: cookieSecure}

	// Public Routes; credential endpoints get the stricter rate limit
	strictAuth := strict.Group("/auth")
	{
		strictAuth.POST("/register", handler.Register)
		strictAuth.POST("/login", handler.Login)
		strictAuth.POST("/forgot-password", handler.ForgotPassword)
		strictAuth.PUT("/reset-password/:token", handler.ResetPassword)
	}
	publicAuth := public.Group("/auth")
	{
		publicAuth.GET("/logout", handler.Logout)
		publicAuth.GET("/verify-email/:token", handler.VerifyEmail)
	}

	// Protected Routes
	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
		protectedAuth.PUT("/me", handler.UpdateMe)
		protectedAuth.POST("/avatar", handler.UploadAvatar)
		protectedAuth.PUT("/change-password", handler.ChangePassword)
		protectedAuth.POST("/resend-verification-email", handler.ResendVerificationEmail)
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=50,no_emoji"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=candidate employer"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateMeRequest struct {
	Name string `json:"name" binding:"required,max=50,no_emoji"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// Register godoc
// @Summary      User Registration
// @Description  Register a candidate or employer account and receive a token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration Details"
// @Success      201       {object}  response.Response{data=domain.AuthResult}
// @Failure      400       {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authUC.Register(c.Request.Context(), domain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.setAuthCookie(c, result.Token)
	response.Success(c, http.StatusCreated, "Registration successful", result)
}

// Login godoc
// @Summary      User Login
// @Description  Login with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Login Credentials"
// @Success      200    {object}  response.Response{data=domain.AuthResult}
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      429    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), domain.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		IP:        c.ClientIP(),
		RequestID: c.GetString(string(domain.KeyRequestID)),
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.setAuthCookie(c, result.Token)
	response.Success(c, http.StatusOK, "Login successful", result)
}

// Logout godoc
// @Summary      Logout
// @Description  Clears the auth cookie. Issued tokens stay valid until they expire.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", h.cookieSecure, true)
	response.Success(c, http.StatusOK, "Logged out", nil)
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUC.GetCurrentUser(c.Request.Context(), callerID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Current user", user)
}

// UpdateMe godoc
// @Summary      Update own name
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateMeRequest  true  "New name"
// @Success      200   {object}  response.Response{data=domain.User}
// @Router       /auth/me [put]
// @Security     BearerAuth
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	var req UpdateMeRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.authUC.UpdateName(c.Request.Context(), callerID(c), req.Name)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", user)
}

// UploadAvatar godoc
// @Summary      Upload avatar
// @Description  JPG, PNG or GIF up to 2MB; wide images are scaled to 800px
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Avatar image"
// @Success      200    {object}  response.Response{data=domain.User}
// @Failure      400    {object}  response.Response
// @Failure      429    {object}  response.Response
// @Router       /auth/avatar [post]
// @Security     BearerAuth
func (h *AuthHandler) UploadAvatar(c *gin.Context) {
	filename, data, ok := readUpload(c, "image", domain.UploadImage)
	if !ok {
		return
	}
	user, err := h.authUC.UploadAvatar(c.Request.Context(), callerID(c), filename, data)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Avatar updated", user)
}

// ChangePassword godoc
// @Summary      Change password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      ChangePasswordRequest  true  "Passwords"
// @Success      200   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /auth/change-password [put]
// @Security     BearerAuth
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.authUC.ChangePassword(c.Request.Context(), callerID(c), req.CurrentPassword, req.NewPassword); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Password updated", nil)
}

// ForgotPassword godoc
// @Summary      Request a password reset email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      ForgotPasswordRequest  true  "Account email"
// @Success      200   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.authUC.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Password reset email sent", nil)
}

// ResetPassword godoc
// @Summary      Reset password with an emailed token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token  path      string                true  "Reset token"
// @Param        body   body      ResetPasswordRequest  true  "New password"
// @Success      200    {object}  response.Response{data=domain.AuthResult}
// @Failure      400    {object}  response.Response
// @Router       /auth/reset-password/{token} [put]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.authUC.ResetPassword(c.Request.Context(), c.Param("token"), req.Password)
	if err != nil {
		c.Error(err)
		return
	}
	h.setAuthCookie(c, result.Token)
	response.Success(c, http.StatusOK, "Password reset successful", result)
}

// VerifyEmail godoc
// @Summary      Verify email address
// @Tags         auth
// @Produce      json
// @Param        token  path      string  true  "Verification token"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /auth/verify-email/{token} [get]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	if err := h.authUC.VerifyEmail(c.Request.Context(), c.Param("token")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Email verified", nil)
}

// ResendVerificationEmail godoc
// @Summary      Resend the verification email
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /auth/resend-verification-email [post]
// @Security     BearerAuth
func (h *AuthHandler) ResendVerificationEmail(c *gin.Context) {
	if err := h.authUC.ResendVerificationEmail(c.Request.Context(), callerID(c)); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Verification email sent", nil)
}

func (h *AuthHandler) setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, token, int(h.authUC.TokenLifetime().Seconds()), "/", "", h.cookieSecure, true)
}
