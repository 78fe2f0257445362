package v1

import (
	"net/http"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/security"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC             domain.AuthUsecase
	JobUC              domain.JobUsecase
	CandidateProfileUC domain.CandidateProfileUsecase
	EmployerProfileUC  domain.EmployerProfileUsecase
	ApplicationUC      domain.ApplicationUsecase
	WishlistUC         domain.WishlistUsecase
	EmailPreferenceUC  domain.EmailPreferenceUsecase
	AdminUC            domain.AdminUsecase
	HealthUC           usecase.HealthUsecase
	Counter            *security.Counter
	SecurityLogger     *security.SecurityLogger
	// ServeUploads exposes Config.UploadDir at /uploads for local storage.
	ServeUploads bool
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	validation.RegisterBindingValidators()

	r := gin.New()
	cfg := deps.Config

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeadersMiddleware(cfg.IsProduction()))
	if cfg.CSRFProtection {
		r.Use(middleware.CSRFMiddleware(cfg.CookieSecure))
	}
	r.Use(middleware.ErrorHandler())

	if deps.ServeUploads {
		r.Static("/uploads", cfg.UploadDir)
	}

	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(deps.Counter, deps.SecurityLogger,
		middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window)))

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		status, healthy := deps.HealthUC.Check(c.Request.Context())
		if !healthy {
			response.Error(c, http.StatusServiceUnavailable, "Service degraded", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Credential endpoints get the stricter limit on top of the global one
	strict := api.Group("")
	strict.Use(middleware.RateLimitMiddleware(deps.Counter, deps.SecurityLogger,
		middleware.AuthRateLimitConfig(cfg.RateLimitLoginThreshold, window)))

	optionalAuth := middleware.OptionalAuth(deps.AuthUC)
	candidateOnly := middleware.RequireRoles(domain.RoleCandidate)
	employerOnly := middleware.RequireRoles(domain.RoleEmployer)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)
	profileViewers := middleware.RequireRoles(domain.RoleCandidate, domain.RoleEmployer, domain.RoleAdmin)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.AuthUC))
	{
		NewAuthHandler(api, protected, strict, deps.AuthUC, cfg.CookieSecure)
		NewJobHandler(api, protected, optionalAuth, employerOnly, deps.JobUC)
		NewCandidateProfileHandler(protected, candidateOnly, profileViewers, deps.CandidateProfileUC)
		NewEmployerProfileHandler(api, protected, employerOnly, deps.EmployerProfileUC)
		NewApplicationHandler(protected, candidateOnly, employerOnly, deps.ApplicationUC)
		NewWishlistHandler(protected, candidateOnly, deps.WishlistUC)
		NewEmailPreferenceHandler(api, protected, deps.EmailPreferenceUC, cfg.FrontendURL)
		NewAdminHandler(protected, adminOnly, deps.AdminUC)
	}

	return r
}
