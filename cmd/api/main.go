package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs" // Important for Swagger
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/email"
	"go-jobboard-backend/pkg/logger"
	redisclient "go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/security"
	"go-jobboard-backend/pkg/security/antivirus"
	"go-jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// @title           Job Board API
// @version         1.0
// @description     Job board backend: listings, profiles, applications and moderation.
// @host            localhost:5000
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Log.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting job board backend", "port", cfg.Port, "env", cfg.Env)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// 3. Setup Database
	if cfg.RunMigrations {
		if err := database.Migrate(ctx, cfg.DBUrl); err != nil {
			logger.Log.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	healthChecks := map[string]usecase.HealthCheck{"database": dbPool.Ping}

	// 4. Setup Redis (optional; counters fall back to process memory)
	var rdb *goredis.Client
	rdb, err = redisclient.NewClient(ctx, redisclient.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	switch {
	case errors.Is(err, redisclient.ErrNotConfigured):
		rdb = nil
	case err != nil:
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		rdb = nil
	default:
		defer rdb.Close()
		healthChecks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	// 5. Setup Security
	secLog := security.NewSecurityLogger("jobboard-api", cfg.Env)
	counter := security.NewCounter(rdb)
	loginTracker := security.NewLoginTracker(security.LoginTrackerConfig{
		MaxAttempts:   cfg.FailedLoginMaxAttempts,
		BlockDuration: time.Duration(cfg.FailedLoginBlockMinutes) * time.Minute,
	}, counter, secLog)
	uploadLimiter := security.NewUploadLimiter(cfg.UploadsPerHour, counter)
	scanner := antivirus.New(cfg.ClamAVAddress)
	logger.Log.Info("Malware scanner configured", "scanner", scanner.Name())

	// 6. Setup Storage
	var store storage.Store
	serveUploads := cfg.S3Bucket == ""
	if serveUploads {
		store, err = storage.NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL)
	} else {
		store, err = storage.NewS3Store(ctx, storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			PublicURL: cfg.S3PublicURL,
		})
	}
	if err != nil {
		logger.Log.Error("Failed to initialise upload storage", "error", err)
		os.Exit(1)
	}

	// 7. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - notification emails will be skipped")
	}

	// 8. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	candidateProfileRepo := postgres.NewCandidateProfileRepository(dbPool)
	employerProfileRepo := postgres.NewEmployerProfileRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	wishlistRepo := postgres.NewWishlistRepository(dbPool)
	emailPreferenceRepo := postgres.NewEmailPreferenceRepository(dbPool)
	adminRepo := postgres.NewAdminRepository(dbPool)

	// 9. Setup UseCases
	uploader := usecase.NewUploadService(uploadLimiter, scanner, store, secLog)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpiresIn)
	emailPreferenceUC := usecase.NewEmailPreferenceUsecase(emailPreferenceRepo)

	authUC := usecase.NewAuthUsecase(userRepo, tokens, loginTracker, emailService, uploader, secLog)
	jobUC := usecase.NewJobUsecase(jobRepo, employerProfileRepo)
	candidateProfileUC := usecase.NewCandidateProfileUsecase(candidateProfileRepo, uploader)
	employerProfileUC := usecase.NewEmployerProfileUsecase(employerProfileRepo, uploader)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, candidateProfileRepo, userRepo, emailPreferenceUC, emailService)
	wishlistUC := usecase.NewWishlistUsecase(wishlistRepo, jobRepo)
	adminUC := usecase.NewAdminUsecase(adminRepo, jobRepo, secLog)
	healthUC := usecase.NewHealthUsecase(healthChecks)

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:             authUC,
		JobUC:              jobUC,
		CandidateProfileUC: candidateProfileUC,
		EmployerProfileUC:  employerProfileUC,
		ApplicationUC:      applicationUC,
		WishlistUC:         wishlistUC,
		EmailPreferenceUC:  emailPreferenceUC,
		AdminUC:            adminUC,
		HealthUC:           healthUC,
		Counter:            counter,
		SecurityLogger:     secLog,
		ServeUploads:       serveUploads,
		Config:             cfg,
	})

	// 11. Start Server
	srv := newServer(cfg.Port, router)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// newServer bounds every phase of a connection. Write allows for spreadsheet
// exports and upload scanning.
func newServer(port string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
