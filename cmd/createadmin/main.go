// Command createadmin creates an administrator account. Admins cannot sign
// up through the API.
//
//	go run ./cmd/createadmin -email admin@example.com -name "Site Admin"
//
// The password is read from ADMIN_PASSWORD.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"strings"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/logger"

	"github.com/google/uuid"
)

func main() {
	email := flag.String("email", "", "admin email address")
	name := flag.String("name", "Administrator", "display name")
	flag.Parse()

	password := os.Getenv("ADMIN_PASSWORD")
	if *email == "" || len(password) < 6 {
		logger.Log.Error("usage: ADMIN_PASSWORD=<min 6 chars> createadmin -email <address> [-name <name>]")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Log.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := auth.HashPassword(password)
	if err != nil {
		logger.Log.Error("Failed to hash password", "error", err)
		os.Exit(1)
	}

	now := time.Now()
	user := &domain.User{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(*name),
		Email:           strings.ToLower(strings.TrimSpace(*email)),
		PasswordHash:    hash,
		Role:            domain.RoleAdmin,
		Status:          domain.UserStatusActive,
		IsEmailVerified: true,
		AvatarURL:       domain.DefaultAvatar,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := postgres.NewUserRepository(pool).Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			logger.Log.Error("A user with this email already exists", "email", user.Email)
		} else {
			logger.Log.Error("Failed to create admin", "error", err)
		}
		os.Exit(1)
	}

	logger.Log.Info("Admin created", "id", user.ID, "email", user.Email)
}
