// Command migrate applies the embedded schema migrations and exits.
package main

import (
	"context"
	"os"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Log.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := database.Migrate(ctx, cfg.DBUrl); err != nil {
		logger.Log.Error("Migration failed", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("Migrations applied")
}
