package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/vinhph2/quizhub-api/internal/config"
	"github.com/vinhph2/quizhub-api/pkg/logger"
)

// Applies the quiz schema to the writer database and exits. The API binary
// also migrates at startup; this exists for provisioning a database ahead of
// a deploy.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	db, err := config.NewWriterDatabase()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}

	if err := config.Migrate(db); err != nil {
		appLogger.Fatal("Failed to migrate database schema", err)
	}

	appLogger.Info("Database schema migrated")
	appLogger.Sync()
}
