package main

import (
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-records/config"
	pginfra "github.com/oksasatya/go-ddd-records/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-records/pkg/helpers"
)

// seed inserts one sample row per table. Rows are not deduplicated, so
// running it twice yields two of each.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env, cfg.LogLevel)

	dsn := cfg.PostgresDSN()
	if err := pginfra.RunMigrations(dsn, cfg.MigrationsDir, logger); err != nil {
		logger.Fatalf("migration failed: %v", err)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		logger.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	var userID, roleID, permID int64
	if err := db.QueryRow(
		`INSERT INTO users (username, email) VALUES ($1, $2) RETURNING id`,
		"demo", "demo@example.com",
	).Scan(&userID); err != nil {
		logger.Fatalf("failed to seed user: %v", err)
	}
	if err := db.QueryRow(`INSERT INTO roles (name) VALUES ($1) RETURNING id`, "admin").Scan(&roleID); err != nil {
		logger.Fatalf("failed to seed role: %v", err)
	}
	if err := db.QueryRow(`INSERT INTO permissions (action) VALUES ($1) RETURNING id`, "read").Scan(&permID); err != nil {
		logger.Fatalf("failed to seed permission: %v", err)
	}

	logger.WithFields(logrus.Fields{
		"user_id":       userID,
		"role_id":       roleID,
		"permission_id": permID,
	}).Info("seeded sample records")
}
