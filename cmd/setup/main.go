// Command setup creates the InvestSim database when it is missing and
// applies the migrations. With -reset it drops the database first.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/InvestSim_Go/internal/bootstrap"
	"github.com/osse101/InvestSim_Go/internal/config"
	"github.com/osse101/InvestSim_Go/internal/database"
)

func main() {
	reset := flag.Bool("reset", false, "drop and recreate the database before migrating")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := ensureDatabase(ctx, cfg, *reset); err != nil {
		slog.Error("Database setup failed", "error", err)
		os.Exit(1)
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), bootstrap.PoolOptions(cfg))
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "db_name", cfg.DBName)
}

// ensureDatabase connects to the server's "postgres" database to manage cfg.DBName
func ensureDatabase(ctx context.Context, cfg *config.Config, reset bool) error {
	serverConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)
	conn, err := pgx.Connect(ctx, serverConnString)
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	name := pgx.Identifier{cfg.DBName}.Sanitize()

	if reset {
		slog.Info("Terminating existing connections", "db_name", cfg.DBName)
		if _, err := conn.Exec(ctx, `
			SELECT pg_terminate_backend(pid)
			FROM pg_stat_activity
			WHERE datname = $1 AND pid <> pg_backend_pid()`, cfg.DBName); err != nil {
			slog.Warn("Failed to terminate connections", "error", err)
		}
		if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+name); err != nil {
			return fmt.Errorf("failed to drop database: %w", err)
		}
		slog.Info("Database dropped", "db_name", cfg.DBName)
	}

	var exists bool
	if err := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		slog.Info("Database already exists", "db_name", cfg.DBName)
		return nil
	}

	if _, err := conn.Exec(ctx, "CREATE DATABASE "+name); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	slog.Info("Database created", "db_name", cfg.DBName)
	return nil
}
