//go:build ignore

package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"sme-financial-health/internal/config"
	"sme-financial-health/internal/models"
	"sme-financial-health/internal/services/database"
	"sme-financial-health/internal/services/dataset"
)

func main() {
	fmt.Println("=== Database Initialization Script ===")
	fmt.Println()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("❌ Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	// Connect to the default 'postgres' database to create ours
	fmt.Println("📡 Connecting to PostgreSQL server...")
	adminURL := strings.Replace(cfg.DatabaseURL(), "/"+cfg.DBName+"?", "/postgres?", 1)

	adminConn, err := pgx.Connect(ctx, adminURL)
	if err != nil {
		fmt.Printf("❌ Failed to connect to PostgreSQL: %v\n", err)
		os.Exit(1)
	}

	var exists bool
	err = adminConn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		fmt.Printf("❌ Failed to check database existence: %v\n", err)
		adminConn.Close(ctx)
		os.Exit(1)
	}

	if !exists {
		fmt.Printf("📦 Creating '%s' database...\n", cfg.DBName)
		if _, err := adminConn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
			fmt.Printf("❌ Failed to create database: %v\n", err)
			adminConn.Close(ctx)
			os.Exit(1)
		}
		fmt.Printf("✅ Database '%s' created!\n", cfg.DBName)
	} else {
		fmt.Printf("✅ Database '%s' already exists\n", cfg.DBName)
	}
	adminConn.Close(ctx)

	db, err := database.New(ctx, cfg)
	if err != nil {
		fmt.Printf("❌ Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	fmt.Println("🚀 Applying schema...")
	if err := db.Migrate(ctx); err != nil {
		fmt.Printf("❌ Failed to apply schema: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✅ Schema applied")
	fmt.Println()

	// Seed businesses from the reference dataset
	fmt.Printf("📖 Loading dataset %s...\n", cfg.DatasetPath)
	source, err := dataset.LoadCSV(ctx, cfg.DatasetPath)
	if err != nil {
		fmt.Printf("⚠️  Skipping seed: %v\n", err)
		return
	}

	repo := database.NewBusinessRepository(db)
	summaries, err := source.List(ctx)
	if err != nil {
		fmt.Printf("❌ Failed to list dataset: %v\n", err)
		os.Exit(1)
	}

	records := make([]*models.FinancialRecord, 0, len(summaries))
	for _, s := range summaries {
		r, err := source.Get(ctx, s.BusinessID)
		if err != nil {
			fmt.Printf("❌ Failed to read %s: %v\n", s.BusinessID, err)
			os.Exit(1)
		}
		records = append(records, r)
	}

	result, err := repo.BulkUpsert(ctx, records)
	if err != nil {
		fmt.Printf("❌ Failed to seed businesses: %v\n", err)
		os.Exit(1)
	}

	total, err := repo.Count(ctx)
	if err != nil {
		fmt.Printf("⚠️  Warning: Could not count businesses: %v\n", err)
	}

	fmt.Printf("   📦 Seeded %d businesses (%d failed), %d in database\n",
		result.InsertedCount, result.FailedCount, total)
	for _, e := range result.Errors {
		fmt.Printf("      %s\n", e)
	}

	fmt.Println()
	fmt.Println("🎉 Database initialization completed successfully!")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Start the API: DATASET_SOURCE=postgres go run ./cmd/server")
	fmt.Println("  2. Or deploy the Lambda functions")
}
