// Package main runs the financial health HTTP API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"sme-financial-health/internal/config"
	"sme-financial-health/internal/handlers"
	"sme-financial-health/internal/services/assessment"
	"sme-financial-health/internal/services/database"
	"sme-financial-health/internal/services/dataset"
	s3service "sme-financial-health/internal/services/s3"
	"sme-financial-health/internal/services/ses"
	"sme-financial-health/internal/utils"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.Sync()
	logger := utils.GetLogger()

	ctx := context.Background()

	opts := handlers.Options{
		UploadDir:      cfg.UploadDir,
		MaxUploadBytes: cfg.MaxUploadBytes(),
		LinkExpiry:     cfg.ReportLinkExpiry(),
	}

	// Database is optional; without it history is unavailable.
	var db *database.DB
	var recorder assessment.Recorder
	if cfg.DBEnabled || cfg.DatasetSource == config.DatasetPostgres {
		db, err = database.New(ctx, cfg)
		if err != nil {
			logger.Warn("Could not connect to database, running without it", utils.Error(err))
		} else {
			defer db.Close()
			if err := db.Migrate(ctx); err != nil {
				logger.Fatal("Failed to migrate database", utils.Error(err))
			}
			assessments := database.NewAssessmentRepository(db)
			recorder = assessments
			opts.DB = db
			opts.History = assessments
		}
	}

	source, err := loadDataset(ctx, cfg, db)
	if err != nil {
		logger.Fatal("Failed to load dataset", utils.Error(err))
	}
	opts.Assessor = assessment.NewService(source, recorder)

	if cfg.S3Enabled() {
		store, err := s3service.NewService(ctx, cfg.AWSRegion, cfg.ReportBucket)
		if err != nil {
			logger.Warn("Report sharing disabled", utils.Error(err))
		} else {
			opts.Store = store
		}
	}

	if cfg.SESEnabled() && opts.Store != nil {
		mailer, err := ses.NewService(ctx, cfg.AWSRegion, cfg.SESSenderEmail)
		if err != nil {
			logger.Warn("Report email disabled", utils.Error(err))
		} else {
			opts.Mailer = mailer
		}
	}

	api := handlers.NewServer(opts)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	addr := fmt.Sprintf("0.0.0.0:%s", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           c.Handler(api.Routes()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server",
			utils.String("addr", addr),
			utils.String("dataset", cfg.DatasetSource),
			utils.Bool("database", opts.DB != nil),
			utils.Bool("s3", opts.Store != nil),
			utils.Bool("ses", opts.Mailer != nil))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", utils.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", utils.Error(err))
	}
	logger.Info("Server stopped")
}

// loadDataset returns the reference dataset named by the config.
func loadDataset(ctx context.Context, cfg *config.Config, db *database.DB) (dataset.Source, error) {
	if cfg.DatasetSource == config.DatasetPostgres {
		if db == nil {
			return nil, errors.New("postgres dataset requires a database connection")
		}
		return database.NewBusinessRepository(db), nil
	}

	source, err := dataset.LoadCSV(ctx, cfg.DatasetPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			utils.GetLogger().Warn("Dataset file not found, starting with an empty dataset",
				utils.String("path", cfg.DatasetPath))
			return dataset.NewMemorySource(), nil
		}
		return nil, err
	}
	return source, nil
}
