// Health Check Lambda entry point
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"sme-financial-health/internal/config"
	"sme-financial-health/internal/handlers"
	"sme-financial-health/internal/services/database"
	"sme-financial-health/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	// Initialize logger
	_ = utils.InitLogger(cfg.LogLevel)
	defer utils.Sync()

	var checker handlers.HealthChecker
	if cfg.DBEnabled {
		db, err := database.New(context.Background(), cfg)
		if err != nil {
			utils.GetLogger().Warn("Database unavailable", utils.Error(err))
		} else {
			defer db.Close()
			checker = db
		}
	}

	// Start Lambda
	lambda.Start(handlers.NewHealthHandler(checker, cfg.Stage).Handle)
}
