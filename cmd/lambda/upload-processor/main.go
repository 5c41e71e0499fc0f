// Upload processor Lambda entry point, triggered by S3 uploads.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"sme-financial-health/internal/config"
	"sme-financial-health/internal/handlers"
	"sme-financial-health/internal/services/assessment"
	"sme-financial-health/internal/services/database"
	"sme-financial-health/internal/services/dataset"
	s3service "sme-financial-health/internal/services/s3"
	"sme-financial-health/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	_ = utils.InitLogger(cfg.LogLevel)
	defer utils.Sync()

	ctx := context.Background()

	files, err := s3service.NewService(ctx, cfg.AWSRegion, cfg.ReportBucket)
	if err != nil {
		panic("Failed to create S3 service: " + err.Error())
	}

	var (
		recorder   assessment.Recorder
		businesses handlers.BusinessWriter
	)
	if cfg.DBEnabled {
		db, err := database.New(ctx, cfg)
		if err != nil {
			panic("Failed to connect to database: " + err.Error())
		}
		defer db.Close()
		recorder = database.NewAssessmentRepository(db)
		businesses = database.NewBusinessRepository(db)
	}

	// Uploaded records are analyzed as given, so the lookup dataset stays empty.
	assessor := assessment.NewService(dataset.NewMemorySource(), recorder)

	// Start Lambda
	lambda.Start(handlers.NewUploadProcessorHandler(files, assessor, businesses).Handle)
}
