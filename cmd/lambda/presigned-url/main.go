// Presigned upload URL Lambda entry point
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"sme-financial-health/internal/config"
	"sme-financial-health/internal/handlers"
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

	store, err := s3service.NewService(context.Background(), cfg.AWSRegion, cfg.ReportBucket)
	if err != nil {
		panic("Failed to create S3 service: " + err.Error())
	}

	// Start Lambda
	lambda.Start(handlers.NewPresignedURLHandler(store).Handle)
}
