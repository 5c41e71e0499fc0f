// Analysis Lambda entry point
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"sme-financial-health/internal/config"
	"sme-financial-health/internal/handlers"
	"sme-financial-health/internal/services/assessment"
	"sme-financial-health/internal/services/database"
	"sme-financial-health/internal/services/dataset"
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

	var (
		source   dataset.Source
		recorder assessment.Recorder
	)
	if cfg.DatasetSource == config.DatasetPostgres {
		db, err := database.New(ctx, cfg)
		if err != nil {
			panic("Failed to connect to database: " + err.Error())
		}
		defer db.Close()
		source = database.NewBusinessRepository(db)
		recorder = database.NewAssessmentRepository(db)
	} else {
		// The dataset file is bundled with the function.
		mem, err := dataset.LoadCSV(ctx, cfg.DatasetPath)
		if err != nil {
			panic("Failed to load dataset: " + err.Error())
		}
		source = mem
	}

	handler := handlers.NewAnalysisHandler(assessment.NewService(source, recorder))

	// Start Lambda
	lambda.Start(handler.Handle)
}
