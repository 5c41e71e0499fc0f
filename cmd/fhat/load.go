package main

import (
	"context"
	"fmt"
	"os"

	"sme-financial-health/internal/models"
	"sme-financial-health/internal/services/dataset"
	"sme-financial-health/internal/utils"
)

// loadRecords reads statement records from path. Dataset files are parsed
// leniently and have missing balance-sheet fields inferred.
func loadRecords(ctx context.Context, path string, isDataset bool) ([]*models.FinancialRecord, error) {
	if isDataset {
		source, err := dataset.LoadCSV(ctx, path)
		if err != nil {
			return nil, err
		}
		summaries, err := source.List(ctx)
		if err != nil {
			return nil, err
		}
		records := make([]*models.FinancialRecord, 0, len(summaries))
		for _, s := range summaries {
			r, err := source.Get(ctx, s.BusinessID)
			if err != nil {
				return nil, err
			}
			records = append(records, r)
		}
		return records, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	loaded, err := utils.LoadUpload(path, f)
	if err != nil {
		return nil, err
	}
	for _, rowErr := range loaded.RowErrors {
		utils.GetLogger().Warn("Skipped row", utils.String("file", path), utils.Error(rowErr))
	}
	return loaded.Records, nil
}
