package dataset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"sme-financial-health/internal/models"
	"sme-financial-health/internal/utils"
)

// LoadCSV reads a reference dataset file. Balance-sheet fields the file
// does not carry are inferred with InferMissing.
func LoadCSV(ctx context.Context, path string) (*MemorySource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	records, errs := utils.NewDatasetParser().ParseCSV(string(data))
	if len(records) == 0 {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, errors.Join(errs...))
	}

	for _, r := range records {
		InferMissing(r)
	}

	logger := utils.GetLogger()
	for _, err := range errs {
		logger.Warn("Skipped dataset row", utils.String("path", path), utils.Error(err))
	}
	logger.Info("Dataset loaded",
		utils.String("path", path),
		utils.Int("businesses", len(records)),
		utils.Int("skipped", len(errs)),
		utils.Duration("duration", time.Since(start)),
	)

	return NewMemorySource(records...), nil
}

// InferMissing fills balance-sheet fields the dataset omits with estimates
// derived from revenue and the supplied ratios.
func InferMissing(r *models.FinancialRecord) {
	if r == nil {
		return
	}
	ar := r.AnnualRevenue

	if r.CurrentAssets == nil {
		switch {
		case r.CurrentRatio != nil && r.CurrentLiabilities != nil && *r.CurrentLiabilities != 0:
			r.CurrentAssets = models.Float(*r.CurrentRatio * *r.CurrentLiabilities)
		case r.CurrentRatio != nil:
			r.CurrentAssets = models.Float(ar * 0.2 * *r.CurrentRatio)
		default:
			r.CurrentAssets = models.Float(ar * 0.2)
		}
	}

	if r.CurrentLiabilities == nil {
		if r.CurrentRatio != nil && *r.CurrentRatio != 0 {
			r.CurrentLiabilities = models.Float(*r.CurrentAssets / *r.CurrentRatio)
		} else {
			r.CurrentLiabilities = models.Float(maxFloat(1, ar*0.1))
		}
	}

	if r.TotalAssets == nil {
		ta := 0.0
		if ar > 0 {
			ta = ar * 1.2
		}
		r.TotalAssets = models.Float(ta)
	}

	if r.TotalLiabilities == nil {
		ta := *r.TotalAssets
		if r.DebtEquityRatio != nil && *r.DebtEquityRatio != 0 {
			equity := ta * 0.7
			if equity <= 0 {
				equity = ta * 0.5
			}
			r.TotalLiabilities = models.Float(*r.DebtEquityRatio * equity)
		} else {
			r.TotalLiabilities = models.Float(ta * 0.3)
		}
	}

	if r.Inventory == nil {
		r.Inventory = models.Float(ar * 0.05)
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
