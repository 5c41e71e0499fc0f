// Package dataset looks up reference business records by ID.
package dataset

import (
	"context"

	"sme-financial-health/internal/models"
)

// Source provides business records for analysis.
type Source interface {
	// Get returns the record for businessID or models.ErrBusinessNotFound.
	Get(ctx context.Context, businessID string) (*models.FinancialRecord, error)
	// List returns a summary of every business in dataset order.
	List(ctx context.Context) ([]models.BusinessSummary, error)
}
