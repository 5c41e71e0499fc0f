package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"sme-financial-health/internal/models"
)

const businessColumns = `business_id, industry_type, annual_revenue, total_expenses,
	current_assets, current_liabilities, total_assets, total_liabilities,
	inventory, accounts_receivable, current_ratio, quick_ratio,
	debt_equity_ratio, dscr, roce, days_inventory, days_receivables,
	days_payables, gst_compliance_status, financial_health_score, source`

const upsertBusinessSQL = `
	INSERT INTO businesses (` + businessColumns + `, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	ON CONFLICT (business_id) DO UPDATE SET
		industry_type = EXCLUDED.industry_type,
		annual_revenue = EXCLUDED.annual_revenue,
		total_expenses = EXCLUDED.total_expenses,
		current_assets = EXCLUDED.current_assets,
		current_liabilities = EXCLUDED.current_liabilities,
		total_assets = EXCLUDED.total_assets,
		total_liabilities = EXCLUDED.total_liabilities,
		inventory = EXCLUDED.inventory,
		accounts_receivable = EXCLUDED.accounts_receivable,
		current_ratio = EXCLUDED.current_ratio,
		quick_ratio = EXCLUDED.quick_ratio,
		debt_equity_ratio = EXCLUDED.debt_equity_ratio,
		dscr = EXCLUDED.dscr,
		roce = EXCLUDED.roce,
		days_inventory = EXCLUDED.days_inventory,
		days_receivables = EXCLUDED.days_receivables,
		days_payables = EXCLUDED.days_payables,
		gst_compliance_status = EXCLUDED.gst_compliance_status,
		financial_health_score = EXCLUDED.financial_health_score,
		source = EXCLUDED.source,
		updated_at = EXCLUDED.updated_at`

// BusinessRepository stores the reference dataset in the businesses table.
// It satisfies dataset.Source.
type BusinessRepository struct {
	db *DB
}

// NewBusinessRepository creates a new business repository.
func NewBusinessRepository(db *DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

func upsertArgs(r *models.FinancialRecord, now time.Time) []interface{} {
	return []interface{}{
		strings.TrimSpace(r.BusinessID),
		r.IndustryType,
		r.AnnualRevenue,
		r.TotalExpenses,
		r.CurrentAssets,
		r.CurrentLiabilities,
		r.TotalAssets,
		r.TotalLiabilities,
		r.Inventory,
		r.AccountsReceivable,
		r.CurrentRatio,
		r.QuickRatio,
		r.DebtEquityRatio,
		r.DSCR,
		r.ROCE,
		r.DaysInventory,
		r.DaysReceivables,
		r.DaysPayables,
		r.GSTComplianceStatus,
		r.FinancialHealthScore,
		r.Source,
		now,
	}
}

// Upsert inserts or replaces one business record.
func (r *BusinessRepository) Upsert(ctx context.Context, record *models.FinancialRecord) error {
	if _, err := r.db.ExecContext(ctx, upsertBusinessSQL, upsertArgs(record, time.Now().UTC())...); err != nil {
		return fmt.Errorf("failed to upsert business %s: %w", record.BusinessID, err)
	}
	return nil
}

// BulkUpsert inserts or replaces records in one transaction. Rows that fail
// are counted and reported without aborting the batch.
func (r *BusinessRepository) BulkUpsert(ctx context.Context, records []*models.FinancialRecord) (*models.BulkInsertResult, error) {
	result := &models.BulkInsertResult{
		InsertedCount: 0,
		FailedCount:   0,
		Errors:        []string{},
	}

	now := time.Now().UTC()
	err := r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		for i, record := range records {
			// Savepoint so one bad row does not abort the transaction.
			sp := fmt.Sprintf("row_%d", i)
			if _, err := tx.Exec(ctx, "SAVEPOINT "+sp); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, upsertBusinessSQL, upsertArgs(record, now)...); err != nil {
				_, _ = tx.Exec(ctx, "ROLLBACK TO SAVEPOINT "+sp)
				result.FailedCount++
				result.Errors = append(result.Errors, fmt.Sprintf("business %s: %v", record.BusinessID, err))
				continue
			}
			result.InsertedCount++
		}
		return nil
	})

	if err != nil {
		return result, fmt.Errorf("bulk upsert failed: %w", err)
	}

	return result, nil
}

// Get retrieves a business by ID.
func (r *BusinessRepository) Get(ctx context.Context, businessID string) (*models.FinancialRecord, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE business_id = $1`

	record, err := scanBusiness(r.db.QueryRowContext(ctx, query, strings.TrimSpace(businessID)))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", models.ErrBusinessNotFound, businessID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	return record, nil
}

// List returns a summary of every business ordered by ID.
func (r *BusinessRepository) List(ctx context.Context) ([]models.BusinessSummary, error) {
	query := `
		SELECT business_id, industry_type, annual_revenue, financial_health_score
		FROM businesses
		ORDER BY business_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query businesses: %w", err)
	}
	defer rows.Close()

	summaries := []models.BusinessSummary{}
	for rows.Next() {
		var s models.BusinessSummary
		if err := rows.Scan(&s.BusinessID, &s.IndustryType, &s.AnnualRevenue, &s.FinancialHealthScore); err != nil {
			return nil, fmt.Errorf("failed to scan business: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

// Count returns the number of stored businesses.
func (r *BusinessRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM businesses").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count businesses: %w", err)
	}
	return count, nil
}

func scanBusiness(row pgx.Row) (*models.FinancialRecord, error) {
	var rec models.FinancialRecord
	err := row.Scan(
		&rec.BusinessID,
		&rec.IndustryType,
		&rec.AnnualRevenue,
		&rec.TotalExpenses,
		&rec.CurrentAssets,
		&rec.CurrentLiabilities,
		&rec.TotalAssets,
		&rec.TotalLiabilities,
		&rec.Inventory,
		&rec.AccountsReceivable,
		&rec.CurrentRatio,
		&rec.QuickRatio,
		&rec.DebtEquityRatio,
		&rec.DSCR,
		&rec.ROCE,
		&rec.DaysInventory,
		&rec.DaysReceivables,
		&rec.DaysPayables,
		&rec.GSTComplianceStatus,
		&rec.FinancialHealthScore,
		&rec.Source,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
