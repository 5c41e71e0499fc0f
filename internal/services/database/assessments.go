package database

import (
	"context"
	"encoding/json"
	"fmt"

	"sme-financial-health/internal/models"
)

const defaultHistoryLimit = 50

// AssessmentRepository logs analysis results.
type AssessmentRepository struct {
	db *DB
}

// NewAssessmentRepository creates a new assessment repository.
func NewAssessmentRepository(db *DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// Record stores one analysis result and returns its ID.
func (r *AssessmentRepository) Record(ctx context.Context, a *models.AnalysisResult, source string) (int64, error) {
	payload, err := json.Marshal(a)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal analysis: %w", err)
	}

	query := `
		INSERT INTO assessments (business_id, health_score, risk_category, credit_score, source, analysis)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err = r.db.QueryRowContext(ctx, query,
		a.BusinessID,
		a.FinancialHealth.HealthScore,
		string(a.FinancialHealth.RiskCategory),
		a.Creditworthiness.Score,
		source,
		payload,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to record assessment: %w", err)
	}

	return id, nil
}

// History returns the most recent assessments for a business, newest first.
// A limit of zero or less uses the default.
func (r *AssessmentRepository) History(ctx context.Context, businessID string, limit int) ([]models.Assessment, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	query := `
		SELECT id, business_id, health_score, risk_category, credit_score, source, analysis, created_at
		FROM assessments
		WHERE business_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, businessID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query assessments: %w", err)
	}
	defer rows.Close()

	history := []models.Assessment{}
	for rows.Next() {
		var a models.Assessment
		var risk string
		if err := rows.Scan(&a.ID, &a.BusinessID, &a.HealthScore, &risk, &a.CreditScore, &a.Source, &a.Analysis, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assessment: %w", err)
		}
		a.RiskCategory = models.RiskCategory(risk)
		history = append(history, a)
	}

	return history, rows.Err()
}
