package models

import (
	"encoding/json"
	"time"
)

// Assessment is one logged analysis of a business.
type Assessment struct {
	ID           int64           `json:"id"`
	BusinessID   string          `json:"business_id"`
	HealthScore  int             `json:"health_score"`
	RiskCategory RiskCategory    `json:"risk_category"`
	CreditScore  int             `json:"creditworthiness_score"`
	Source       string          `json:"source"`
	Analysis     json.RawMessage `json:"analysis,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// BulkInsertResult contains the results of a bulk insert operation.
type BulkInsertResult struct {
	InsertedCount int      `json:"inserted_count"`
	FailedCount   int      `json:"failed_count"`
	Errors        []string `json:"errors,omitempty"`
}
