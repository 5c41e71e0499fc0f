// Package assessment runs the analysis pipeline for one business: lookup,
// ratio analysis, recommendations and the best-effort assessment log.
package assessment

import (
	"context"
	"errors"
	"time"

	"sme-financial-health/internal/models"
	"sme-financial-health/internal/services/analysis"
	"sme-financial-health/internal/services/dataset"
	"sme-financial-health/internal/services/recommendation"
	"sme-financial-health/internal/utils"
)

// ErrAnalysisFailed is returned when a record yields no analysis.
var ErrAnalysisFailed = errors.New("failed to perform analysis")

// Recorder persists analysis results. Failures never fail an assessment.
type Recorder interface {
	Record(ctx context.Context, a *models.AnalysisResult, source string) (int64, error)
}

// Outcome is the full result for one business.
type Outcome struct {
	Record          *models.FinancialRecord      `json:"-"`
	BusinessID      string                       `json:"business_id"`
	Analysis        *models.AnalysisResult       `json:"analysis"`
	Recommendations *models.RecommendationResult `json:"recommendations"`
}

// Service runs assessments against a dataset.
type Service struct {
	source   dataset.Source
	analyzer *analysis.Analyzer
	engine   *recommendation.Engine
	recorder Recorder
}

// NewService creates an assessment service. recorder may be nil.
func NewService(source dataset.Source, recorder Recorder) *Service {
	return &Service{
		source:   source,
		analyzer: analysis.NewAnalyzer(),
		engine:   recommendation.NewEngine(),
		recorder: recorder,
	}
}

// WithClock makes analysis and recommendation dates come from now.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.analyzer = analysis.NewAnalyzerWithClock(now)
	s.engine = recommendation.NewEngineWithClock(now)
	return s
}

// Source returns the dataset the service reads from.
func (s *Service) Source() dataset.Source {
	return s.source
}

// Assess looks up businessID and analyzes it.
func (s *Service) Assess(ctx context.Context, businessID string) (*Outcome, error) {
	record, err := s.source.Get(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return s.AssessRecord(ctx, record)
}

// AssessRecord analyzes a record that is already loaded.
func (s *Service) AssessRecord(ctx context.Context, record *models.FinancialRecord) (*Outcome, error) {
	start := time.Now()

	result := s.analyzer.Analyze(record)
	if result == nil {
		return nil, ErrAnalysisFailed
	}
	recs := s.engine.Generate(record, result)

	logger := utils.ForBusiness(result.BusinessID)
	logger.Info("Business assessed",
		utils.Int("score", result.FinancialHealth.HealthScore),
		utils.String("risk", string(result.FinancialHealth.RiskCategory)),
		utils.Duration("duration", time.Since(start)),
	)

	if s.recorder != nil {
		if _, err := s.recorder.Record(ctx, result, record.Source); err != nil {
			logger.Warn("Failed to record assessment", utils.Error(err))
		}
	}

	return &Outcome{
		Record:          record,
		BusinessID:      result.BusinessID,
		Analysis:        result,
		Recommendations: recs,
	}, nil
}
