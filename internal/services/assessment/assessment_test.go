package assessment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sme-financial-health/internal/models"
	"sme-financial-health/internal/services/assessment"
	"sme-financial-health/internal/services/dataset"
)

type stubRecorder struct {
	calls  int
	source string
	err    error
}

func (s *stubRecorder) Record(_ context.Context, _ *models.AnalysisResult, source string) (int64, error) {
	s.calls++
	s.source = source
	return int64(s.calls), s.err
}

func testSource() *dataset.MemorySource {
	return dataset.NewMemorySource(&models.FinancialRecord{
		BusinessID:         "SME_001",
		IndustryType:       models.IndustryRetail,
		AnnualRevenue:      1_000_000,
		TotalExpenses:      800_000,
		TotalAssets:        models.Float(1_200_000),
		TotalLiabilities:   models.Float(400_000),
		CurrentAssets:      models.Float(300_000),
		CurrentLiabilities: models.Float(150_000),
		Source:             models.SourceDataset,
	})
}

func TestAssess(t *testing.T) {
	rec := &stubRecorder{}
	clock := func() time.Time { return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC) }
	svc := assessment.NewService(testSource(), rec).WithClock(clock)

	out, err := svc.Assess(context.Background(), "SME_001")
	require.NoError(t, err)

	assert.Equal(t, "SME_001", out.BusinessID)
	assert.Equal(t, 90, out.Analysis.FinancialHealth.HealthScore)
	assert.Equal(t, "2024-03-15 10:30:00", out.Analysis.AnalysisDate)
	assert.Equal(t, "2024-03-15 10:30:00", out.Recommendations.GeneratedDate)
	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, models.SourceDataset, rec.source)
}

func TestAssess_NotFound(t *testing.T) {
	svc := assessment.NewService(testSource(), nil)

	_, err := svc.Assess(context.Background(), "SME_404")
	assert.ErrorIs(t, err, models.ErrBusinessNotFound)
}

func TestAssess_RecorderFailureIsIgnored(t *testing.T) {
	rec := &stubRecorder{err: errors.New("db down")}
	svc := assessment.NewService(testSource(), rec)

	out, err := svc.Assess(context.Background(), "SME_001")
	require.NoError(t, err)
	assert.NotNil(t, out.Analysis)
	assert.Equal(t, 1, rec.calls)
}

func TestAssessRecord_Empty(t *testing.T) {
	svc := assessment.NewService(testSource(), nil)

	_, err := svc.AssessRecord(context.Background(), &models.FinancialRecord{})
	assert.ErrorIs(t, err, assessment.ErrAnalysisFailed)
}
