package analysis_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"sme-financial-health/internal/models"
	"sme-financial-health/internal/services/analysis"
)

func TestClassifyHealth_Boundaries(t *testing.T) {
	tests := []struct {
		score    int
		expected models.RiskCategory
	}{
		{100, models.RiskLow},
		{80, models.RiskLow},
		{79, models.RiskMedium},
		{60, models.RiskMedium},
		{59, models.RiskHigh},
		{40, models.RiskHigh},
		{39, models.RiskCritical},
		{25, models.RiskCritical},
		{0, models.RiskCritical},
	}

	for _, tt := range tests {
		got := analysis.ClassifyHealth(tt.score)
		assert.Equal(t, tt.expected, got.RiskCategory, "score %d", tt.score)
		assert.Equal(t, tt.score, got.HealthScore)
	}
}

func TestScoreCreditworthiness_Tiers(t *testing.T) {
	tests := []struct {
		name     string
		in       analysis.ScoreInputs
		expected int
		notes    []string
	}{
		{
			name:     "all strongest",
			in:       analysis.ScoreInputs{CurrentRatio: 2.0, DebtEquityRatio: 1.0, ProfitMargin: 15, ROE: 20, DSCR: models.Float(1.5)},
			expected: 100,
		},
		{
			name:     "all second tier",
			in:       analysis.ScoreInputs{CurrentRatio: 1.5, DebtEquityRatio: 1.5, ProfitMargin: 10, ROE: 15, DSCR: models.Float(1.2)},
			expected: 75,
		},
		{
			name:     "all third tier",
			in:       analysis.ScoreInputs{CurrentRatio: 1.0, DebtEquityRatio: 2.0, ProfitMargin: 5, ROE: 5, DSCR: models.Float(1.0)},
			expected: 50,
		},
		{
			name:     "all weakest",
			in:       analysis.ScoreInputs{CurrentRatio: 0.99, DebtEquityRatio: 2.01, ProfitMargin: 4.99, ROE: -3, DSCR: models.Float(0.5)},
			expected: 25,
			notes: []string{
				"Low current ratio - Potential liquidity concerns",
				"Very high debt-equity ratio - Risk of over-leverage",
				"Low profit margin - Profitability concerns",
				"Low DSCR - Debt servicing concerns",
				"Low ROE - Limited returns",
			},
		},
		{
			name:     "missing dscr scores as adequate",
			in:       analysis.ScoreInputs{CurrentRatio: 2.5, DebtEquityRatio: 0.2, ProfitMargin: 30, ROE: 40},
			expected: 90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analysis.ScoreCreditworthiness(tt.in)
			assert.Equal(t, tt.expected, got.Score)
			assert.Len(t, got.Assessment, 5)
			if tt.notes != nil {
				assert.Equal(t, tt.notes, got.Assessment)
			}
		})
	}
}

func TestScoreCreditworthiness_ScoreAlwaysInRubricSet(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	allowed := map[int]bool{}
	for s := 25; s <= 100; s += 5 {
		allowed[s] = true
	}

	for i := 0; i < 2000; i++ {
		dscr := rng.Float64()*3 - 0.5
		in := analysis.ScoreInputs{
			CurrentRatio:    rng.Float64()*4 - 1,
			DebtEquityRatio: rng.Float64() * 4,
			ProfitMargin:    rng.Float64()*60 - 20,
			ROE:             rng.Float64()*60 - 20,
		}
		if i%3 != 0 {
			in.DSCR = &dscr
		}

		got := analysis.ScoreCreditworthiness(in)
		assert.True(t, allowed[got.Score], "score %d outside rubric set", got.Score)
		assert.True(t, analysis.ClassifyHealth(got.Score).RiskCategory.IsValid())
	}
}

func TestBenchmarksFor_ReturnsCopy(t *testing.T) {
	b := analysis.BenchmarksFor(models.IndustryRetail)
	b.CurrentRatio = 99

	assert.Equal(t, 1.5, analysis.BenchmarksFor(models.IndustryRetail).CurrentRatio)
	assert.Equal(t, analysis.BenchmarksFor(models.IndustryServices), analysis.BenchmarksFor("Mining"))
	assert.Len(t, analysis.KnownIndustries(), 6)
}
