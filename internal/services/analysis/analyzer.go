package analysis

import (
	"time"

	"sme-financial-health/internal/models"
)

// DateLayout is the timestamp format used in results.
const DateLayout = "2006-01-02 15:04:05"

// Analyzer runs the full ratio and scoring pipeline over one record.
type Analyzer struct {
	now func() time.Time
}

// NewAnalyzer creates an analyzer stamped with the wall clock.
func NewAnalyzer() *Analyzer {
	return &Analyzer{now: time.Now}
}

// NewAnalyzerWithClock creates an analyzer with a fixed time source.
func NewAnalyzerWithClock(now func() time.Time) *Analyzer {
	return &Analyzer{now: now}
}

// Analyze computes the analysis result for r. It returns nil for a nil or
// empty record so callers can render a not-found response.
func (a *Analyzer) Analyze(r *models.FinancialRecord) *models.AnalysisResult {
	if r.IsEmpty() {
		return nil
	}

	liquidity := CalculateLiquidity(r)
	profitability := CalculateProfitability(r)
	leverage := CalculateLeverage(r)
	efficiency := CalculateEfficiency(r)
	workingCapital := CalculateWorkingCapital(r, efficiency)

	credit := ScoreCreditworthiness(ScoreInputs{
		CurrentRatio:    liquidity.CurrentRatio,
		DebtEquityRatio: leverage.DebtEquityRatio,
		ProfitMargin:    profitability.ProfitMargin,
		ROE:             profitability.ROE,
		DSCR:            r.DSCR,
	})

	totalAssets := models.Value(r.TotalAssets)
	totalLiabilities := models.Value(r.TotalLiabilities)

	return &models.AnalysisResult{
		BusinessID:   r.BusinessID,
		IndustryType: r.Industry(),
		AnalysisDate: a.now().Format(DateLayout),
		FinancialMetrics: models.FinancialMetrics{
			AnnualRevenue:      truncate(r.AnnualRevenue),
			TotalExpenses:      truncate(r.TotalExpenses),
			NetProfit:          profitability.NetProfit,
			TotalAssets:        truncate(totalAssets),
			TotalLiabilities:   truncate(totalLiabilities),
			Equity:             truncate(totalAssets - totalLiabilities),
			CurrentAssets:      truncate(models.Value(r.CurrentAssets)),
			CurrentLiabilities: truncate(models.Value(r.CurrentLiabilities)),
		},
		LiquidityRatios:     liquidity,
		ProfitabilityRatios: profitability,
		LeverageRatios:      leverage,
		EfficiencyRatios:    efficiency,
		WorkingCapital:      workingCapital,
		Creditworthiness:    credit,
		FinancialHealth:     ClassifyHealth(credit.Score),
		GSTCompliance:       r.GSTStatus(),
		IndustryBenchmarks:  BenchmarksFor(r.IndustryType),
	}
}
