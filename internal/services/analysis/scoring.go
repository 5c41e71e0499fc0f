package analysis

import (
	"sme-financial-health/internal/models"
)

// defaultDSCR is assumed for scoring when the record carries no DSCR.
const defaultDSCR = 1.0

// ScoreInputs are the ratios the creditworthiness rubric reads.
type ScoreInputs struct {
	CurrentRatio    float64
	DebtEquityRatio float64
	ProfitMargin    float64
	ROE             float64
	DSCR            *float64
}

// tier is one step of a factor's rubric.
type tier struct {
	threshold float64
	points    int
	note      string
}

// factor scores one ratio against descending tiers. lowerIsBetter flips the
// comparison for leverage. The last tier always matches.
type factor struct {
	lowerIsBetter bool
	tiers         [4]tier
}

func (f factor) score(v float64) (int, string) {
	for _, t := range f.tiers[:3] {
		if (!f.lowerIsBetter && v >= t.threshold) || (f.lowerIsBetter && v <= t.threshold) {
			return t.points, t.note
		}
	}
	last := f.tiers[3]
	return last.points, last.note
}

var (
	currentRatioFactor = factor{tiers: [4]tier{
		{2.0, 20, "Strong current ratio - Excellent short-term liquidity"},
		{1.5, 15, "Good current ratio - Adequate short-term liquidity"},
		{1.0, 10, "Moderate current ratio - Acceptable liquidity"},
		{0, 5, "Low current ratio - Potential liquidity concerns"},
	}}

	debtEquityFactor = factor{lowerIsBetter: true, tiers: [4]tier{
		{1.0, 20, "Healthy debt-equity ratio - Conservative leverage"},
		{1.5, 15, "Moderate debt-equity ratio - Acceptable leverage"},
		{2.0, 10, "High debt-equity ratio - Watch leverage levels"},
		{0, 5, "Very high debt-equity ratio - Risk of over-leverage"},
	}}

	profitMarginFactor = factor{tiers: [4]tier{
		{15, 20, "Excellent profit margin - Strong profitability"},
		{10, 15, "Good profit margin - Healthy profitability"},
		{5, 10, "Moderate profit margin - Acceptable profitability"},
		{0, 5, "Low profit margin - Profitability concerns"},
	}}

	dscrFactor = factor{tiers: [4]tier{
		{1.5, 20, "Strong DSCR - Excellent debt servicing ability"},
		{1.2, 15, "Good DSCR - Healthy debt servicing"},
		{1.0, 10, "Adequate DSCR - Acceptable debt servicing"},
		{0, 5, "Low DSCR - Debt servicing concerns"},
	}}

	roeFactor = factor{tiers: [4]tier{
		{20, 20, "Excellent ROE - Strong shareholder returns"},
		{15, 15, "Good ROE - Healthy returns"},
		{5, 10, "Moderate ROE - Acceptable returns"},
		{0, 5, "Low ROE - Limited returns"},
	}}
)

// ScoreCreditworthiness applies the five-factor rubric. The score is the sum
// of five values from {5,10,15,20}; the assessment holds one note per factor
// in a fixed order.
func ScoreCreditworthiness(in ScoreInputs) models.Creditworthiness {
	dscr := defaultDSCR
	if in.DSCR != nil {
		dscr = *in.DSCR
	}

	checks := []struct {
		f factor
		v float64
	}{
		{currentRatioFactor, in.CurrentRatio},
		{debtEquityFactor, in.DebtEquityRatio},
		{profitMarginFactor, in.ProfitMargin},
		{dscrFactor, dscr},
		{roeFactor, in.ROE},
	}

	result := models.Creditworthiness{Assessment: make([]string, 0, len(checks))}
	for _, c := range checks {
		points, note := c.f.score(c.v)
		result.Score += points
		result.Assessment = append(result.Assessment, note)
	}
	return result
}

// ClassifyHealth maps a score to its risk tier.
func ClassifyHealth(score int) models.FinancialHealth {
	category := models.RiskCritical
	switch {
	case score >= 80:
		category = models.RiskLow
	case score >= 60:
		category = models.RiskMedium
	case score >= 40:
		category = models.RiskHigh
	}
	return models.FinancialHealth{HealthScore: score, RiskCategory: category}
}
