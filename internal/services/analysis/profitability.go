package analysis

import (
	"sme-financial-health/internal/models"
)

// CalculateProfitability derives net profit, margin, ROA and ROE.
// ROA and ROE each fall back to zero on their own.
func CalculateProfitability(r *models.FinancialRecord) models.ProfitabilityRatios {
	profit := r.AnnualRevenue - r.TotalExpenses

	var margin float64
	if r.AnnualRevenue > 0 {
		margin, _ = divide(profit*100, r.AnnualRevenue)
	}

	var roa float64
	switch {
	case r.TotalAssets != nil && *r.TotalAssets > 0:
		roa, _ = divide(profit*100, *r.TotalAssets)
	case r.ROCE != nil:
		roa = *r.ROCE
	}

	var roe float64
	if r.TotalAssets != nil && r.TotalLiabilities != nil {
		if equity := *r.TotalAssets - *r.TotalLiabilities; equity > 0 {
			roe, _ = divide(profit*100, equity)
		}
	}

	return models.ProfitabilityRatios{
		NetProfit:    truncate(profit),
		ProfitMargin: round(margin, 2),
		ROA:          round(roa, 2),
		ROE:          round(roe, 2),
	}
}
