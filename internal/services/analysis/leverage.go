package analysis

import (
	"sme-financial-health/internal/models"
)

// CalculateLeverage derives debt/equity, debt ratio, equity multiplier and DSCR.
// A non-finite intermediate zeroes the whole group.
func CalculateLeverage(r *models.FinancialRecord) models.LeverageRatios {
	balanced := r.TotalAssets != nil && r.TotalLiabilities != nil

	var assets, liabilities float64
	if balanced {
		assets, liabilities = *r.TotalAssets, *r.TotalLiabilities
	}
	equity := assets - liabilities

	var debtEquity float64
	switch {
	case r.DebtEquityRatio != nil:
		debtEquity = *r.DebtEquityRatio
	case balanced && equity > 0:
		debtEquity, _ = divide(liabilities, equity)
	}

	var debtRatio, multiplier float64
	if balanced {
		debtRatio, _ = divide(liabilities, assets)
		multiplier, _ = divide(assets, equity)
	}

	dscr := models.Value(r.DSCR)

	for _, v := range []float64{debtEquity, debtRatio, multiplier, dscr} {
		if !finite(v) {
			return models.LeverageRatios{}
		}
	}

	return models.LeverageRatios{
		DebtEquityRatio:  round(debtEquity, 2),
		DebtRatio:        round(debtRatio, 2),
		EquityMultiplier: round(multiplier, 2),
		DSCR:             round(dscr, 2),
	}
}
