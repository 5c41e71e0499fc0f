package analysis

import (
	"sme-financial-health/internal/models"
)

// Last-resort day counts for the cash conversion cycle.
const (
	defaultDaysInventory   = 45
	defaultDaysReceivables = 30
	defaultDaysPayables    = 25
)

// CalculateWorkingCapital derives working capital figures. Day counts for the
// cash conversion cycle come from eff when positive, then from the record,
// then from the defaults.
func CalculateWorkingCapital(r *models.FinancialRecord, eff models.EfficiencyRatios) models.WorkingCapital {
	wc := models.Value(r.CurrentAssets) - models.Value(r.CurrentLiabilities)

	var ratio float64
	if r.AnnualRevenue != 0 {
		ratio, _ = divide(wc, r.AnnualRevenue)
	}

	daysInventory := resolveDays(eff.DaysInventory, r.DaysInventory, defaultDaysInventory)
	daysReceivables := resolveDays(eff.DaysReceivables, r.DaysReceivables, defaultDaysReceivables)
	daysPayables := resolveDays(0, r.DaysPayables, defaultDaysPayables)

	return models.WorkingCapital{
		WorkingCapital:      truncate(wc),
		WorkingCapitalRatio: round(ratio, 3),
		CashConversionCycle: truncate(daysInventory + daysReceivables - daysPayables),
		OperatingCashFlow:   truncate(r.AnnualRevenue * 0.15),
	}
}

func resolveDays(computed int, supplied *float64, fallback float64) float64 {
	if computed > 0 {
		return float64(computed)
	}
	if supplied != nil && finite(*supplied) {
		return *supplied
	}
	return fallback
}
