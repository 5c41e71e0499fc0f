package analysis

import (
	"sme-financial-health/internal/models"
)

// CalculateLiquidity derives the current and quick ratios.
// Supplied ratios win over computed ones.
func CalculateLiquidity(r *models.FinancialRecord) models.LiquidityRatios {
	var current float64
	switch {
	case r.CurrentRatio != nil:
		current = *r.CurrentRatio
	case r.CurrentAssets != nil && r.CurrentLiabilities != nil:
		current, _ = divide(*r.CurrentAssets, *r.CurrentLiabilities)
	}
	if !finite(current) {
		return models.LiquidityRatios{}
	}

	var quick float64
	switch {
	case r.QuickRatio != nil:
		quick = *r.QuickRatio
	case r.CurrentAssets != nil && r.Inventory != nil && r.CurrentLiabilities != nil && *r.CurrentLiabilities != 0:
		quick, _ = divide(*r.CurrentAssets-*r.Inventory, *r.CurrentLiabilities)
	case current != 0:
		quick = current * 0.9
	}
	if !finite(quick) {
		return models.LiquidityRatios{}
	}

	return models.LiquidityRatios{
		CurrentRatio: round(current, 2),
		QuickRatio:   round(quick, 2),
	}
}
