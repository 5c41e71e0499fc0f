package analysis

import (
	"sme-financial-health/internal/models"
)

const daysPerYear = 365

// CalculateEfficiency derives turnover ratios and day counts.
// Receivables default to 20% of revenue and inventory to 15% of expenses.
func CalculateEfficiency(r *models.FinancialRecord) models.EfficiencyRatios {
	assetTurnover, _ := divide(r.AnnualRevenue, models.Value(r.TotalAssets)+1)

	receivables := r.AnnualRevenue * 0.2
	if r.AccountsReceivable != nil {
		receivables = *r.AccountsReceivable
	}
	receivablesTurnover, _ := divide(r.AnnualRevenue, receivables+1)

	inventory := r.TotalExpenses * 0.15
	if r.Inventory != nil {
		inventory = *r.Inventory
	}
	inventoryTurnover, _ := divide(r.TotalExpenses, inventory+1)

	return models.EfficiencyRatios{
		AssetTurnover:       round(assetTurnover, 2),
		ReceivablesTurnover: round(receivablesTurnover, 2),
		InventoryTurnover:   round(inventoryTurnover, 2),
		DaysInventory:       daysFromTurnover(inventoryTurnover),
		DaysReceivables:     daysFromTurnover(receivablesTurnover),
	}
}

func daysFromTurnover(turnover float64) int {
	if turnover <= 0 {
		return 0
	}
	days, ok := divide(daysPerYear, turnover)
	if !ok {
		return 0
	}
	return roundInt(days)
}
