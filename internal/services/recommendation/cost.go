package recommendation

import (
	"fmt"

	"sme-financial-health/internal/models"
)

const (
	expenseRatioAlert     = 0.85
	excessWorkingCapital  = 2.5
	expenseSavingsPercent = 0.10
)

func recommendCostOptimization(r *models.FinancialRecord) []models.CostSuggestion {
	suggestions := []models.CostSuggestion{}

	var expenseRatio float64
	if r.AnnualRevenue > 0 {
		expenseRatio = r.TotalExpenses / r.AnnualRevenue
	}

	if expenseRatio > expenseRatioAlert {
		savings := int64(r.TotalExpenses * expenseSavingsPercent)
		suggestions = append(suggestions, models.CostSuggestion{
			Category:     "Expense Management",
			Title:        "High Expense Ratio Alert",
			Detail:       fmt.Sprintf("Expenses are %.1f%% of revenue", expenseRatio*100),
			TargetSaving: fmt.Sprintf("Reduce expenses by %s (10%%)", FormatRupees(savings)),
			Amount:       savings,
			ActionItems: []string{
				"Review and negotiate supplier contracts",
				"Optimize staffing levels",
				"Consolidate service providers",
				"Reduce overhead expenses",
			},
		})
	}

	if r.CurrentAssets != nil && r.CurrentLiabilities != nil {
		ca, cl := *r.CurrentAssets, *r.CurrentLiabilities
		if denom := cl + 1; denom != 0 && ca/denom > excessWorkingCapital {
			excess := int64(ca - 2*cl)
			suggestions = append(suggestions, models.CostSuggestion{
				Category:    "Working Capital",
				Title:       "Excess Working Capital",
				Detail:      "Current assets significantly exceed operational needs",
				Opportunity: fmt.Sprintf("Potential cash release of %s", FormatRupees(excess)),
				Amount:      excess,
				ActionItems: []string{
					"Optimize inventory levels",
					"Accelerate receivables collection",
					"Negotiate extended payables terms",
					"Deploy excess cash in growth initiatives",
				},
			})
		}
	}

	return suggestions
}
