package recommendation

import (
	"fmt"

	"sme-financial-health/internal/models"
)

func emptyPlan() models.ActionPlan {
	return models.ActionPlan{
		Immediate:  []string{},
		ShortTerm:  []string{},
		MediumTerm: []string{},
		LongTerm:   []string{},
	}
}

// buildActionPlan returns the executive summary and plan for a health tier.
func buildActionPlan(health models.FinancialHealth) (string, models.ActionPlan) {
	plan := emptyPlan()
	score := health.HealthScore

	switch health.RiskCategory {
	case models.RiskCritical:
		plan.Immediate = []string{
			"Emergency financial review and restructuring",
			"Halt non-essential expenses immediately",
			"Reach out to lenders to discuss restructuring options",
			"Consider strategic business review",
		}
		return fmt.Sprintf("CRITICAL ALERT: Financial Health Score %d/100. Immediate intervention required.", score), plan

	case models.RiskHigh:
		plan.Immediate = []string{
			"Conduct comprehensive cost review",
			"Improve receivables collection",
			"Negotiate extended payment terms with suppliers",
		}
		plan.ShortTerm = []string{
			"Improve operational efficiency",
			"Focus on revenue growth",
			"Reduce debt obligations",
		}
		return fmt.Sprintf("WARNING: Financial Health Score %d/100. Significant improvements needed.", score), plan

	case models.RiskMedium:
		plan.ShortTerm = []string{
			"Optimize working capital management",
			"Improve profitability margins",
			"Monitor debt levels",
		}
		plan.MediumTerm = []string{
			"Plan for controlled growth",
			"Invest in process improvements",
			"Develop contingency plans",
		}
		return fmt.Sprintf("CAUTION: Financial Health Score %d/100. Monitor key metrics and implement improvements.", score), plan

	default:
		plan.MediumTerm = []string{
			"Plan strategic expansion initiatives",
			"Invest in technology and automation",
			"Explore new revenue streams",
		}
		plan.LongTerm = []string{
			"Build reserves for future uncertainties",
			"Plan for succession and sustainability",
			"Consider market expansion",
		}
		return fmt.Sprintf("POSITIVE: Financial Health Score %d/100. Maintain current trajectory with strategic growth initiatives.", score), plan
	}
}
