package recommendation

import (
	"fmt"

	"sme-financial-health/internal/models"
)

const lowMarginThreshold = 0.05

func analyzeCashFlow(r *models.FinancialRecord) *models.CashFlowAnalysis {
	result := &models.CashFlowAnalysis{
		Issues:        []models.CashFlowIssue{},
		Opportunities: []string{},
	}

	var margin float64
	if r.AnnualRevenue > 0 {
		margin = (r.AnnualRevenue - r.TotalExpenses) / r.AnnualRevenue
	}

	switch {
	case margin < 0:
		result.Issues = append(result.Issues, models.CashFlowIssue{
			Severity: models.PriorityCritical,
			Issue:    "Negative Cash Flow",
			Detail:   fmt.Sprintf("Business is operating at a loss (%.1f%%)", margin*100),
			Action:   "Urgent: Reduce operational expenses or increase revenue",
		})
	case margin < lowMarginThreshold:
		result.Issues = append(result.Issues, models.CashFlowIssue{
			Severity: models.PriorityHigh,
			Issue:    "Low Cash Flow Margin",
			Detail:   fmt.Sprintf("Minimal profit margins (%.1f%%)", margin*100),
			Action:   "Focus on improving operational efficiency",
		})
	default:
		result.Opportunities = append(result.Opportunities, "Strong cash flow position maintained")
	}

	return result
}

// analyzeDebt only reports when the record carries a DSCR.
func analyzeDebt(r *models.FinancialRecord) []models.DebtNote {
	notes := []models.DebtNote{}
	if r.DSCR == nil {
		return notes
	}
	dscr := *r.DSCR

	switch {
	case dscr < 1.0:
		notes = append(notes, models.DebtNote{
			Priority:       models.PriorityCritical,
			Recommendation: "Debt Repayment Concern",
			Detail:         fmt.Sprintf("DSCR is %.2f - Unable to service debt from current earnings", dscr),
			Action:         "Refinance existing debt or reduce obligations",
			DSCR:           dscr,
		})
	case dscr < 1.25:
		notes = append(notes, models.DebtNote{
			Priority:       models.PriorityHigh,
			Recommendation: "Limited Borrowing Capacity",
			Detail:         fmt.Sprintf("DSCR is %.2f - Limited room for additional debt", dscr),
			Action:         "Avoid new borrowing until cash flow improves",
			DSCR:           dscr,
		})
	default:
		notes = append(notes, models.DebtNote{
			Priority:       models.PriorityLow,
			Recommendation: "Healthy Debt Servicing",
			Detail:         fmt.Sprintf("DSCR is %.2f - Adequate capacity for debt obligations", dscr),
			Action:         "Maintain current debt management strategy",
			DSCR:           dscr,
		})
	}

	return notes
}
