// Package recommendation turns an analysis into prioritized findings,
// eligible financial products and a time-boxed action plan.
package recommendation

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"sme-financial-health/internal/models"
)

// InsufficientDataSummary is the summary returned for an empty record.
const InsufficientDataSummary = "Unable to generate recommendations - insufficient data"

const dateLayout = "2006-01-02 15:04:05"

// Engine assembles recommendation results.
type Engine struct {
	now func() time.Time
}

// NewEngine creates a recommendation engine stamped with the wall clock.
func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// NewEngineWithClock creates an engine with a fixed time source.
func NewEngineWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Generate derives recommendations from the record and its analysis. A nil
// analysis leaves the score-driven sections empty.
func (e *Engine) Generate(r *models.FinancialRecord, analysis *models.AnalysisResult) *models.RecommendationResult {
	result := &models.RecommendationResult{
		DebtAnalysis:      []models.DebtNote{},
		CostOptimization:  []models.CostSuggestion{},
		FinancialProducts: []models.ProductRecommendation{},
		TaxCompliance:     []models.ComplianceNote{},
		ActionPlan:        emptyPlan(),
	}

	if r.IsEmpty() {
		result.ExecutiveSummary = InsufficientDataSummary
		return result
	}

	result.GeneratedDate = e.now().Format(dateLayout)
	result.BusinessID = r.BusinessID
	result.CashFlowAnalysis = analyzeCashFlow(r)
	result.DebtAnalysis = analyzeDebt(r)
	result.IndustryRisks = assessIndustryRisks(r)
	result.TaxCompliance = assessTaxCompliance(r)

	if analysis != nil {
		result.CostOptimization = recommendCostOptimization(r)
		result.FinancialProducts = RecommendProducts(analysis)
		result.ExecutiveSummary, result.ActionPlan = buildActionPlan(analysis.FinancialHealth)
	}

	return result
}

// FormatRupees renders a whole-rupee amount with thousands separators.
func FormatRupees(amount int64) string {
	return fmt.Sprintf("₹%s", humanize.Comma(amount))
}
