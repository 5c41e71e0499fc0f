package recommendation_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sme-financial-health/internal/models"
	"sme-financial-health/internal/services/analysis"
	"sme-financial-health/internal/services/recommendation"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
}

func healthyRecord() *models.FinancialRecord {
	return &models.FinancialRecord{
		BusinessID:          "SME_001",
		IndustryType:        models.IndustryRetail,
		AnnualRevenue:       1_000_000,
		TotalExpenses:       800_000,
		TotalAssets:         models.Float(1_200_000),
		TotalLiabilities:    models.Float(400_000),
		CurrentAssets:       models.Float(300_000),
		CurrentLiabilities:  models.Float(150_000),
		GSTComplianceStatus: models.GSTCompliant,
	}
}

func analysisWithScore(score int, revenue int64) *models.AnalysisResult {
	return &models.AnalysisResult{
		FinancialMetrics: models.FinancialMetrics{AnnualRevenue: revenue},
		Creditworthiness: models.Creditworthiness{Score: score},
		FinancialHealth:  analysis.ClassifyHealth(score),
	}
}

func productNames(products []models.ProductRecommendation) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Product)
	}
	return names
}

func TestGenerate_HealthyBusiness(t *testing.T) {
	r := healthyRecord()
	a := analysis.NewAnalyzerWithClock(fixedClock).Analyze(r)
	require.NotNil(t, a)

	result := recommendation.NewEngineWithClock(fixedClock).Generate(r, a)

	assert.Equal(t, "SME_001", result.BusinessID)
	assert.Equal(t, "2024-03-15 10:30:00", result.GeneratedDate)
	assert.Equal(t, "POSITIVE: Financial Health Score 90/100. Maintain current trajectory with strategic growth initiatives.", result.ExecutiveSummary)

	require.NotNil(t, result.CashFlowAnalysis)
	assert.Empty(t, result.CashFlowAnalysis.Issues)
	assert.Equal(t, []string{"Strong cash flow position maintained"}, result.CashFlowAnalysis.Opportunities)

	assert.Empty(t, result.DebtAnalysis)
	assert.Empty(t, result.CostOptimization)
	assert.Len(t, result.FinancialProducts, 6)
	for _, p := range result.FinancialProducts {
		assert.Equal(t, "High", p.Recommended)
		assert.Equal(t, "Eligible", p.Eligibility)
	}
	assert.Equal(t, int64(300_000), result.FinancialProducts[0].EstimatedLoanAmount)

	require.NotNil(t, result.IndustryRisks)
	assert.Equal(t, "Retail", result.IndustryRisks.Industry)
	assert.Len(t, result.IndustryRisks.IdentifiedRisks, 4)
	assert.True(t, result.IndustryRisks.MitigationSuggested)

	require.Len(t, result.TaxCompliance, 2)
	assert.Equal(t, models.PriorityLow, result.TaxCompliance[0].Priority)
	assert.Equal(t, "Income Tax", result.TaxCompliance[1].ComplianceArea)

	assert.Empty(t, result.ActionPlan.Immediate)
	assert.Empty(t, result.ActionPlan.ShortTerm)
	assert.Len(t, result.ActionPlan.MediumTerm, 3)
	assert.Len(t, result.ActionPlan.LongTerm, 3)
}

func TestGenerate_EmptyRecord(t *testing.T) {
	engine := recommendation.NewEngine()

	for _, r := range []*models.FinancialRecord{nil, {}} {
		result := engine.Generate(r, nil)
		assert.Equal(t, recommendation.InsufficientDataSummary, result.ExecutiveSummary)
		assert.True(t, result.InsufficientData())
		assert.Empty(t, result.FinancialProducts)
	}
}

func TestGenerate_WithoutAnalysis(t *testing.T) {
	result := recommendation.NewEngine().Generate(healthyRecord(), nil)

	assert.False(t, result.InsufficientData())
	assert.Empty(t, result.ExecutiveSummary)
	assert.Empty(t, result.CostOptimization)
	assert.Empty(t, result.FinancialProducts)
	assert.NotEmpty(t, result.TaxCompliance)
}

func TestGenerate_EmptyBucketsSerializeAsArrays(t *testing.T) {
	result := recommendation.NewEngine().Generate(healthyRecord(), nil)

	data, err := json.Marshal(result.ActionPlan)
	require.NoError(t, err)
	assert.JSONEq(t, `{"immediate":[],"short_term":[],"medium_term":[],"long_term":[]}`, string(data))
}

func TestRecommendProducts_ScoreFifty(t *testing.T) {
	products := recommendation.RecommendProducts(analysisWithScore(50, 2_000_000))

	names := productNames(products)
	assert.Contains(t, names, "Working Capital Loan")
	assert.Contains(t, names, "Invoice Discounting")
	assert.Contains(t, names, "Business Credit Card")
	assert.NotContains(t, names, "Term Loan")
	assert.NotContains(t, names, "Equipment Financing")
	assert.NotContains(t, names, "Trade Credit")

	for _, p := range products {
		assert.Equal(t, "Medium", p.Recommended)
	}
	assert.Equal(t, int64(600_000), products[0].EstimatedLoanAmount)
}

func TestRecommendProducts_BelowAllThresholds(t *testing.T) {
	assert.Empty(t, recommendation.RecommendProducts(analysisWithScore(40, 1_000_000)))
}

func TestRecommendProducts_KeepsCatalogOrder(t *testing.T) {
	products := recommendation.RecommendProducts(analysisWithScore(75, 1_000_000))

	catalog := recommendation.Products()
	require.Len(t, products, len(catalog))
	for i, p := range catalog {
		assert.Equal(t, p.Name, products[i].Product)
	}
}

func TestGenerate_CashFlowIssues(t *testing.T) {
	engine := recommendation.NewEngine()

	t.Run("loss", func(t *testing.T) {
		r := &models.FinancialRecord{BusinessID: "SME_LOSS", AnnualRevenue: 100_000, TotalExpenses: 125_000}
		result := engine.Generate(r, nil)
		require.Len(t, result.CashFlowAnalysis.Issues, 1)
		issue := result.CashFlowAnalysis.Issues[0]
		assert.Equal(t, models.PriorityCritical, issue.Severity)
		assert.Equal(t, "Negative Cash Flow", issue.Issue)
		assert.Equal(t, "Business is operating at a loss (-25.0%)", issue.Detail)
	})

	t.Run("thin margin", func(t *testing.T) {
		r := &models.FinancialRecord{BusinessID: "SME_THIN", AnnualRevenue: 100_000, TotalExpenses: 97_000}
		result := engine.Generate(r, nil)
		require.Len(t, result.CashFlowAnalysis.Issues, 1)
		assert.Equal(t, "Low Cash Flow Margin", result.CashFlowAnalysis.Issues[0].Issue)
		assert.Equal(t, "Minimal profit margins (3.0%)", result.CashFlowAnalysis.Issues[0].Detail)
		assert.Empty(t, result.CashFlowAnalysis.Opportunities)
	})
}

func TestGenerate_DebtNotes(t *testing.T) {
	tests := []struct {
		dscr     float64
		priority string
		title    string
		detail   string
	}{
		{0.85, models.PriorityCritical, "Debt Repayment Concern", "DSCR is 0.85 - Unable to service debt from current earnings"},
		{1.1, models.PriorityHigh, "Limited Borrowing Capacity", "DSCR is 1.10 - Limited room for additional debt"},
		{1.25, models.PriorityLow, "Healthy Debt Servicing", "DSCR is 1.25 - Adequate capacity for debt obligations"},
	}

	for _, tt := range tests {
		r := healthyRecord()
		r.DSCR = models.Float(tt.dscr)

		notes := recommendation.NewEngine().Generate(r, nil).DebtAnalysis
		require.Len(t, notes, 1)
		assert.Equal(t, tt.priority, notes[0].Priority)
		assert.Equal(t, tt.title, notes[0].Recommendation)
		assert.Equal(t, tt.detail, notes[0].Detail)
	}
}

func TestGenerate_CostOptimization(t *testing.T) {
	r := &models.FinancialRecord{
		BusinessID:         "SME_COST",
		AnnualRevenue:      1_000_000,
		TotalExpenses:      900_000,
		CurrentAssets:      models.Float(600_000),
		CurrentLiabilities: models.Float(100_000),
	}

	result := recommendation.NewEngine().Generate(r, analysisWithScore(55, 1_000_000))
	require.Len(t, result.CostOptimization, 2)

	expense := result.CostOptimization[0]
	assert.Equal(t, "Expense Management", expense.Category)
	assert.Equal(t, "Expenses are 90.0% of revenue", expense.Detail)
	assert.Equal(t, "Reduce expenses by ₹90,000 (10%)", expense.TargetSaving)
	assert.Equal(t, int64(90_000), expense.Amount)
	assert.Len(t, expense.ActionItems, 4)

	wc := result.CostOptimization[1]
	assert.Equal(t, "Excess Working Capital", wc.Title)
	assert.Equal(t, "Potential cash release of ₹400,000", wc.Opportunity)
	assert.Equal(t, int64(400_000), wc.Amount)
}

func TestGenerate_TaxCompliance(t *testing.T) {
	tests := map[string]string{
		models.GSTNonCompliant: models.PriorityCritical,
		models.GSTDelayed:      models.PriorityHigh,
		models.GSTCompliant:    models.PriorityLow,
		"":                     models.PriorityLow,
	}

	for status, priority := range tests {
		r := healthyRecord()
		r.GSTComplianceStatus = status

		notes := recommendation.NewEngine().Generate(r, nil).TaxCompliance
		require.Len(t, notes, 2)
		assert.Equal(t, priority, notes[0].Priority, "status %q", status)
		assert.Equal(t, models.PriorityMedium, notes[1].Priority)
	}
}

func TestGenerate_UnknownIndustryHasNoRisks(t *testing.T) {
	r := healthyRecord()
	r.IndustryType = "Mining"

	risks := recommendation.NewEngine().Generate(r, nil).IndustryRisks
	require.NotNil(t, risks)
	assert.Equal(t, "Mining", risks.Industry)
	assert.Empty(t, risks.IdentifiedRisks)
}

func TestGenerate_ActionPlanTiers(t *testing.T) {
	tests := []struct {
		score   int
		prefix  string
		buckets [4]int
	}{
		{30, "CRITICAL ALERT: Financial Health Score 30/100.", [4]int{4, 0, 0, 0}},
		{45, "WARNING: Financial Health Score 45/100.", [4]int{3, 3, 0, 0}},
		{65, "CAUTION: Financial Health Score 65/100.", [4]int{0, 3, 3, 0}},
		{85, "POSITIVE: Financial Health Score 85/100.", [4]int{0, 0, 3, 3}},
	}

	for _, tt := range tests {
		result := recommendation.NewEngine().Generate(healthyRecord(), analysisWithScore(tt.score, 1_000_000))
		assert.Contains(t, result.ExecutiveSummary, tt.prefix)

		plan := result.ActionPlan
		assert.Equal(t, tt.buckets, [4]int{len(plan.Immediate), len(plan.ShortTerm), len(plan.MediumTerm), len(plan.LongTerm)}, "score %d", tt.score)
	}
}

func TestFormatRupees(t *testing.T) {
	assert.Equal(t, "₹1,234,567", recommendation.FormatRupees(1_234_567))
	assert.Equal(t, "₹0", recommendation.FormatRupees(0))
	assert.Equal(t, "₹-5,000", recommendation.FormatRupees(-5000))
}
