package models

// Priority levels shared by findings and compliance notes.
const (
	PriorityCritical = "Critical"
	PriorityHigh     = "High"
	PriorityMedium   = "Medium"
	PriorityLow      = "Low"
)

// CashFlowIssue is a problem found in the revenue/expense margin.
type CashFlowIssue struct {
	Severity string `json:"severity"`
	Issue    string `json:"issue"`
	Detail   string `json:"detail"`
	Action   string `json:"action"`
}

type CashFlowAnalysis struct {
	Issues        []CashFlowIssue `json:"issues"`
	Opportunities []string        `json:"opportunities"`
}

// DebtNote describes debt servicing capacity from DSCR.
type DebtNote struct {
	Priority       string  `json:"priority"`
	Recommendation string  `json:"recommendation"`
	Detail         string  `json:"detail"`
	Action         string  `json:"action"`
	DSCR           float64 `json:"dscr"`
}

// CostSuggestion is one cost optimization finding.
type CostSuggestion struct {
	Category     string   `json:"category"`
	Title        string   `json:"title"`
	Detail       string   `json:"detail"`
	TargetSaving string   `json:"target_saving,omitempty"`
	Opportunity  string   `json:"opportunity,omitempty"`
	Amount       int64    `json:"amount"`
	ActionItems  []string `json:"action_items"`
}

// ProductRecommendation is a financial product the business qualifies for.
type ProductRecommendation struct {
	Product             string `json:"product"`
	Eligibility         string `json:"eligibility"`
	EstimatedLoanAmount int64  `json:"estimated_loan_amount"`
	InterestRateRange   string `json:"interest_rate_range"`
	Tenure              string `json:"tenure"`
	Description         string `json:"description"`
	Recommended         string `json:"recommended"`
}

type IndustryRisks struct {
	Industry            string   `json:"industry"`
	IdentifiedRisks     []string `json:"identified_risks"`
	MitigationSuggested bool     `json:"mitigation_suggested"`
}

type ComplianceNote struct {
	ComplianceArea string `json:"compliance_area"`
	Status         string `json:"status"`
	Priority       string `json:"priority"`
	Action         string `json:"action"`
	Benefit        string `json:"benefit"`
}

// ActionPlan groups actions by time horizon. Empty buckets are non-nil.
type ActionPlan struct {
	Immediate  []string `json:"immediate"`
	ShortTerm  []string `json:"short_term"`
	MediumTerm []string `json:"medium_term"`
	LongTerm   []string `json:"long_term"`
}

// RecommendationResult is everything the recommendation engine derives.
type RecommendationResult struct {
	ExecutiveSummary  string                  `json:"executive_summary"`
	GeneratedDate     string                  `json:"generated_date,omitempty"`
	BusinessID        string                  `json:"business_id,omitempty"`
	CashFlowAnalysis  *CashFlowAnalysis       `json:"cash_flow_analysis,omitempty"`
	DebtAnalysis      []DebtNote              `json:"debt_analysis"`
	CostOptimization  []CostSuggestion        `json:"cost_optimization"`
	FinancialProducts []ProductRecommendation `json:"financial_products"`
	IndustryRisks     *IndustryRisks          `json:"industry_risks,omitempty"`
	TaxCompliance     []ComplianceNote        `json:"tax_compliance"`
	ActionPlan        ActionPlan              `json:"action_plan"`
}

// InsufficientData reports whether the engine had no record to work with.
func (r *RecommendationResult) InsufficientData() bool {
	return r.CashFlowAnalysis == nil
}
