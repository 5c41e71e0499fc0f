package models

// RiskCategory is the health tier derived from the creditworthiness score.
type RiskCategory string

const (
	RiskLow      RiskCategory = "Low Risk"
	RiskMedium   RiskCategory = "Medium Risk"
	RiskHigh     RiskCategory = "High Risk"
	RiskCritical RiskCategory = "Critical Risk"
)

// RiskCategories returns every tier from healthiest to worst.
func RiskCategories() []RiskCategory {
	return []RiskCategory{RiskLow, RiskMedium, RiskHigh, RiskCritical}
}

// IsValid checks if the category is one of the four tiers.
func (c RiskCategory) IsValid() bool {
	for _, valid := range RiskCategories() {
		if c == valid {
			return true
		}
	}
	return false
}

// FinancialMetrics echoes the headline figures as whole rupees.
type FinancialMetrics struct {
	AnnualRevenue      int64 `json:"annual_revenue"`
	TotalExpenses      int64 `json:"total_expenses"`
	NetProfit          int64 `json:"net_profit"`
	TotalAssets        int64 `json:"total_assets"`
	TotalLiabilities   int64 `json:"total_liabilities"`
	Equity             int64 `json:"equity"`
	CurrentAssets      int64 `json:"current_assets"`
	CurrentLiabilities int64 `json:"current_liabilities"`
}

type LiquidityRatios struct {
	CurrentRatio float64 `json:"current_ratio"`
	QuickRatio   float64 `json:"quick_ratio"`
}

type ProfitabilityRatios struct {
	NetProfit    int64   `json:"net_profit"`
	ProfitMargin float64 `json:"profit_margin"`
	ROA          float64 `json:"roa"`
	ROE          float64 `json:"roe"`
}

type LeverageRatios struct {
	DebtEquityRatio  float64 `json:"debt_equity_ratio"`
	DebtRatio        float64 `json:"debt_ratio"`
	EquityMultiplier float64 `json:"equity_multiplier"`
	DSCR             float64 `json:"dscr"`
}

type EfficiencyRatios struct {
	AssetTurnover       float64 `json:"asset_turnover"`
	ReceivablesTurnover float64 `json:"receivables_turnover"`
	InventoryTurnover   float64 `json:"inventory_turnover"`
	DaysInventory       int     `json:"days_inventory"`
	DaysReceivables     int     `json:"days_receivables"`
}

type WorkingCapital struct {
	WorkingCapital      int64   `json:"working_capital"`
	WorkingCapitalRatio float64 `json:"working_capital_ratio"`
	CashConversionCycle int64   `json:"cash_conversion_cycle"`
	OperatingCashFlow   int64   `json:"operating_cash_flow"`
}

// Creditworthiness is the weighted score and one note per factor.
type Creditworthiness struct {
	Score      int      `json:"score"`
	Assessment []string `json:"assessment"`
}

type FinancialHealth struct {
	HealthScore  int          `json:"health_score"`
	RiskCategory RiskCategory `json:"risk_category"`
}

// IndustryBenchmarks are reference ratios for one industry.
type IndustryBenchmarks struct {
	CurrentRatio  float64 `json:"current_ratio"`
	QuickRatio    float64 `json:"quick_ratio"`
	DebtEquity    float64 `json:"debt_equity"`
	ProfitMargin  float64 `json:"profit_margin"`
	AssetTurnover float64 `json:"asset_turnover"`
	ROE           float64 `json:"roe"`
}

// AnalysisResult is the complete output of one analysis pass.
type AnalysisResult struct {
	BusinessID          string              `json:"business_id"`
	IndustryType        string              `json:"industry_type"`
	AnalysisDate        string              `json:"analysis_date"`
	FinancialMetrics    FinancialMetrics    `json:"financial_metrics"`
	LiquidityRatios     LiquidityRatios     `json:"liquidity_ratios"`
	ProfitabilityRatios ProfitabilityRatios `json:"profitability_ratios"`
	LeverageRatios      LeverageRatios      `json:"leverage_ratios"`
	EfficiencyRatios    EfficiencyRatios    `json:"efficiency_ratios"`
	WorkingCapital      WorkingCapital      `json:"working_capital"`
	Creditworthiness    Creditworthiness    `json:"creditworthiness"`
	FinancialHealth     FinancialHealth     `json:"financial_health"`
	GSTCompliance       string              `json:"gst_compliance"`
	IndustryBenchmarks  IndustryBenchmarks  `json:"industry_benchmarks"`
}
