// Package models defines the data structures for the SME financial health engine.
package models

// Industry names with a benchmark profile.
const (
	IndustryManufacturing = "Manufacturing"
	IndustryRetail        = "Retail"
	IndustryServices      = "Services"
	IndustryLogistics     = "Logistics"
	IndustryEcommerce     = "E-commerce"
	IndustryAgriculture   = "Agriculture"
)

// GST compliance statuses recognised by the tax rules.
const (
	GSTCompliant    = "Compliant"
	GSTDelayed      = "Delayed"
	GSTNonCompliant = "Non-Compliant"
	GSTNotAssessed  = "Not Assessed"
)

// Record sources.
const (
	SourceCSVUpload   = "CSV Upload"
	SourceExcelUpload = "Excel Upload"
	SourceDataset     = "Dataset"
)

// FinancialRecord holds the raw financial fields of a single business.
// Optional numeric fields are nil when the input did not carry them.
type FinancialRecord struct {
	BusinessID    string  `json:"business_id" validate:"required"`
	IndustryType  string  `json:"industry_type,omitempty"`
	AnnualRevenue float64 `json:"annual_revenue" validate:"gt=0"`
	TotalExpenses float64 `json:"total_expenses" validate:"gte=0"`

	CurrentAssets      *float64 `json:"current_assets,omitempty"`
	CurrentLiabilities *float64 `json:"current_liabilities,omitempty"`
	TotalAssets        *float64 `json:"total_assets,omitempty"`
	TotalLiabilities   *float64 `json:"total_liabilities,omitempty"`
	Inventory          *float64 `json:"inventory,omitempty"`
	AccountsReceivable *float64 `json:"accounts_receivable,omitempty"`

	CurrentRatio    *float64 `json:"current_ratio,omitempty"`
	QuickRatio      *float64 `json:"quick_ratio,omitempty"`
	DebtEquityRatio *float64 `json:"debt_equity_ratio,omitempty"`
	DSCR            *float64 `json:"dscr,omitempty"`
	ROCE            *float64 `json:"roce,omitempty"`

	DaysInventory   *float64 `json:"days_inventory,omitempty"`
	DaysReceivables *float64 `json:"days_receivables,omitempty"`
	DaysPayables    *float64 `json:"days_payables,omitempty"`

	GSTComplianceStatus string `json:"gst_compliance_status,omitempty"`

	// Loader metadata, never read by the analysis.
	Source               string   `json:"source,omitempty"`
	UploadDate           string   `json:"upload_date,omitempty"`
	FinancialHealthScore *float64 `json:"financial_health_score,omitempty"`
}

// IsEmpty reports whether the record carries no data at all.
func (r *FinancialRecord) IsEmpty() bool {
	return r == nil || *r == FinancialRecord{}
}

// Industry returns the industry label used in results.
func (r *FinancialRecord) Industry() string {
	if r.IndustryType == "" {
		return "Unknown"
	}
	return r.IndustryType
}

// GSTStatus returns the compliance status, defaulting to Not Assessed.
func (r *FinancialRecord) GSTStatus() string {
	if r.GSTComplianceStatus == "" {
		return GSTNotAssessed
	}
	return r.GSTComplianceStatus
}

// Float returns a pointer to v, for populating optional fields.
func Float(v float64) *float64 {
	return &v
}

// Value returns *p or zero when p is nil.
func Value(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// BusinessSummary is one row of the dataset listing.
type BusinessSummary struct {
	BusinessID           string   `json:"business_id"`
	IndustryType         string   `json:"industry_type"`
	AnnualRevenue        float64  `json:"annual_revenue"`
	FinancialHealthScore *float64 `json:"financial_health_score"`
}
