package recommendation

import (
	"sme-financial-health/internal/models"
)

// highRecommendationScore marks products as strongly recommended.
const highRecommendationScore = 70

// Product is one entry of the financial product catalog.
type Product struct {
	Name              string  `json:"name"`
	MinScore          int     `json:"min_score"`
	LoanAmountFactor  float64 `json:"loan_amount_factor"`
	InterestRateRange string  `json:"interest_rate_range"`
	Tenure            string  `json:"tenure"`
	Description       string  `json:"description"`
}

var productCatalog = [...]Product{
	{"Working Capital Loan", 50, 0.30, "9-12%", "1-3 years", "For managing daily operational expenses and inventory"},
	{"Term Loan", 60, 0.50, "8-11%", "3-7 years", "For capital expenditure and expansion"},
	{"Equipment Financing", 55, 0.40, "8.5-11%", "3-5 years", "For purchasing machinery and equipment"},
	{"Business Credit Card", 45, 0.05, "18-24%", "Revolving", "For short-term operational needs"},
	{"Invoice Discounting", 50, 0.80, "9-13%", "30-180 days", "Against pending customer invoices"},
	{"Trade Credit", 55, 0.30, "10-14%", "Custom", "For purchasing raw materials and goods"},
}

// Products returns a copy of the catalog in its fixed order.
func Products() []Product {
	out := make([]Product, len(productCatalog))
	copy(out, productCatalog[:])
	return out
}

// RecommendProducts lists every product whose minimum score the analysis meets.
func RecommendProducts(analysis *models.AnalysisResult) []models.ProductRecommendation {
	score := analysis.Creditworthiness.Score
	revenue := float64(analysis.FinancialMetrics.AnnualRevenue)

	recommended := "Medium"
	if score >= highRecommendationScore {
		recommended = "High"
	}

	products := []models.ProductRecommendation{}
	for _, p := range productCatalog {
		if score < p.MinScore {
			continue
		}
		products = append(products, models.ProductRecommendation{
			Product:             p.Name,
			Eligibility:         "Eligible",
			EstimatedLoanAmount: int64(revenue * p.LoanAmountFactor),
			InterestRateRange:   p.InterestRateRange,
			Tenure:              p.Tenure,
			Description:         p.Description,
			Recommended:         recommended,
		})
	}
	return products
}
