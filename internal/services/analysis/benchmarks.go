package analysis

import (
	"sort"

	"sme-financial-health/internal/models"
)

var industryBenchmarks = map[string]models.IndustryBenchmarks{
	models.IndustryManufacturing: {CurrentRatio: 1.8, QuickRatio: 1.2, DebtEquity: 1.5, ProfitMargin: 0.12, AssetTurnover: 1.5, ROE: 0.18},
	models.IndustryRetail:        {CurrentRatio: 1.5, QuickRatio: 0.8, DebtEquity: 1.0, ProfitMargin: 0.08, AssetTurnover: 2.0, ROE: 0.15},
	models.IndustryServices:      {CurrentRatio: 1.8, QuickRatio: 1.5, DebtEquity: 0.8, ProfitMargin: 0.15, AssetTurnover: 2.5, ROE: 0.20},
	models.IndustryLogistics:     {CurrentRatio: 1.3, QuickRatio: 0.9, DebtEquity: 1.2, ProfitMargin: 0.10, AssetTurnover: 1.8, ROE: 0.16},
	models.IndustryEcommerce:     {CurrentRatio: 1.6, QuickRatio: 1.2, DebtEquity: 0.9, ProfitMargin: 0.10, AssetTurnover: 3.0, ROE: 0.22},
	models.IndustryAgriculture:   {CurrentRatio: 1.4, QuickRatio: 0.7, DebtEquity: 1.3, ProfitMargin: 0.12, AssetTurnover: 1.2, ROE: 0.14},
}

// BenchmarksFor returns a copy of the industry's benchmarks. Unknown or
// empty industries use the Services profile.
func BenchmarksFor(industry string) models.IndustryBenchmarks {
	if b, ok := industryBenchmarks[industry]; ok {
		return b
	}
	return industryBenchmarks[models.IndustryServices]
}

// KnownIndustries lists the industries with a benchmark profile, sorted.
func KnownIndustries() []string {
	names := make([]string, 0, len(industryBenchmarks))
	for name := range industryBenchmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
