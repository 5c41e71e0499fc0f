package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"sme-financial-health/internal/models"
)

// Sheet names in the Excel report.
const (
	SheetSummary = "Summary"
	SheetMetrics = "Financial Metrics"
	SheetRatios  = "Financial Ratios"
)

// Excel renders the report as an XLSX workbook.
func (g *Generator) Excel(r *models.FinancialRecord, a *models.AnalysisResult, _ *models.RecommendationResult) ([]byte, error) {
	if r.IsEmpty() || a == nil {
		return nil, ErrInsufficientData
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{SheetMetrics, SheetRatios} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	m := a.FinancialMetrics
	sheets := map[string][][]interface{}{
		SheetSummary: {
			{"Metric", "Value"},
			{"Business ID", r.BusinessID},
			{"Industry", r.Industry()},
			{"Financial Health Score", fmt.Sprintf("%d/100", a.FinancialHealth.HealthScore)},
			{"Risk Category", string(a.FinancialHealth.RiskCategory)},
			{"GST Compliance", a.GSTCompliance},
		},
		SheetMetrics: {
			{"Metric", "Value"},
			{"annual_revenue", m.AnnualRevenue},
			{"total_expenses", m.TotalExpenses},
			{"net_profit", m.NetProfit},
			{"total_assets", m.TotalAssets},
			{"total_liabilities", m.TotalLiabilities},
			{"equity", m.Equity},
			{"current_assets", m.CurrentAssets},
			{"current_liabilities", m.CurrentLiabilities},
		},
		SheetRatios: ratioSheet(a),
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"003366"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for name, rows := range sheets {
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				return nil, fmt.Errorf("failed to write %s row %d: %w", name, i+1, err)
			}
		}

		last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(name, "A1", last, header); err != nil {
			return nil, fmt.Errorf("failed to style %s: %w", name, err)
		}
		if err := f.SetColWidth(name, "A", "C", 24); err != nil {
			return nil, fmt.Errorf("failed to size %s: %w", name, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ratioSheet lists every field of the four ratio groups.
func ratioSheet(a *models.AnalysisResult) [][]interface{} {
	liq, prof, lev, eff := a.LiquidityRatios, a.ProfitabilityRatios, a.LeverageRatios, a.EfficiencyRatios
	return [][]interface{}{
		{"Category", "Ratio", "Value"},
		{"liquidity_ratios", "current_ratio", liq.CurrentRatio},
		{"liquidity_ratios", "quick_ratio", liq.QuickRatio},
		{"profitability_ratios", "net_profit", prof.NetProfit},
		{"profitability_ratios", "profit_margin", prof.ProfitMargin},
		{"profitability_ratios", "roa", prof.ROA},
		{"profitability_ratios", "roe", prof.ROE},
		{"leverage_ratios", "debt_equity_ratio", lev.DebtEquityRatio},
		{"leverage_ratios", "debt_ratio", lev.DebtRatio},
		{"leverage_ratios", "equity_multiplier", lev.EquityMultiplier},
		{"leverage_ratios", "dscr", lev.DSCR},
		{"efficiency_ratios", "asset_turnover", eff.AssetTurnover},
		{"efficiency_ratios", "receivables_turnover", eff.ReceivablesTurnover},
		{"efficiency_ratios", "inventory_turnover", eff.InventoryTurnover},
		{"efficiency_ratios", "days_inventory", eff.DaysInventory},
		{"efficiency_ratios", "days_receivables", eff.DaysReceivables},
	}
}
