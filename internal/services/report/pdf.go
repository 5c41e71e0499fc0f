package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-pdf/fpdf"

	"sme-financial-health/internal/models"
	"sme-financial-health/internal/utils"
)

const (
	pdfTitle   = "SME FINANCIAL HEALTH ASSESSMENT REPORT"
	pdfFooter  = "Financial Health Assessment Tool v" + Version
	pageWidth  = 180.0
	lineHeight = 7.0
)

type rgb struct{ r, g, b int }

var (
	navy      = rgb{0, 51, 102}
	labelFill = rgb{232, 240, 245}
	stripe    = rgb{240, 240, 240}
	grey      = rgb{108, 117, 125}
)

var riskColors = map[models.RiskCategory]rgb{
	models.RiskLow:      {40, 167, 69},
	models.RiskMedium:   {255, 193, 7},
	models.RiskHigh:     {253, 126, 20},
	models.RiskCritical: {220, 53, 69},
}

// RiskColor returns the display color for a risk category as #RRGGBB.
func RiskColor(c models.RiskCategory) string {
	col, ok := riskColors[c]
	if !ok {
		col = grey
	}
	return fmt.Sprintf("#%02X%02X%02X", col.r, col.g, col.b)
}

// ratioRow is one line of the ratio assessment table.
type ratioRow struct {
	category string
	name     string
	value    string
	verdict  string
}

func verdict(good bool) string {
	if good {
		return "Good"
	}
	return "Needs Review"
}

func assessRatios(a *models.AnalysisResult) []ratioRow {
	liq, prof, lev := a.LiquidityRatios, a.ProfitabilityRatios, a.LeverageRatios
	return []ratioRow{
		{"Liquidity", "Current Ratio", fmt.Sprintf("%.2f", liq.CurrentRatio), verdict(liq.CurrentRatio > 1.5)},
		{"Liquidity", "Quick Ratio", fmt.Sprintf("%.2f", liq.QuickRatio), verdict(liq.QuickRatio > 1.0)},
		{"Profitability", "Profit Margin (%)", fmt.Sprintf("%.2f%%", prof.ProfitMargin), verdict(prof.ProfitMargin > 10)},
		{"Profitability", "ROA (%)", fmt.Sprintf("%.2f%%", prof.ROA), verdict(prof.ROA > 5)},
		{"Profitability", "ROE (%)", fmt.Sprintf("%.2f%%", prof.ROE), verdict(prof.ROE > 15)},
		{"Leverage", "Debt-to-Equity", fmt.Sprintf("%.2f", lev.DebtEquityRatio), verdict(lev.DebtEquityRatio < 1.5)},
		{"Leverage", "DSCR", fmt.Sprintf("%.2f", lev.DSCR), verdict(lev.DSCR > 1.2)},
		{"Efficiency", "Asset Turnover", fmt.Sprintf("%.2f", a.EfficiencyRatios.AssetTurnover), "Monitor"},
	}
}

func rupees(amount int64) string {
	return "Rs. " + humanize.Comma(amount)
}

// pdfWriter wraps fpdf with the report's fonts and colors.
type pdfWriter struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (w *pdfWriter) text(s string) string {
	// Core fonts are cp1252 and have no rupee glyph.
	return w.tr(strings.ReplaceAll(s, "₹", "Rs. "))
}

func (w *pdfWriter) fill(c rgb) { w.pdf.SetFillColor(c.r, c.g, c.b) }

func (w *pdfWriter) heading(title string) {
	w.pdf.Ln(4)
	w.pdf.SetFont("Arial", "B", 14)
	w.pdf.SetTextColor(navy.r, navy.g, navy.b)
	w.pdf.CellFormat(pageWidth, 10, w.text(title), "", 1, "L", false, 0, "")
	w.pdf.SetTextColor(0, 0, 0)
	w.pdf.SetFont("Arial", "", 10)
}

func (w *pdfWriter) paragraph(s string) {
	w.pdf.MultiCell(pageWidth, 5.5, w.text(s), "", "L", false)
}

// table draws a header row in navy followed by striped body rows.
func (w *pdfWriter) table(widths []float64, align []string, rows [][]string) {
	for i, row := range rows {
		if i == 0 {
			w.pdf.SetFont("Arial", "B", 9)
			w.fill(navy)
			w.pdf.SetTextColor(255, 255, 255)
		} else {
			w.pdf.SetFont("Arial", "", 9)
			w.pdf.SetTextColor(0, 0, 0)
			if i%2 == 0 {
				w.fill(stripe)
			} else {
				w.fill(rgb{255, 255, 255})
			}
		}
		for j, cell := range row {
			w.pdf.CellFormat(widths[j], lineHeight, w.text(cell), "1", 0, align[j], true, 0, "")
		}
		w.pdf.Ln(-1)
	}
	w.pdf.SetTextColor(0, 0, 0)
}

// PDF renders the report as a PDF document.
func (g *Generator) PDF(r *models.FinancialRecord, a *models.AnalysisResult, rec *models.RecommendationResult) ([]byte, error) {
	if r.IsEmpty() || a == nil {
		return nil, ErrInsufficientData
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle(pdfTitle, false)
	pdf.SetCreator(pdfFooter, false)
	pdf.AddPage()

	w := &pdfWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	pdf.SetFont("Arial", "B", 18)
	pdf.SetTextColor(navy.r, navy.g, navy.b)
	pdf.CellFormat(pageWidth, 12, pdfTitle, "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	health := a.FinancialHealth
	score := fmt.Sprintf("%d/100", health.HealthScore)

	// Report metadata
	meta := [][2]string{
		{"Business ID:", r.BusinessID},
		{"Industry:", r.Industry()},
		{"Report Date:", a.AnalysisDate},
		{"Assessment Score:", score},
	}
	for _, m := range meta {
		pdf.SetFont("Arial", "B", 10)
		w.fill(labelFill)
		pdf.CellFormat(50, 8, m[0], "1", 0, "L", true, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(100, 8, w.text(m[1]), "1", 1, "L", false, 0, "")
	}

	w.heading("EXECUTIVE SUMMARY")
	col, ok := riskColors[health.RiskCategory]
	if !ok {
		col = grey
	}
	w.fill(col)
	pdf.SetFont("Arial", "B", 10)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(60, 8, string(health.RiskCategory), "", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 10)
	pdf.Ln(2)
	w.paragraph(fmt.Sprintf("Financial Health Status: %s", health.RiskCategory))
	w.paragraph(fmt.Sprintf("Assessment Score: %s", score))
	w.paragraph(fmt.Sprintf("Creditworthiness Score: %d/100", a.Creditworthiness.Score))
	w.paragraph(fmt.Sprintf("GST Compliance: %s", a.GSTCompliance))
	if rec != nil && rec.ExecutiveSummary != "" {
		pdf.Ln(2)
		w.paragraph(rec.ExecutiveSummary)
	}

	w.heading("FINANCIAL METRICS")
	m := a.FinancialMetrics
	w.table([]float64{90, 90}, []string{"L", "R"}, [][]string{
		{"Metric", "Amount (Rs.)"},
		{"Annual Revenue", rupees(m.AnnualRevenue)},
		{"Total Expenses", rupees(m.TotalExpenses)},
		{"Net Profit", rupees(m.NetProfit)},
		{"Total Assets", rupees(m.TotalAssets)},
		{"Total Liabilities", rupees(m.TotalLiabilities)},
		{"Equity", rupees(m.Equity)},
		{"Current Assets", rupees(m.CurrentAssets)},
		{"Current Liabilities", rupees(m.CurrentLiabilities)},
	})

	w.heading("FINANCIAL RATIOS ANALYSIS")
	rows := [][]string{{"Ratio Category", "Ratio", "Value", "Assessment"}}
	for _, row := range assessRatios(a) {
		rows = append(rows, []string{row.category, row.name, row.value, row.verdict})
	}
	w.table([]float64{45, 50, 40, 45}, []string{"C", "C", "C", "C"}, rows)

	if rec != nil && !rec.InsufficientData() {
		pdf.AddPage()
		writeRecommendations(w, rec)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(grey.r, grey.g, grey.b)
	pdf.CellFormat(pageWidth, 5, fmt.Sprintf("Report Generated on %s | %s", g.now().Format("2006-01-02 15:04:05"), pdfFooter), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.GetLogger().Error("Failed to generate PDF output", utils.String("business_id", r.BusinessID), utils.Error(err))
		return nil, fmt.Errorf("failed to generate PDF output: %w", err)
	}

	return buf.Bytes(), nil
}

func writeRecommendations(w *pdfWriter, rec *models.RecommendationResult) {
	w.heading("RECOMMENDATIONS")

	bullet := func(s string) { w.paragraph("• " + s) }
	label := func(s string) {
		w.pdf.SetFont("Arial", "B", 10)
		w.paragraph(s)
		w.pdf.SetFont("Arial", "", 10)
	}

	if len(rec.CostOptimization) > 0 {
		label("Cost Optimization Opportunities:")
		for _, item := range firstN(rec.CostOptimization, 2) {
			bullet(fmt.Sprintf("%s: %s", item.Title, item.Detail))
		}
		w.pdf.Ln(2)
	}

	if len(rec.FinancialProducts) > 0 {
		label("Suitable Financial Products:")
		for _, p := range firstN(rec.FinancialProducts, 3) {
			bullet(fmt.Sprintf("%s - %s at %s", p.Product, rupees(p.EstimatedLoanAmount), p.InterestRateRange))
		}
		w.pdf.Ln(2)
	}

	if len(rec.ActionPlan.Immediate) > 0 {
		label("Action Plan:")
		w.pdf.SetFont("Arial", "I", 10)
		w.paragraph("Immediate Actions:")
		w.pdf.SetFont("Arial", "", 10)
		for _, action := range firstN(rec.ActionPlan.Immediate, 2) {
			bullet(action)
		}
	}
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
