package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"sme-financial-health/internal/models"
	"sme-financial-health/internal/services/analysis"
	"sme-financial-health/internal/services/recommendation"
	"sme-financial-health/internal/services/report"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
}

func fixture(t *testing.T, expenses float64) (*models.FinancialRecord, *models.AnalysisResult, *models.RecommendationResult) {
	t.Helper()

	r := &models.FinancialRecord{
		BusinessID:          "SME_001",
		IndustryType:        models.IndustryRetail,
		AnnualRevenue:       1_000_000,
		TotalExpenses:       expenses,
		TotalAssets:         models.Float(1_200_000),
		TotalLiabilities:    models.Float(400_000),
		CurrentAssets:       models.Float(300_000),
		CurrentLiabilities:  models.Float(150_000),
		GSTComplianceStatus: models.GSTCompliant,
	}
	a := analysis.NewAnalyzerWithClock(fixedClock).Analyze(r)
	require.NotNil(t, a)
	rec := recommendation.NewEngineWithClock(fixedClock).Generate(r, a)
	return r, a, rec
}

func TestParseFormat(t *testing.T) {
	tests := map[string]report.Format{
		"":      report.FormatPDF,
		"PDF":   report.FormatPDF,
		"excel": report.FormatExcel,
		"xlsx":  report.FormatExcel,
		"json":  report.FormatJSON,
	}
	for in, want := range tests {
		got, err := report.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := report.ParseFormat("docx")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "SME_001_financial_report_20240315.pdf", report.Filename("SME_001", report.FormatPDF, fixedClock()))
	assert.Equal(t, "SME_001_financial_report_20240315.xlsx", report.Filename("SME_001", report.FormatExcel, fixedClock()))
	assert.Equal(t, "application/pdf", report.FormatPDF.ContentType())
}

func TestJSONReport(t *testing.T) {
	r, a, rec := fixture(t, 800_000)

	doc, err := report.NewGeneratorWithClock(fixedClock).JSON(r, a, rec)
	require.NoError(t, err)

	assert.Equal(t, "SME_001", doc.Metadata.BusinessID)
	assert.Equal(t, "Retail", doc.Metadata.Industry)
	assert.Equal(t, "2024-03-15 10:30:00", doc.Metadata.ReportDate)
	assert.Equal(t, "1.0", doc.Metadata.ReportVersion)
	assert.Equal(t, "2024-03-15T10:30:00Z", doc.GeneratedAt)

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"financial_analysis":{"business_id":"SME_001"`)
}

func TestInsufficientData(t *testing.T) {
	g := report.NewGenerator()
	r, a, rec := fixture(t, 800_000)

	_, err := g.JSON(nil, a, rec)
	assert.ErrorIs(t, err, report.ErrInsufficientData)
	_, err = g.PDF(r, nil, rec)
	assert.ErrorIs(t, err, report.ErrInsufficientData)
	_, err = g.Excel(&models.FinancialRecord{}, a, rec)
	assert.ErrorIs(t, err, report.ErrInsufficientData)
}

func TestPDFReport(t *testing.T) {
	// Loss-making business so every recommendation section is populated.
	r, a, rec := fixture(t, 950_000)
	require.NotEmpty(t, rec.CostOptimization)

	data, err := report.NewGeneratorWithClock(fixedClock).PDF(r, a, rec)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Greater(t, len(data), 1000)
}

func TestPDFReport_WithoutRecommendations(t *testing.T) {
	r, a, _ := fixture(t, 800_000)

	data, err := report.NewGenerator().PDF(r, a, nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExcelReport(t *testing.T) {
	r, a, rec := fixture(t, 800_000)

	data, err := report.NewGenerator().Excel(r, a, rec)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{report.SheetSummary, report.SheetMetrics, report.SheetRatios}, f.GetSheetList())

	v, err := f.GetCellValue(report.SheetSummary, "B2")
	require.NoError(t, err)
	assert.Equal(t, "SME_001", v)

	v, err = f.GetCellValue(report.SheetSummary, "B5")
	require.NoError(t, err)
	assert.Equal(t, "Low Risk", v)

	v, err = f.GetCellValue(report.SheetMetrics, "B2")
	require.NoError(t, err)
	assert.Equal(t, "1000000", v)

	rows, err := f.GetRows(report.SheetRatios)
	require.NoError(t, err)
	assert.Len(t, rows, 16)
	assert.Equal(t, []string{"liquidity_ratios", "current_ratio", "2"}, rows[1])
}

func TestRender(t *testing.T) {
	r, a, rec := fixture(t, 800_000)
	g := report.NewGeneratorWithClock(fixedClock)

	data, err := g.Render(report.FormatJSON, r, a, rec)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))

	_, err = g.Render(report.Format("docx"), r, a, rec)
	assert.True(t, errors.Is(err, report.ErrUnknownFormat))
}

func TestRiskColor(t *testing.T) {
	assert.Equal(t, "#28A745", report.RiskColor(models.RiskLow))
	assert.Equal(t, "#DC3545", report.RiskColor(models.RiskCritical))
	assert.Equal(t, "#6C757D", report.RiskColor("Unknown"))
}
