package utils_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"sme-financial-health/internal/models"
	"sme-financial-health/internal/utils"
)

const uploadHeader = "business_id,industry_type,annual_revenue,total_expenses,current_assets,current_liabilities,total_assets,total_liabilities"

func TestCSVParser_ValidFile(t *testing.T) {
	csvContent := uploadHeader + `
SME_001,Retail,1000000,800000,300000,150000,1200000,400000
SME_002,Manufacturing,2500000,2100000,900000,600000,3000000,1800000`

	records, errs := utils.NewCSVParser().ParseCSV(csvContent)

	require.Empty(t, errs, "Expected no parse errors")
	require.Len(t, records, 2)

	r := records[0]
	assert.Equal(t, "SME_001", r.BusinessID)
	assert.Equal(t, models.IndustryRetail, r.IndustryType)
	assert.Equal(t, float64(1_000_000), r.AnnualRevenue)
	assert.Equal(t, float64(800_000), r.TotalExpenses)
	assert.Equal(t, 300_000.0, models.Value(r.CurrentAssets))
	assert.Equal(t, 400_000.0, models.Value(r.TotalLiabilities))
	assert.Nil(t, r.DSCR)
	assert.Equal(t, models.SourceCSVUpload, r.Source)
	assert.NotEmpty(t, r.UploadDate)
}

func TestCSVParser_ColumnAliases(t *testing.T) {
	csvContent := `Company_ID,Sector,Turnover,Expenses,Current Assets,Current Liabilities,Total Assets,Total Liabilities,GST
ACME,Services,"₹5,00,000",$300000,100000,50000,400000,100000,Compliant`

	records, errs := utils.NewCSVParser().ParseCSV(csvContent)

	require.Empty(t, errs)
	require.Len(t, records, 1)
	assert.Equal(t, "ACME", records[0].BusinessID)
	assert.Equal(t, models.IndustryServices, records[0].IndustryType)
	assert.Equal(t, float64(500_000), records[0].AnnualRevenue)
	assert.Equal(t, float64(300_000), records[0].TotalExpenses)
	assert.Equal(t, models.GSTCompliant, records[0].GSTComplianceStatus)
}

func TestCSVParser_DefaultIDs(t *testing.T) {
	csvContent := `annual_revenue,total_expenses,current_assets,current_liabilities,total_assets,total_liabilities
100000,80000,30000,15000,120000,40000
200000,150000,60000,30000,240000,80000`

	records, errs := utils.NewCSVParser().ParseCSV(csvContent)

	require.Empty(t, errs)
	require.Len(t, records, 2)
	assert.Equal(t, "CSV_0", records[0].BusinessID)
	assert.Equal(t, "CSV_1", records[1].BusinessID)
}

func TestCSVParser_MissingRequiredColumns(t *testing.T) {
	csvContent := `business_id,annual_revenue,total_expenses
SME_001,100000,80000`

	records, errs := utils.NewCSVParser().ParseCSV(csvContent)

	assert.Empty(t, records)
	require.NotEmpty(t, errs)
	assert.ErrorIs(t, errs[0], utils.ErrMissingColumns)
	assert.Contains(t, errs[0].Error(), "current_assets")
}

func TestCSVParser_EmptyFile(t *testing.T) {
	records, errs := utils.NewCSVParser().ParseCSV(``)

	assert.Empty(t, records)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], utils.ErrEmptyCSV)
}

func TestCSVParser_HeaderOnly(t *testing.T) {
	records, errs := utils.NewCSVParser().ParseCSV(uploadHeader)

	assert.Empty(t, records)
	require.NotEmpty(t, errs)
	assert.ErrorIs(t, errs[0], utils.ErrNoDataRows)
}

func TestCSVParser_RevenueRules(t *testing.T) {
	t.Run("zero revenue rejected", func(t *testing.T) {
		csvContent := uploadHeader + `
SME_001,Retail,0,80000,30000,15000,120000,40000`

		records, errs := utils.NewCSVParser().ParseCSV(csvContent)
		assert.Empty(t, records)
		require.Len(t, errs, 2)
		assert.ErrorIs(t, errs[1], models.ErrInvalidRevenue)
	})

	t.Run("negative amounts stored as magnitudes", func(t *testing.T) {
		csvContent := uploadHeader + `
SME_001,Retail,-100000,-80000,30000,15000,120000,40000`

		records, errs := utils.NewCSVParser().ParseCSV(csvContent)
		require.Empty(t, errs)
		require.Len(t, records, 1)
		assert.Equal(t, float64(100_000), records[0].AnnualRevenue)
		assert.Equal(t, float64(80_000), records[0].TotalExpenses)
	})
}

func TestCSVParser_BlankCells(t *testing.T) {
	csvContent := uploadHeader + `,dscr
SME_001,Retail,100000,80000,,15000,120000,40000,`

	records, errs := utils.NewCSVParser().ParseCSV(csvContent)

	require.Empty(t, errs)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].CurrentAssets, "required balance defaults to zero")
	assert.Equal(t, 0.0, *records[0].CurrentAssets)
	assert.Nil(t, records[0].DSCR, "blank optional ratio stays absent")
}

func TestCSVParser_PartiallyValidFile(t *testing.T) {
	csvContent := uploadHeader + `
SME_001,Retail,100000,80000,30000,15000,120000,40000
SME_002,Retail,abc,80000,30000,15000,120000,40000
SME_003,Retail,200000,90000,30000,15000,120000,40000`

	records, errs := utils.NewCSVParser().ParseCSV(csvContent)

	assert.Len(t, records, 2)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "line 3")
}

func TestCSVParser_WhitespaceHandling(t *testing.T) {
	csvContent := uploadHeader + `
  SME_001  ,  Retail  ,  100000  ,  80000 , 30000 , 15000 , 120000 , 40000 `

	records, errs := utils.NewCSVParser().ParseCSV(csvContent)

	require.Empty(t, errs)
	require.Len(t, records, 1)
	assert.Equal(t, "SME_001", records[0].BusinessID)
	assert.Equal(t, "Retail", records[0].IndustryType)
}

func TestCSVParser_LargeFile(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(uploadHeader + "\n")
	for i := 1; i <= 100; i++ {
		fmt.Fprintf(&sb, "SME_%03d,Retail,100000,80000,30000,15000,120000,40000\n", i)
	}

	records, errs := utils.NewCSVParser().ParseCSV(sb.String())

	assert.Empty(t, errs)
	assert.Len(t, records, 100)
	assert.Equal(t, "SME_100", records[99].BusinessID)
}

func TestDatasetParser_Lenient(t *testing.T) {
	csvContent := `business_id,industry_type,annual_revenue,current_ratio,financial_health_score
SME_001,Retail,0,1.5,72`

	records, errs := utils.NewDatasetParser().ParseCSV(csvContent)

	require.Empty(t, errs)
	require.Len(t, records, 1)
	assert.Equal(t, models.SourceDataset, records[0].Source)
	assert.Empty(t, records[0].UploadDate)
	assert.Equal(t, 1.5, models.Value(records[0].CurrentRatio))
	assert.Equal(t, 72.0, models.Value(records[0].FinancialHealthScore))
	assert.Nil(t, records[0].CurrentAssets)
}

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestLoadUpload_XLSX(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"annual_revenue", "total_expenses", "current_assets", "current_liabilities", "total_assets", "total_liabilities", "industry_type"},
		{1000000, 800000, 300000, 150000, 1200000, 400000, "Retail"},
		{500000, 450000, 100000, 90000, 600000, 300000},
	})

	result, err := utils.LoadUpload("statements.xlsx", buf)

	require.NoError(t, err)
	require.Len(t, result.Records, 2)
	assert.Equal(t, "XLSX_0", result.Records[0].BusinessID)
	assert.Equal(t, models.SourceExcelUpload, result.Records[0].Source)
	assert.Equal(t, float64(1_000_000), result.Records[0].AnnualRevenue)
	assert.Equal(t, "", result.Records[1].IndustryType)
}

func TestLoadUpload_CSV(t *testing.T) {
	content := uploadHeader + `
SME_001,Retail,100000,80000,30000,15000,120000,40000
SME_002,Retail,0,80000,30000,15000,120000,40000`

	result, err := utils.LoadUpload("data.CSV", strings.NewReader(content))

	require.NoError(t, err)
	assert.Len(t, result.Records, 1)
	assert.Len(t, result.RowErrorMessages(), 1)
}

func TestLoadUpload_Rejections(t *testing.T) {
	_, err := utils.LoadUpload("statement.pdf", strings.NewReader("%PDF-1.4"))
	assert.ErrorIs(t, err, models.ErrPDFUpload)

	_, err = utils.LoadUpload("notes.txt", strings.NewReader("hello"))
	assert.ErrorIs(t, err, models.ErrUnsupportedFile)

	_, err = utils.LoadUpload("data.csv", strings.NewReader("business_id\nSME_001"))
	assert.ErrorIs(t, err, utils.ErrMissingColumns)

	assert.True(t, utils.IsSupportedUpload("a.xlsx"))
	assert.False(t, utils.IsSupportedUpload("a.pdf"))
}

func TestCSVParser_ByteOrderMarkHeader(t *testing.T) {
	csvContent := "\uFEFF" + uploadHeader + `
SME_001,Retail,100000,80000,30000,15000,120000,40000`

	records, errs := utils.NewCSVParser().ParseCSV(csvContent)

	require.Empty(t, errs)
	require.Len(t, records, 1)
	assert.Equal(t, "SME_001", records[0].BusinessID)
	assert.Equal(t, "business_id", utils.NormalizeColumn("\uFEFFBusiness_ID"))
}

func TestCSVParser_MissingColumnsNamed(t *testing.T) {
	_, errs := utils.NewCSVParser().ParseCSV("business_id,revenue\nSME_001,100000")

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], utils.ErrMissingColumns)
	assert.Contains(t, errs[0].Error(), "total_liabilities")
	assert.NotContains(t, errs[0].Error(), "annual_revenue")
}
