package utils

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"sme-financial-health/internal/models"
)

// Parser errors
var (
	ErrEmptyCSV       = errors.New("CSV content is empty")
	ErrMissingColumns = errors.New("missing required columns")
	ErrNoDataRows     = errors.New("file contains no valid data rows")
	ErrInvalidRowData = errors.New("invalid row data")
)

// RequiredColumns must be present in every uploaded file.
var RequiredColumns = []string{
	"annual_revenue",
	"total_expenses",
	"current_assets",
	"current_liabilities",
	"total_assets",
	"total_liabilities",
}

// ColumnAliases maps alternative column names to standard names.
var ColumnAliases = map[string]string{
	// business_id aliases
	"businessid":    "business_id",
	"business id":   "business_id",
	"id":            "business_id",
	"company_id":    "business_id",
	"companyid":     "business_id",
	"sme_id":        "business_id",
	"business_name": "business_id",

	// industry aliases
	"industry":      "industry_type",
	"industry type": "industry_type",
	"sector":        "industry_type",

	// revenue aliases
	"revenue":        "annual_revenue",
	"annual revenue": "annual_revenue",
	"annualrevenue":  "annual_revenue",
	"turnover":       "annual_revenue",
	"sales":          "annual_revenue",
	"total_revenue":  "annual_revenue",

	// expense aliases
	"expenses":       "total_expenses",
	"total expenses": "total_expenses",
	"totalexpenses":  "total_expenses",
	"costs":          "total_expenses",

	// balance sheet aliases
	"current assets":      "current_assets",
	"currentassets":       "current_assets",
	"current liabilities": "current_liabilities",
	"currentliabilities":  "current_liabilities",
	"total assets":        "total_assets",
	"totalassets":         "total_assets",
	"total liabilities":   "total_liabilities",
	"totalliabilities":    "total_liabilities",
	"receivables":         "accounts_receivable",
	"debtors":             "accounts_receivable",
	"stock":               "inventory",

	// ratio aliases
	"debt_to_equity": "debt_equity_ratio",
	"debt_equity":    "debt_equity_ratio",
	"de_ratio":       "debt_equity_ratio",
	"debt_service":   "dscr",

	// compliance aliases
	"gst_status": "gst_compliance_status",
	"gst":        "gst_compliance_status",
	"gst status": "gst_compliance_status",

	"health_score": "financial_health_score",
}

// numericFields maps optional numeric columns to their record fields.
var numericFields = map[string]func(r *models.FinancialRecord) **float64{
	"current_assets":         func(r *models.FinancialRecord) **float64 { return &r.CurrentAssets },
	"current_liabilities":    func(r *models.FinancialRecord) **float64 { return &r.CurrentLiabilities },
	"total_assets":           func(r *models.FinancialRecord) **float64 { return &r.TotalAssets },
	"total_liabilities":      func(r *models.FinancialRecord) **float64 { return &r.TotalLiabilities },
	"inventory":              func(r *models.FinancialRecord) **float64 { return &r.Inventory },
	"accounts_receivable":    func(r *models.FinancialRecord) **float64 { return &r.AccountsReceivable },
	"current_ratio":          func(r *models.FinancialRecord) **float64 { return &r.CurrentRatio },
	"quick_ratio":            func(r *models.FinancialRecord) **float64 { return &r.QuickRatio },
	"debt_equity_ratio":      func(r *models.FinancialRecord) **float64 { return &r.DebtEquityRatio },
	"dscr":                   func(r *models.FinancialRecord) **float64 { return &r.DSCR },
	"roce":                   func(r *models.FinancialRecord) **float64 { return &r.ROCE },
	"days_inventory":         func(r *models.FinancialRecord) **float64 { return &r.DaysInventory },
	"days_receivables":       func(r *models.FinancialRecord) **float64 { return &r.DaysReceivables },
	"days_payables":          func(r *models.FinancialRecord) **float64 { return &r.DaysPayables },
	"financial_health_score": func(r *models.FinancialRecord) **float64 { return &r.FinancialHealthScore },
}

// RecordParser turns tabular financial data into records.
type RecordParser struct {
	columnMapping map[string]int
	required      []string
	strict        bool
	source        string
	idPrefix      string
	now           func() time.Time
}

// NewCSVParser creates a parser for uploaded CSV files.
func NewCSVParser() *RecordParser {
	return newRecordParser(models.SourceCSVUpload, "CSV", RequiredColumns)
}

// NewXLSXParser creates a parser for uploaded Excel files.
func NewXLSXParser() *RecordParser {
	return newRecordParser(models.SourceExcelUpload, "XLSX", RequiredColumns)
}

// NewDatasetParser creates a lenient parser for the reference dataset.
// Only business_id is required; missing balances are inferred later.
func NewDatasetParser() *RecordParser {
	p := newRecordParser(models.SourceDataset, "SME", []string{"business_id"})
	p.strict = false
	return p
}

func newRecordParser(source, idPrefix string, required []string) *RecordParser {
	return &RecordParser{
		columnMapping: make(map[string]int),
		required:      required,
		strict:        true,
		source:        source,
		idPrefix:      idPrefix,
		now:           time.Now,
	}
}

// ParseCSV parses CSV content and returns valid records plus per-row errors.
func (p *RecordParser) ParseCSV(content string) ([]*models.FinancialRecord, []error) {
	if strings.TrimSpace(content) == "" {
		return nil, []error{ErrEmptyCSV}
	}

	reader := csv.NewReader(strings.NewReader(content))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if len(rows) == 0 {
				return nil, []error{fmt.Errorf("failed to read header: %w", err)}
			}
			// keep line numbering aligned with the file
			rows = append(rows, nil)
			continue
		}
		rows = append(rows, row)
	}

	return p.ParseRows(rows)
}

// ParseRows parses a header row followed by data rows.
func (p *RecordParser) ParseRows(rows [][]string) ([]*models.FinancialRecord, []error) {
	if len(rows) == 0 {
		return nil, []error{ErrEmptyCSV}
	}

	if err := p.buildColumnMapping(rows[0]); err != nil {
		return nil, []error{err}
	}

	uploadDate := p.now().Format("2006-01-02 15:04:05")

	var records []*models.FinancialRecord
	var parseErrors []error
	for i, row := range rows[1:] {
		lineNum := i + 2 // header is line 1
		if row == nil {
			parseErrors = append(parseErrors, fmt.Errorf("line %d: %w", lineNum, ErrInvalidRowData))
			continue
		}
		if isBlankRow(row) {
			continue
		}

		record, err := p.parseRow(row, i)
		if err != nil {
			parseErrors = append(parseErrors, fmt.Errorf("line %d: %w", lineNum, err))
			continue
		}

		if err := p.validate(record); err != nil {
			parseErrors = append(parseErrors, fmt.Errorf("line %d: %w", lineNum, err))
			continue
		}

		record.Source = p.source
		if p.strict {
			record.UploadDate = uploadDate
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, append([]error{ErrNoDataRows}, parseErrors...)
	}

	return records, parseErrors
}

// buildColumnMapping creates a mapping of standard column names to their indices.
func (p *RecordParser) buildColumnMapping(header []string) error {
	p.columnMapping = make(map[string]int)

	for i, col := range header {
		normalized := NormalizeColumn(col)
		if _, exists := p.columnMapping[normalized]; !exists {
			p.columnMapping[normalized] = i
		}
	}

	return checkColumns(p.columnMapping, p.required)
}

func checkColumns(mapping map[string]int, required []string) error {
	var missing []string
	for _, col := range required {
		if _, ok := mapping[col]; !ok {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return nil
}

// NormalizeColumn lower-cases a header and resolves aliases.
func NormalizeColumn(col string) string {
	normalized := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(col, "\uFEFF")))
	if alias, ok := ColumnAliases[normalized]; ok {
		return alias
	}
	return normalized
}

// parseRow parses a single row into a record.
func (p *RecordParser) parseRow(row []string, index int) (*models.FinancialRecord, error) {
	getValue := func(column string) (string, bool) {
		idx, ok := p.columnMapping[column]
		if !ok || idx >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[idx]), true
	}

	record := &models.FinancialRecord{}

	if id, ok := getValue("business_id"); ok && id != "" {
		record.BusinessID = id
	} else {
		record.BusinessID = fmt.Sprintf("%s_%d", p.idPrefix, index)
	}

	record.IndustryType, _ = getValue("industry_type")
	record.GSTComplianceStatus, _ = getValue("gst_compliance_status")

	// Revenue and expenses are stored as magnitudes; blanks count as zero.
	for column, dst := range map[string]*float64{
		"annual_revenue": &record.AnnualRevenue,
		"total_expenses": &record.TotalExpenses,
	} {
		raw, _ := getValue(column)
		if raw == "" {
			continue
		}
		v, err := parseFloat(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", column, err)
		}
		*dst = math.Abs(v)
	}

	for column, field := range numericFields {
		raw, ok := getValue(column)
		if !ok {
			continue
		}
		if raw == "" {
			if p.isRequired(column) {
				*field(record) = models.Float(0)
			}
			continue
		}
		v, err := parseFloat(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", column, err)
		}
		*field(record) = models.Float(v)
	}

	return record, nil
}

// validate applies the upload rules; dataset rows only need an ID.
func (p *RecordParser) validate(record *models.FinancialRecord) error {
	if p.strict {
		return models.ValidateRecord(record)
	}
	if strings.TrimSpace(record.BusinessID) == "" {
		return models.ErrEmptyBusinessID
	}
	return nil
}

func (p *RecordParser) isRequired(column string) bool {
	for _, c := range p.required {
		if c == column {
			return true
		}
	}
	return false
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseFloat parses a string to float64, handling common formats.
func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, errors.New("empty value")
	}

	// Remove commas and currency symbols
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(s, "₹")
	s = strings.TrimPrefix(s, "Rs.")
	s = strings.TrimSpace(s)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("value is not a finite number")
	}
	return v, nil
}
