// Package report renders an analysis and its recommendations as JSON, PDF
// or Excel documents.
package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"sme-financial-health/internal/models"
)

// Version is stamped into every JSON report.
const Version = "1.0"

// ErrInsufficientData is returned when there is no record or analysis to report on.
var ErrInsufficientData = errors.New("insufficient data for report generation")

// ErrUnknownFormat is returned for an unsupported report format.
var ErrUnknownFormat = errors.New("unknown report format")

// Format is a report output format.
type Format string

const (
	FormatJSON  Format = "json"
	FormatPDF   Format = "pdf"
	FormatExcel Format = "excel"
)

// ParseFormat converts a request parameter to a Format. Empty means PDF.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pdf":
		return FormatPDF, nil
	case "excel", "xlsx":
		return FormatExcel, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Extension returns the file extension without the dot.
func (f Format) Extension() string {
	if f == FormatExcel {
		return "xlsx"
	}
	return string(f)
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatExcel:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/json"
}

// Filename builds the download name, e.g. SME_001_financial_report_20240315.pdf.
func Filename(businessID string, f Format, at time.Time) string {
	return fmt.Sprintf("%s_financial_report_%s.%s", businessID, at.Format("20060102"), f.Extension())
}

// Metadata identifies the business and version of a JSON report.
type Metadata struct {
	BusinessID    string `json:"business_id"`
	Industry      string `json:"industry"`
	ReportDate    string `json:"report_date"`
	ReportVersion string `json:"report_version"`
}

// Report is the JSON report document.
type Report struct {
	Metadata          Metadata                     `json:"metadata"`
	FinancialAnalysis *models.AnalysisResult       `json:"financial_analysis"`
	Recommendations   *models.RecommendationResult `json:"recommendations"`
	GeneratedAt       string                       `json:"generated_at"`
}

// Generator renders reports.
type Generator struct {
	now func() time.Time
}

// NewGenerator creates a report generator.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// NewGeneratorWithClock creates a generator that stamps reports with now.
func NewGeneratorWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Now returns the generator's current time.
func (g *Generator) Now() time.Time {
	return g.now()
}

// JSON builds the JSON report document.
func (g *Generator) JSON(r *models.FinancialRecord, a *models.AnalysisResult, rec *models.RecommendationResult) (*Report, error) {
	if r.IsEmpty() || a == nil {
		return nil, ErrInsufficientData
	}

	return &Report{
		Metadata: Metadata{
			BusinessID:    r.BusinessID,
			Industry:      r.Industry(),
			ReportDate:    a.AnalysisDate,
			ReportVersion: Version,
		},
		FinancialAnalysis: a,
		Recommendations:   rec,
		GeneratedAt:       g.now().Format(time.RFC3339),
	}, nil
}
