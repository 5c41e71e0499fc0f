package report

import (
	"encoding/json"
	"fmt"

	"sme-financial-health/internal/models"
)

// Render produces the report in format f as bytes.
func (g *Generator) Render(f Format, r *models.FinancialRecord, a *models.AnalysisResult, rec *models.RecommendationResult) ([]byte, error) {
	switch f {
	case FormatPDF:
		return g.PDF(r, a, rec)
	case FormatExcel:
		return g.Excel(r, a, rec)
	case FormatJSON:
		doc, err := g.JSON(r, a, rec)
		if err != nil {
			return nil, err
		}
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal report: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}
