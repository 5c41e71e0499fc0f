package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"sme-financial-health/internal/services/assessment"
	"sme-financial-health/internal/services/dataset"
	"sme-financial-health/internal/services/report"
)

func reportCmd() *cobra.Command {
	var (
		format     string
		out        string
		businessID string
		isDataset  bool
	)

	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Write a report for one business",
		Long: `Write a JSON, PDF or Excel report for a business in a statement file.
The first business is used unless --business is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

			records, err := loadRecords(cmd.Context(), args[0], isDataset)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				return report.ErrInsufficientData
			}

			svc := assessment.NewService(dataset.NewMemorySource(records...), nil)
			if businessID == "" {
				businessID = records[0].BusinessID
			}
			result, err := svc.Assess(cmd.Context(), businessID)
			if err != nil {
				return err
			}

			gen := report.NewGenerator()
			data, err := gen.Render(f, result.Record, result.Analysis, result.Recommendations)
			if err != nil {
				return err
			}

			if out == "" {
				out = report.Filename(result.BusinessID, f, gen.Now())
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s report for %s to %s (%s)\n",
				f, result.BusinessID, out, humanize.Bytes(uint64(len(data))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(report.FormatPDF), "report format (json, pdf, excel)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default: <business>_financial_report_<date>.<ext>)")
	cmd.Flags().StringVarP(&businessID, "business", "b", "", "business ID to report on")
	cmd.Flags().BoolVar(&isDataset, "dataset", false, "parse the file as a reference dataset")

	return cmd
}
