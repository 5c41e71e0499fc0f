package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"sme-financial-health/internal/services/assessment"
	"sme-financial-health/internal/services/dataset"
	"sme-financial-health/internal/services/translation"
)

type analyzedBusiness struct {
	BusinessID      string      `json:"business_id"`
	Analysis        interface{} `json:"analysis"`
	Recommendations interface{} `json:"recommendations"`
}

func analyzeCmd() *cobra.Command {
	var (
		language  string
		isDataset bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze every business in a statement file",
		Long: `Analyze every business in a CSV or XLSX statement file and print the
analysis and recommendations as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !translation.IsSupported(language) {
				return fmt.Errorf("unsupported language %q", language)
			}

			records, err := loadRecords(cmd.Context(), args[0], isDataset)
			if err != nil {
				return err
			}

			svc := assessment.NewService(dataset.NewMemorySource(), nil)
			results := make([]analyzedBusiness, 0, len(records))
			for _, r := range records {
				out, err := svc.AssessRecord(cmd.Context(), r)
				if err != nil {
					return fmt.Errorf("%s: %w", r.BusinessID, err)
				}

				entry := analyzedBusiness{
					BusinessID:      out.BusinessID,
					Analysis:        out.Analysis,
					Recommendations: out.Recommendations,
				}
				if language != translation.English {
					if entry.Analysis, err = translation.TranslateAnalysis(out.Analysis, language); err != nil {
						return err
					}
				}
				results = append(results, entry)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", translation.English, "display language (en, hi)")
	cmd.Flags().BoolVar(&isDataset, "dataset", false, "parse the file as a reference dataset")

	return cmd
}
