package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"sme-financial-health/internal/services/dataset"
)

func cleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean <in> <out>",
		Short: "Repair a dataset file with run-together rows",
		Long: `Repair a dataset CSV whose rows were run together on one line or split
across lines, writing one business per line.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			repaired, err := dataset.RepairText(string(data))
			if err != nil {
				return err
			}

			if err := os.WriteFile(args[1], []byte(repaired), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", args[1], err)
			}

			rows := strings.Count(strings.TrimRight(repaired, "\n"), "\n")
			fmt.Fprintf(cmd.OutOrStdout(), "Repaired %d rows into %s\n", rows, args[1])
			return nil
		},
	}
}
