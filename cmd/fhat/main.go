// Command fhat analyzes SME financial statements from the command line.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sme-financial-health/internal/utils"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "fhat",
		Short: "Financial health assessment tool for SMEs",
		Long: `fhat scores the financial health of small businesses from CSV or XLSX
statements, renders PDF, Excel or JSON reports and repairs malformed
dataset files.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return utils.InitLogger(logLevel)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			utils.Sync()
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(analyzeCmd())
	cmd.AddCommand(reportCmd())
	cmd.AddCommand(cleanCmd())

	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
