package app

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/zjy-dev/lcov-report/internal/report"
)

// NewSummaryCommand creates the "summary" subcommand.
func NewSummaryCommand() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print total coverage for an lcov tracefile.",
		Long: `Print the three-line total coverage summary (lines, functions,
branches) for an lcov tracefile.

Examples:
  lcov-report summary --input coverage/lcov.info`,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadRecords(inputPath, afero.NewOsFs())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Summarize(records))
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "lcov.info", "Path to the lcov tracefile")

	return cmd
}
