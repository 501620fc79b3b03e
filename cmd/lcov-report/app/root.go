package app

import (
	"github.com/spf13/cobra"
)

// NewLcovReportCommand creates the root command for the lcov-report tool.
func NewLcovReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lcov-report",
		Short: "Summarize lcov coverage tracefiles as markdown.",
		Long: `lcov-report parses an lcov tracefile and renders total coverage plus a
per-file breakdown table, ready to be posted as a pull request comment.`,
	}

	cmd.AddCommand(NewSummaryCommand())
	cmd.AddCommand(NewCommentCommand())

	return cmd
}
