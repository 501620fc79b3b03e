package app

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/zjy-dev/lcov-report/internal/comment"
	"github.com/zjy-dev/lcov-report/internal/config"
	"github.com/zjy-dev/lcov-report/internal/lcov"
	"github.com/zjy-dev/lcov-report/internal/logger"
	"github.com/zjy-dev/lcov-report/internal/report"
)

// NewCommentCommand creates the "comment" subcommand.
func NewCommentCommand() *cobra.Command {
	var (
		inputPath  string
		outputPath string
		title      string
		marker     string
	)

	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Render an lcov tracefile as a coverage comment.",
		Long: `Render an lcov tracefile as a markdown coverage comment.

The comment contains the total coverage summary and a collapsible
per-file breakdown table, plus a hidden marker line so that a repeated
run can recognize and replace its own previous output.

Configuration:
  Default values are loaded from configs/report.yaml when present.
  Command line flags override the config file values.

Examples:
  # Print the comment to stdout
  lcov-report comment --input coverage/lcov.info

  # Write (or update) a comment file
  lcov-report comment --input lcov.info --output coverage-comment.md`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadReport()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Config values are defaults, command line flags override.
			if cmd.Flags().Changed("input") {
				cfg.InputPath = inputPath
			}
			if cmd.Flags().Changed("output") {
				cfg.OutputPath = outputPath
			}
			if cmd.Flags().Changed("title") {
				cfg.Title = title
			}
			if cmd.Flags().Changed("marker") {
				cfg.Marker = marker
			}
			if cfg.Marker == "" {
				cfg.Marker = comment.DefaultMarker
			}

			logger.Init(cfg.LogLevel)

			return runComment(cfg, afero.NewOsFs(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "lcov.info", "Path to the lcov tracefile")
	cmd.Flags().StringVar(&outputPath, "output", "", "Comment file to write (default: stdout)")
	cmd.Flags().StringVar(&title, "title", "Coverage Report", "Heading of the generated comment")
	cmd.Flags().StringVar(&marker, "marker", comment.DefaultMarker, "Marker line identifying this tool's comments")

	return cmd
}

func runComment(cfg *config.Config, fs afero.Fs, stdout io.Writer) error {
	records, err := loadRecords(cfg.InputPath, fs)
	if err != nil {
		return err
	}
	logger.Info("parsed %d coverage records from %s", len(records), cfg.InputPath)

	summary := report.Summarize(records)
	table := report.RenderTable(records)
	body := comment.Build(cfg.Title, summary, table, cfg.Marker)

	var sink comment.Sink
	if cfg.OutputPath == "" {
		sink = comment.NewWriterSink(stdout)
	} else {
		sink = comment.NewFileSink(fs, cfg.OutputPath, cfg.Marker)
	}

	if err := sink.Publish(body); err != nil {
		return fmt.Errorf("failed to publish comment: %w", err)
	}
	if cfg.OutputPath != "" {
		logger.Info("published comment to %s", cfg.OutputPath)
	}
	return nil
}

// loadRecords reads and parses the tracefile. The parser itself never
// fails, so zero records out of a readable file is the caller-side
// error condition.
func loadRecords(path string, fs afero.Fs) ([]*lcov.FileRecord, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lcov file %s: %w", path, err)
	}

	records := lcov.Parse(string(data))
	if len(records) == 0 {
		return nil, fmt.Errorf("no coverage records found in %s", path)
	}
	return records, nil
}
