package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/corpuscan/corpuscan/internal/analyzer"
	"github.com/corpuscan/corpuscan/internal/config"
	"github.com/corpuscan/corpuscan/internal/database"
	"github.com/corpuscan/corpuscan/internal/log"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the corpus analysis stage",
		Long: `Analyze waits for the processing completion marker, loads every
normalized record from the shared area and writes a single corpus
report: word frequencies, pairwise document similarity, n-gram tables
and readability scores. Its own completion marker is written only after
the report is fully on disk.

After reporting, the stage stays alive for a linger window so an
external monitor can observe the finished pipeline; set --linger 0 to
exit immediately. Each completed run is also saved to a local history
database for later comparison with 'corpuscan compare'.

Examples:
  # Analyze the default /shared area
  corpuscan analyze

  # Exit immediately after writing the report
  corpuscan analyze --linger 0

  # Also write a Markdown rendering next to the JSON report
  corpuscan analyze --markdown

  # Keep a smaller frequency table
  corpuscan analyze --top-words 50 --top-ngrams 10`,
		Args: cobra.NoArgs,
		RunE: runAnalyzeCmd,
	}

	addPipelineFlags(cmd)
	cmd.Flags().DurationP("linger", "l", config.DefaultLingerDuration,
		"How long to stay alive after the report is written (0 exits immediately)")
	cmd.Flags().IntP("top-words", "w", config.DefaultTopWords,
		"Number of entries in the word frequency table")
	cmd.Flags().IntP("top-ngrams", "n", config.DefaultTopNgrams,
		"Number of entries in the bigram and trigram tables")
	cmd.Flags().BoolP("markdown", "m", false,
		"Additionally write a Markdown report next to the JSON report")
	cmd.Flags().Bool("no-history", false,
		"Do not save this run to the report history database")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("linger") {
		cfg.LingerDuration, err = cmd.Flags().GetDuration("linger")
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("top-words") {
		cfg.TopWords, err = cmd.Flags().GetInt("top-words")
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("top-ngrams") {
		cfg.TopNgrams, err = cmd.Flags().GetInt("top-ngrams")
		if err != nil {
			return err
		}
	}
	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}

	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return err
	}
	if !noHistory {
		cfg.SaveToDB = true
		cfg.DBDir = config.XDGDataDir()
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	ctx, cancel := signalContext(logger)
	defer cancel()

	opts := []analyzer.Option{analyzer.WithLogger(log.WithStage(logger, "analyzer"))}
	if cfg.SaveToDB {
		db, err := database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		defer db.Close()
		opts = append(opts, analyzer.WithDatabase(db))
	}

	a := analyzer.New(cfg, opts...)
	return a.Run(ctx)
}
