package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/corpuscan/corpuscan/internal/analyzer"
	"github.com/corpuscan/corpuscan/internal/config"
	"github.com/corpuscan/corpuscan/internal/log"
	"github.com/corpuscan/corpuscan/internal/pipeline"
	"github.com/corpuscan/corpuscan/internal/processor"
)

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run processor and analyzer in sequence",
		Long: `Run executes the processing and analysis stages back to back in one
process. The stages still communicate exclusively through the shared
area and its markers, so the on-disk outcome is identical to running
'corpuscan process' and 'corpuscan analyze' in separate containers.

This is the convenient form for local runs and CI. The analyzer's
linger window defaults to 0 here since there is no external monitor to
keep the process alive for.

Examples:
  # Run the whole pipeline over /shared
  corpuscan run

  # Run over a scratch area with a Markdown report
  corpuscan run --shared /tmp/corpus --markdown`,
		Args: cobra.NoArgs,
		RunE: runRunCmd,
	}

	addPipelineFlags(cmd)
	cmd.Flags().StringP("extension", "e", config.DefaultRawExtension,
		"File extension recognized in the raw input area")
	cmd.Flags().DurationP("linger", "l", 0,
		"How long the analyzer stays alive after the report is written")
	cmd.Flags().IntP("top-words", "w", config.DefaultTopWords,
		"Number of entries in the word frequency table")
	cmd.Flags().IntP("top-ngrams", "n", config.DefaultTopNgrams,
		"Number of entries in the bigram and trigram tables")
	cmd.Flags().BoolP("markdown", "m", false,
		"Additionally write a Markdown report next to the JSON report")

	return cmd
}

// runRunCmd executes the run command.
func runRunCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("extension") {
		cfg.RawExtension, err = cmd.Flags().GetString("extension")
		if err != nil {
			return err
		}
	}
	cfg.LingerDuration, err = cmd.Flags().GetDuration("linger")
	if err != nil {
		return err
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

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	ctx, cancel := signalContext(logger)
	defer cancel()

	runner := pipeline.NewRunner(
		[]pipeline.Stage{
			processor.New(cfg, processor.WithLogger(log.WithStage(logger, "processor"))),
			analyzer.New(cfg, analyzer.WithLogger(log.WithStage(logger, "analyzer"))),
		},
		pipeline.WithLogger(logger),
	)
	return runner.Run(ctx)
}
