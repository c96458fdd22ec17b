package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/corpuscan/corpuscan/internal/arxiv"
	"github.com/corpuscan/corpuscan/internal/log"
)

// maxArxivResults is the largest batch one query is allowed to request.
// The API itself accepts more, but abstracts beyond this bound belong in
// several throttle-friendly queries.
const maxArxivResults = 100

// NewArxivCmd creates the arxiv command.
func NewArxivCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arxiv <query>",
		Short: "Build an abstract corpus from an ArXiv query",
		Long: `Arxiv queries the ArXiv Atom API and analyzes the returned abstracts.

Two files are written into the output directory: papers.json with every
valid entry and its abstract statistics, and corpus_analysis.json with
corpus-wide aggregates (stopword-filtered frequency table with document
counts, technical terms, category distribution). Entries missing
required fields are skipped; HTTP 429 responses are retried with
backoff.

Examples:
  # Fetch 10 machine learning abstracts
  corpuscan arxiv 'cat:cs.LG' --max-results 10

  # Write the corpus into a custom directory
  corpuscan arxiv 'all:transformer' -o ./corpus`,
		Args: cobra.ExactArgs(1),
		RunE: runArxivCmd,
	}

	addPipelineFlags(cmd)
	cmd.Flags().IntP("max-results", "m", 10,
		"Maximum number of entries to request (1-100)")
	cmd.Flags().StringP("output", "o", "arxiv_output",
		"Directory for papers.json and corpus_analysis.json")

	return cmd
}

// runArxivCmd executes the arxiv command.
func runArxivCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	maxResults, err := cmd.Flags().GetInt("max-results")
	if err != nil {
		return err
	}
	if maxResults < 1 || maxResults > maxArxivResults {
		return fmt.Errorf("max-results must be between 1 and %d, got %d", maxArxivResults, maxResults)
	}

	outputDir, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	ctx, cancel := signalContext(logger)
	defer cancel()

	p := arxiv.NewProcessor(cfg, arxiv.WithLogger(log.WithStage(logger, "arxiv")))
	return p.Process(ctx, args[0], maxResults, outputDir)
}
