package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corpuscan/corpuscan/internal/config"
	"github.com/corpuscan/corpuscan/internal/fetcher"
	"github.com/corpuscan/corpuscan/internal/log"
)

// NewFetchCmd creates the fetch command.
func NewFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch [url...]",
		Short: "Fetch a batch of URLs and record per-URL metrics",
		Long: `Fetch downloads a list of URLs and writes three files into the output
directory: responses.json with one result per URL, summary.json with
batch aggregates, and errors.log with one line per failed request.
Failures never abort the batch; every input URL yields a result.

With --seed, successfully fetched text documents are additionally saved
into the shared area's raw directory and the fetch completion marker is
written last, which starts a waiting processor stage.

Examples:
  # Fetch URLs given as arguments
  corpuscan fetch https://example.com https://example.org

  # Fetch URLs from a file, one per line
  corpuscan fetch --list urls.txt

  # Fetch and seed the pipeline's raw area
  corpuscan fetch --list urls.txt --seed --shared /shared`,
		Args: cobra.ArbitraryArgs,
		RunE: runFetchCmd,
	}

	addPipelineFlags(cmd)
	cmd.Flags().StringP("list", "l", "",
		"File containing URLs to fetch, one per line")
	cmd.Flags().StringP("output", "o", "fetch_output",
		"Directory for responses.json, summary.json and errors.log")
	cmd.Flags().DurationP("timeout", "t", config.DefaultFetchTimeout,
		"Timeout for each HTTP request")
	cmd.Flags().IntP("concurrency", "C", config.DefaultFetchConcurrency,
		"Number of parallel fetches")
	cmd.Flags().Bool("seed", false,
		"Save fetched text documents into the shared raw area and write the fetch marker")

	return cmd
}

// runFetchCmd executes the fetch command.
func runFetchCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("timeout") {
		cfg.FetchTimeout, err = cmd.Flags().GetDuration("timeout")
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.FetchConcurrency, err = cmd.Flags().GetInt("concurrency")
		if err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	listPath, err := cmd.Flags().GetString("list")
	if err != nil {
		return err
	}
	outputDir, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	seed, err := cmd.Flags().GetBool("seed")
	if err != nil {
		return err
	}

	urls, err := collectURLs(args, listPath)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		return errors.New("no URLs provided (pass URLs as arguments or use --list)")
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	ctx, cancel := signalContext(logger)
	defer cancel()

	f := fetcher.New(cfg, fetcher.WithLogger(log.WithStage(logger, "fetcher")))

	batch, err := f.Run(ctx, urls)
	if err != nil {
		return err
	}
	if err := f.WriteResults(outputDir, batch); err != nil {
		return err
	}

	summary := batch.Summary()
	fmt.Fprintf(cmd.OutOrStdout(), "Fetched %d URLs: %d ok, %d failed (%.1f ms avg)\n",
		summary.TotalURLs, summary.SuccessfulRequests, summary.FailedRequests,
		summary.AverageResponseTimeMS)

	if seed {
		saved, err := f.SaveRaw(batch)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d raw documents into %s\n", saved, cfg.RawDir())
	}
	return nil
}

// collectURLs merges positional arguments with the optional list file.
// Blank lines and #-comments in the file are ignored.
func collectURLs(args []string, listPath string) ([]string, error) {
	urls := make([]string, 0, len(args))
	urls = append(urls, args...)

	if listPath == "" {
		return urls, nil
	}

	f, err := os.Open(listPath) //nolint:gosec // User-provided list path
	if err != nil {
		return nil, fmt.Errorf("failed to open URL list: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read URL list: %w", err)
	}
	return urls, nil
}
