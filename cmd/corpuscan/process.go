package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/corpuscan/corpuscan/internal/config"
	"github.com/corpuscan/corpuscan/internal/log"
	"github.com/corpuscan/corpuscan/internal/processor"
)

// NewProcessCmd creates the process command.
func NewProcessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process",
		Short: "Run the document processing stage",
		Long: `Process waits for the upstream fetch marker, converts every raw HTML
document in the shared area into a normalized JSON record, and publishes
the processing completion marker once the whole batch is on disk.

The wait has no timeout: if the upstream stage never completes, this
stage blocks until interrupted. Documents that cannot be read are
skipped and logged; the batch continues without them.

Examples:
  # Process the default /shared area
  corpuscan process

  # Process a custom shared area with faster polling
  corpuscan process --shared /data/corpus --poll-interval 500ms

  # Accept .htm files instead of .html
  corpuscan process --extension .htm`,
		Args: cobra.NoArgs,
		RunE: runProcessCmd,
	}

	addPipelineFlags(cmd)
	cmd.Flags().StringP("extension", "e", config.DefaultRawExtension,
		"File extension recognized in the raw input area")

	return cmd
}

// runProcessCmd executes the process command.
func runProcessCmd(cmd *cobra.Command, _ []string) error {
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

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	ctx, cancel := signalContext(logger)
	defer cancel()

	p := processor.New(cfg, processor.WithLogger(log.WithStage(logger, "processor")))
	return p.Run(ctx)
}
