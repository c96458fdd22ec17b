// Package main provides the entry point for the corpuscan CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/corpuscan/corpuscan/internal/config"
	"github.com/corpuscan/corpuscan/internal/log"
)

// NewRootCmd creates the root command for corpuscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpuscan",
		Short: "Batch text-corpus pipeline over a shared filesystem",
		Long: `Corpuscan processes and analyzes text corpora in independent batch stages.

Stages coordinate through sentinel marker files in a shared directory:
the processor waits for the fetch marker, converts raw HTML into
normalized JSON records and publishes its own marker; the analyzer waits
for that marker, aggregates the records into a corpus report and
publishes the final marker. Each stage can run in its own container as
long as the shared directory is mounted in both.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewProcessCmd())
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewFetchCmd())
	cmd.AddCommand(NewArxivCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	return log.NewLogger(os.Stderr, verbose)
}

// signalContext returns a context cancelled on SIGINT or SIGTERM, so a
// stage stuck polling for a marker can be shut down cleanly.
func signalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// applyConfigFile merges the optional .corpuscan file into cfg.
// An explicit --config path that does not exist is an error; an absent
// default file is not.
func applyConfigFile(cfg *config.Config) error {
	explicit := cfg.ConfigFilePath != ""
	path := config.FindConfigFile(cfg.ConfigFilePath)

	if path == "" {
		if explicit {
			return fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
		}
		return nil
	}

	file, err := config.LoadConfigFile(path)
	if err != nil {
		return fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	file.ApplyTo(cfg)
	return nil
}

// buildConfig creates a Config from shared pipeline flags. The config
// file is applied first so flags changed on the command line win.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if err := applyConfigFile(cfg); err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("shared") {
		cfg.SharedDir, err = cmd.Flags().GetString("shared")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("poll-interval") {
		cfg.PollInterval, err = cmd.Flags().GetDuration("poll-interval")
		if err != nil {
			return nil, err
		}
	}

	cfg.Verbose = getVerboseFlag(cmd)
	return cfg, nil
}

// addPipelineFlags registers the flags shared by the pipeline commands.
func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("shared", "s", config.DefaultSharedDir,
		"Shared filesystem area used for stage hand-off")
	cmd.Flags().DurationP("poll-interval", "p", config.DefaultPollInterval,
		"Delay between marker existence checks")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .corpuscan in current or home directory)")
}
