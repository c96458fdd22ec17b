package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/corpuscan/corpuscan/internal/config"
	"github.com/corpuscan/corpuscan/internal/database"
	"github.com/corpuscan/corpuscan/internal/model"
)

// NewCompareCmd creates the compare command.
// This command compares corpus reports stored in the history database.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare corpus reports from the history database",
		Long: `Compare shows how the corpus changed between analyzer runs.

Each 'corpuscan analyze' run stores its report in a local history
database. This command compares the two most recent reports and shows
changes in corpus size, vocabulary, the top of the frequency table and
the readability scalars.

Examples:
  # Compare the two most recent reports
  corpuscan compare

  # List all stored reports
  corpuscan compare --list

  # Compare the latest report with a specific historical one
  corpuscan compare --with-id 3

  # Output the comparison as JSON
  corpuscan compare --json`,
		Args: cobra.NoArgs,
		RunE: runCompareCmd,
	}

	cmd.Flags().BoolP("list", "l", false,
		"List stored reports instead of comparing")
	cmd.Flags().Int64P("with-id", "i", 0,
		"Compare the latest report with this report ID (use --list to see IDs)")
	cmd.Flags().BoolP("json", "j", false,
		"Output comparison result in JSON format")

	return cmd
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, _ []string) error {
	db, err := database.Open(config.XDGDataDir(), database.Options{
		CreateIfNotExists: false,
		EnableWAL:         true,
	})
	if err != nil {
		return fmt.Errorf("no report history found (run 'corpuscan analyze' first): %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	list, err := cmd.Flags().GetBool("list")
	if err != nil {
		return err
	}
	if list {
		return listReports(ctx, cmd, db)
	}

	withID, err := cmd.Flags().GetInt64("with-id")
	if err != nil {
		return err
	}
	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	current, previous, err := selectReports(ctx, db, withID)
	if err != nil {
		return err
	}

	comparison := compareReports(previous, current)
	if jsonOutput {
		data, err := json.MarshalIndent(comparison, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	printComparison(cmd, comparison)
	return nil
}

// listReports prints the stored report metadata, newest first.
func listReports(ctx context.Context, cmd *cobra.Command, db *database.ReportDB) error {
	reports, err := db.ListReports(ctx)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No reports stored yet.")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%-5s %-20s %-10s %-12s %-12s\n",
		"ID", "TIMESTAMP", "DOCS", "WORDS", "UNIQUE")
	for _, r := range reports {
		fmt.Fprintf(cmd.OutOrStdout(), "%-5d %-20s %-10d %-12d %-12d\n",
			r.ID, r.Timestamp.Format(time.DateTime), r.Documents, r.TotalWords, r.UniqueWords)
	}
	return nil
}

// selectReports picks the pair to compare: the latest report against
// either a specific historical ID or the second most recent report.
func selectReports(ctx context.Context, db *database.ReportDB, withID int64) (current, previous *model.CorpusReport, err error) {
	latest, err := db.LatestReports(ctx, 2)
	if err != nil {
		return nil, nil, err
	}
	if len(latest) == 0 {
		return nil, nil, errors.New("no reports stored yet (run 'corpuscan analyze' first)")
	}
	current = latest[0]

	if withID > 0 {
		previous, err = db.GetReportByID(ctx, withID)
		if err != nil {
			return nil, nil, err
		}
		if previous == nil {
			return nil, nil, fmt.Errorf("report %d not found (use --list to see IDs)", withID)
		}
		return current, previous, nil
	}

	if len(latest) < 2 {
		return nil, nil, errors.New("need at least two reports to compare (run 'corpuscan analyze' again)")
	}
	return current, latest[1], nil
}

// ReportComparison summarizes the differences between two corpus reports.
type ReportComparison struct {
	// PreviousTimestamp is when the older report was produced.
	PreviousTimestamp time.Time `json:"previous_timestamp"`

	// CurrentTimestamp is when the newer report was produced.
	CurrentTimestamp time.Time `json:"current_timestamp"`

	// DocumentsDelta is the change in documents processed.
	DocumentsDelta int `json:"documents_delta"`

	// TotalWordsDelta is the change in total token count.
	TotalWordsDelta int `json:"total_words_delta"`

	// UniqueWordsDelta is the change in distinct token count.
	UniqueWordsDelta int `json:"unique_words_delta"`

	// NewTopWords are tokens that entered the frequency table.
	NewTopWords []string `json:"new_top_words"`

	// DroppedTopWords are tokens that left the frequency table.
	DroppedTopWords []string `json:"dropped_top_words"`

	// AvgSentenceLengthDelta is the change in mean sentence token count.
	AvgSentenceLengthDelta float64 `json:"avg_sentence_length_delta"`

	// AvgWordLengthDelta is the change in mean token character length.
	AvgWordLengthDelta float64 `json:"avg_word_length_delta"`

	// ComplexityScoreDelta is the change in lexical diversity.
	ComplexityScoreDelta float64 `json:"complexity_score_delta"`
}

// compareReports diffs two reports, older first.
func compareReports(previous, current *model.CorpusReport) *ReportComparison {
	c := &ReportComparison{
		PreviousTimestamp:      previous.ProcessingTimestamp,
		CurrentTimestamp:       current.ProcessingTimestamp,
		DocumentsDelta:         current.DocumentsProcessed - previous.DocumentsProcessed,
		TotalWordsDelta:        current.TotalWords - previous.TotalWords,
		UniqueWordsDelta:       current.UniqueWords - previous.UniqueWords,
		NewTopWords:            make([]string, 0),
		DroppedTopWords:        make([]string, 0),
		AvgSentenceLengthDelta: current.Readability.AvgSentenceLength - previous.Readability.AvgSentenceLength,
		AvgWordLengthDelta:     current.Readability.AvgWordLength - previous.Readability.AvgWordLength,
		ComplexityScoreDelta:   current.Readability.ComplexityScore - previous.Readability.ComplexityScore,
	}

	prevWords := make(map[string]struct{}, len(previous.TopWords))
	for _, w := range previous.TopWords {
		prevWords[w.Word] = struct{}{}
	}
	currWords := make(map[string]struct{}, len(current.TopWords))
	for _, w := range current.TopWords {
		currWords[w.Word] = struct{}{}
	}

	for _, w := range current.TopWords {
		if _, ok := prevWords[w.Word]; !ok {
			c.NewTopWords = append(c.NewTopWords, w.Word)
		}
	}
	for _, w := range previous.TopWords {
		if _, ok := currWords[w.Word]; !ok {
			c.DroppedTopWords = append(c.DroppedTopWords, w.Word)
		}
	}
	return c
}

// printComparison renders the comparison as plain text.
func printComparison(cmd *cobra.Command, c *ReportComparison) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Comparing reports: %s -> %s\n\n",
		c.PreviousTimestamp.Format(time.DateTime),
		c.CurrentTimestamp.Format(time.DateTime))
	fmt.Fprintf(out, "  Documents:    %+d\n", c.DocumentsDelta)
	fmt.Fprintf(out, "  Total words:  %+d\n", c.TotalWordsDelta)
	fmt.Fprintf(out, "  Unique words: %+d\n", c.UniqueWordsDelta)
	fmt.Fprintf(out, "\nReadability drift:\n")
	fmt.Fprintf(out, "  Avg sentence length: %+.3f\n", c.AvgSentenceLengthDelta)
	fmt.Fprintf(out, "  Avg word length:     %+.3f\n", c.AvgWordLengthDelta)
	fmt.Fprintf(out, "  Complexity score:    %+.3f\n", c.ComplexityScoreDelta)

	if len(c.NewTopWords) > 0 {
		fmt.Fprintf(out, "\nEntered the frequency table (%d):\n", len(c.NewTopWords))
		for _, w := range c.NewTopWords {
			fmt.Fprintf(out, "  + %s\n", w)
		}
	}
	if len(c.DroppedTopWords) > 0 {
		fmt.Fprintf(out, "\nLeft the frequency table (%d):\n", len(c.DroppedTopWords))
		for _, w := range c.DroppedTopWords {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}
	if len(c.NewTopWords) == 0 && len(c.DroppedTopWords) == 0 {
		fmt.Fprintln(out, "\nFrequency table membership is unchanged.")
	}
}
