// Package cli — check.go implements the "minmax check" command.
//
// The check command reads and parses foo.txt without writing bar.txt.
// Unlike the root command it lists every line that does not parse, and it
// reports the count, minimum and maximum of the values that did.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/minmax/internal/fileio"
	"github.com/mmr-tortoise/minmax/internal/model"
	"github.com/mmr-tortoise/minmax/internal/pipeline"
)

// checkFlags holds the flag values for the check command.
type checkFlags struct {
	// maxErrors limits how many bad lines are printed. 0 prints all.
	maxErrors int
}

// NewCheckCommand creates the "check" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate foo.txt without writing output",
		Long: `Validate foo.txt and report what a normal run would do, without
writing bar.txt.

Every line that is not a number is listed. The exit status is the same as
a normal run would have: non-zero when the input cannot be normalized.

Examples:
  minmax check
  minmax check --max-errors 5
  minmax check --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().IntVar(&flags.maxErrors, "max-errors", 0,
		"Maximum number of invalid lines to list (0 = all)")

	return cmd
}

// runCheck validates the input and prints the report. A report is printed
// whenever the file could be read; the returned error then carries the
// first problem so the exit status matches a normal run.
func runCheck(ctx context.Context, w io.Writer, flags *checkFlags) error {
	if flags.maxErrors < 0 {
		return model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("invalid --max-errors %d: must be zero or positive", flags.maxErrors))
	}

	report, err := pipeline.Check(ctx, pipeline.InputPath, log)
	if err != nil {
		return model.FromPipelineError(err)
	}
	VerboseLog("Checked %d lines, %d invalid", report.Lines, len(report.LineErrors))

	printCheckResult(w, report, flags.maxErrors)

	if err := report.Err(); err != nil {
		return model.FromPipelineError(err)
	}
	return nil
}

// printCheckResult outputs the report in text or JSON format,
// depending on the global --json flag.
func printCheckResult(w io.Writer, report *pipeline.Report, maxErrors int) {
	if IsJSONOutput() {
		printCheckResultJSON(w, report, maxErrors)
	} else {
		printCheckResultText(w, report, maxErrors)
	}
}

// checkReportJSON is the JSON output structure of the check command.
type checkReportJSON struct {
	Path         string            `json:"path"`
	Lines        int               `json:"lines"`
	Values       int               `json:"values"`
	Min          *float64          `json:"min,omitempty"`
	Max          *float64          `json:"max,omitempty"`
	Normalizable bool              `json:"normalizable"`
	InvalidLines []invalidLineJSON `json:"invalidLines"`
}

// invalidLineJSON describes one line that did not parse.
type invalidLineJSON struct {
	Line    int    `json:"line"`
	Kind    string `json:"kind"`
	Text    string `json:"text"`
	Message string `json:"message"`
}

func printCheckResultJSON(w io.Writer, report *pipeline.Report, maxErrors int) {
	result := checkReportJSON{
		Path:         report.Path,
		Lines:        report.Lines,
		Values:       report.Summary.Count,
		Normalizable: report.Err() == nil,
		// Use an empty slice instead of nil so JSON shows [] instead of null.
		InvalidLines: make([]invalidLineJSON, 0, len(report.LineErrors)),
	}
	if report.NormalizeErr == nil {
		lo, hi := report.Summary.Min, report.Summary.Max
		result.Min, result.Max = &lo, &hi
	}

	for _, lineErr := range limitLineErrors(report.LineErrors, maxErrors) {
		result.InvalidLines = append(result.InvalidLines, invalidLineJSON{
			Line:    lineErr.Line,
			Kind:    string(lineErr.Err.Kind),
			Text:    lineErr.Err.Text,
			Message: lineErr.Error(),
		})
	}

	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Fprintln(w, string(data))
}

// printCheckResultText outputs the report as human-readable text:
//
//	foo.txt: 5 lines, 5 values, 0 invalid
//	min: 1.0  max: 5.0
func printCheckResultText(w io.Writer, report *pipeline.Report, maxErrors int) {
	fmt.Fprintf(w, "%s: %d lines, %d values, %d invalid\n",
		report.Path, report.Lines, report.Summary.Count, len(report.LineErrors))

	if report.NormalizeErr == nil {
		fmt.Fprintf(w, "min: %s  max: %s\n",
			fileio.FormatValue(report.Summary.Min), fileio.FormatValue(report.Summary.Max))
	}

	shown := limitLineErrors(report.LineErrors, maxErrors)
	for _, lineErr := range shown {
		fmt.Fprintf(w, "  %s\n", lineErr.Error())
	}
	if hidden := len(report.LineErrors) - len(shown); hidden > 0 {
		fmt.Fprintf(w, "  ... and %d more\n", hidden)
	}
}

// limitLineErrors returns at most limit entries of errs; limit <= 0 means all.
func limitLineErrors(errs []*model.LineError, limit int) []*model.LineError {
	if limit <= 0 || len(errs) <= limit {
		return errs
	}
	return errs[:limit]
}
