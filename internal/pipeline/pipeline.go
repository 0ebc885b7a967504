// Package pipeline runs the read → parse → normalize → write sequence.
//
// Each stage returns a value or an error, and the first error stops the run:
// later stages do not execute and no output is written. Errors that belong
// to the model.AppError taxonomy are returned unwrapped so the caller can
// render them; unclassified faults are returned as they came from the stage.
package pipeline

import (
	"context"

	"github.com/mmr-tortoise/minmax/internal/fileio"
	"github.com/mmr-tortoise/minmax/internal/logger"
	"github.com/mmr-tortoise/minmax/internal/model"
	"github.com/mmr-tortoise/minmax/internal/normalize"
	"github.com/mmr-tortoise/minmax/internal/parse"
)

// Fixed file locations. They are intentionally not configurable.
const (
	InputPath  = "foo.txt"
	OutputPath = "bar.txt"
)

// Run normalizes the numbers in inPath and writes them to outPath.
func Run(ctx context.Context, inPath, outPath string, log logger.Logger) error {
	if log == nil {
		log = logger.Nop()
	}

	text, err := fileio.ReadText(inPath)
	if err != nil {
		return err
	}
	log.Debug("read input", "path", inPath, "bytes", len(text))

	if err := ctx.Err(); err != nil {
		return err
	}
	values, err := parse.ParseLines(text)
	if err != nil {
		return err
	}
	log.Debug("parsed values", "count", len(values))

	normalized, err := normalize.Normalize(values)
	if err != nil {
		return err
	}
	log.Debug("normalized values", "count", len(normalized))

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fileio.WriteLines(outPath, normalized); err != nil {
		return err
	}
	log.Debug("wrote output", "path", outPath, "lines", len(normalized))
	return nil
}

// Report is the result of Check.
type Report struct {
	Path  string `json:"path"`
	Lines int    `json:"lines"`

	// Summary covers the lines that parsed.
	Summary normalize.Summary `json:"summary"`

	// LineErrors holds one entry per line that did not parse, in order.
	LineErrors []*model.LineError `json:"-"`

	// NormalizeErr is set when the parsed values cannot be normalized.
	NormalizeErr error `json:"-"`
}

// Err returns the error a Run on the same input would have stopped at,
// or nil when the input would normalize cleanly.
func (r *Report) Err() error {
	if len(r.LineErrors) > 0 {
		return r.LineErrors[0]
	}
	return r.NormalizeErr
}

// Check reads and parses inPath without writing anything. Unlike Run it
// collects every bad line. A file error or unclassified fault is returned
// as the error; parse and normalize problems are reported through the
// Report (see Report.Err).
func Check(ctx context.Context, inPath string, log logger.Logger) (*Report, error) {
	if log == nil {
		log = logger.Nop()
	}

	text, err := fileio.ReadText(inPath)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	values, lineErrs := parse.ParseAll(text)
	report := &Report{
		Path:       inPath,
		Lines:      len(values) + len(lineErrs),
		LineErrors: lineErrs,
	}
	log.Debug("checked input", "path", inPath, "lines", report.Lines, "bad", len(lineErrs))

	report.Summary, report.NormalizeErr = normalize.Summarize(values)
	if report.NormalizeErr != nil {
		log.Debug("input cannot be normalized", "err", report.NormalizeErr)
	}
	return report, nil
}
