package pipeline

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/matzehuels/hexglyph/pkg/notation"
)

// ScanCSV returns the specs referenced by image cells in a CSV file, in
// file order. A cell counts when it carries prefix and ends in ".png".
// Rows may have any number of fields. Duplicates are kept.
func ScanCSV(r io.Reader, prefix string) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	var specs []string
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return specs, nil
		}
		if err != nil {
			return specs, fmt.Errorf("read csv: %w", err)
		}
		for _, cell := range row {
			if notation.IsReference(cell, prefix) {
				specs = append(specs, notation.Normalize(cell, prefix))
			}
		}
	}
}

// BatchResult is the outcome of rendering one spec in a batch.
type BatchResult struct {
	Spec    string
	Path    string // set on success
	Err     error  // set on failure or skip
	Skipped bool   // spec failed validation and was not rendered
}

// BatchSummary counts batch outcomes.
type BatchSummary struct {
	Rendered int
	Skipped  int
	Failed   int
}

// Summarize counts results by outcome.
func Summarize(results []BatchResult) BatchSummary {
	var s BatchSummary
	for _, res := range results {
		switch {
		case res.Skipped:
			s.Skipped++
		case res.Err != nil:
			s.Failed++
		default:
			s.Rendered++
		}
	}
	return s
}

// RenderBatch renders every spec into outDir. Invalid specs are skipped with
// a warning and failures are logged; neither stops the batch. When ctx is
// cancelled the remaining specs are reported with the context error.
func (r *Runner) RenderBatch(ctx context.Context, specs []string, outDir string) []BatchResult {
	parser := r.Options.Parser()
	results := make([]BatchResult, 0, len(specs))

	for i, spec := range specs {
		if err := ctx.Err(); err != nil {
			for _, rest := range specs[i:] {
				results = append(results, BatchResult{Spec: rest, Err: err})
			}
			break
		}

		if _, err := parser.Parse(spec); err != nil {
			r.Logger.Warn("skipping invalid spec", "spec", spec, "error", err)
			results = append(results, BatchResult{Spec: spec, Err: err, Skipped: true})
			continue
		}

		path, err := r.Render(ctx, spec, outDir)
		if err != nil {
			r.Logger.Error("render failed", "spec", spec, "error", err)
		}
		results = append(results, BatchResult{Spec: spec, Path: path, Err: err})
	}

	sum := Summarize(results)
	r.Logger.Info("batch complete",
		"rendered", sum.Rendered,
		"skipped", sum.Skipped,
		"failed", sum.Failed)
	return results
}
