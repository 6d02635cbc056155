package tesa

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Column names appended to every batch record.
const (
	LabelColumn = "sentiments"
	ScoreColumn = "scores"
)

// BatchConfig controls ScoreCSV.
type BatchConfig struct {
	TextColumn string // header of the column holding the text
	Comma      rune   // input delimiter
	OutComma   rune   // output delimiter
	Workers    int    // parallel scorers; <= 0 means runtime.NumCPU()
	Options    ScoreOptions
}

// DefaultBatchConfig reads comma-separated input with a "text" column and
// writes semicolon-separated output.
func DefaultBatchConfig() BatchConfig {
	return BatchConfig{
		TextColumn: "text",
		Comma:      ',',
		OutComma:   ';',
		Workers:    runtime.NumCPU(),
		Options:    DefaultScoreOptions(),
	}
}

// ScoreCSV reads a delimited table with a header row from r, scores the
// text column of every record and writes the table to w with LabelColumn
// and ScoreColumn appended. Records are scored independently and written
// in input order.
func (a *Analyzer) ScoreCSV(ctx context.Context, r io.Reader, w io.Writer, cfg BatchConfig) (Summary, error) {
	if cfg.TextColumn == "" {
		cfg.TextColumn = "text"
	}
	if cfg.Comma == 0 {
		cfg.Comma = ','
	}
	if cfg.OutComma == 0 {
		cfg.OutComma = ';'
	}
	cfg.Workers = workerLimit(cfg.Workers)

	in := csv.NewReader(r)
	in.Comma = cfg.Comma
	in.FieldsPerRecord = -1

	header, err := in.Read()
	if errors.Is(err, io.EOF) {
		return Summary{}, &InvalidInputError{Reason: "batch input is empty, header row expected"}
	}
	if err != nil {
		return Summary{}, fmt.Errorf("tesa: reading batch header: %w", err)
	}
	col := columnIndex(header, cfg.TextColumn)
	if col < 0 {
		return Summary{}, &InvalidInputError{Reason: fmt.Sprintf("no %q column in header", cfg.TextColumn)}
	}

	records, err := in.ReadAll()
	if err != nil {
		return Summary{}, fmt.Errorf("tesa: reading batch records: %w", err)
	}

	for i, rec := range records {
		if col >= len(rec) {
			return Summary{}, &InvalidInputError{Reason: fmt.Sprintf("record %d has no %q field", i+1, cfg.TextColumn)}
		}
	}

	results, err := a.scoreRecords(ctx, records, col, cfg)
	if err != nil {
		return Summary{}, err
	}

	out := csv.NewWriter(w)
	out.Comma = cfg.OutComma
	if err := out.Write(append(append([]string(nil), header...), LabelColumn, ScoreColumn)); err != nil {
		return Summary{}, fmt.Errorf("tesa: writing batch header: %w", err)
	}
	for i, rec := range records {
		row := append(append([]string(nil), rec...), results[i].Label.String(), strconv.Itoa(results[i].Score))
		if err := out.Write(row); err != nil {
			return Summary{}, fmt.Errorf("tesa: writing record %d: %w", i+1, err)
		}
	}
	out.Flush()
	if err := out.Error(); err != nil {
		return Summary{}, fmt.Errorf("tesa: writing batch output: %w", err)
	}

	return Summarize(results), nil
}

// ScoreAll scores texts in parallel and returns the results in input order.
// workers <= 0 means runtime.NumCPU().
func (a *Analyzer) ScoreAll(ctx context.Context, texts []string, opts ScoreOptions, workers int) ([]Result, error) {
	records := make([][]string, len(texts))
	for i, t := range texts {
		records[i] = []string{t}
	}
	return a.scoreRecords(ctx, records, 0, BatchConfig{Workers: workerLimit(workers), Options: opts})
}

func workerLimit(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

func (a *Analyzer) scoreRecords(ctx context.Context, records [][]string, col int, cfg BatchConfig) ([]Result, error) {
	results := make([]Result, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerLimit(cfg.Workers))
	for i, rec := range records {
		if gctx.Err() != nil {
			break
		}
		i, rec := i, rec
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := a.Score(rec[col], cfg.Options)
			if err != nil {
				return fmt.Errorf("record %d: %w", i+1, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")), name) {
			return i
		}
	}
	return -1
}
