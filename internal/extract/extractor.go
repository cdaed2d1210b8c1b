package extract

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/phrazzld/lexideck/internal/batch"
	"github.com/phrazzld/lexideck/internal/generation"
)

// DefaultMaxBatchLength bounds the number of characters of input text sent
// with a single generation request.
const DefaultMaxBatchLength = 500

// rowFieldCount is the number of CSV fields expected per extracted row.
const rowFieldCount = 4

// Options adjusts an Extractor. The zero value selects the defaults.
type Options struct {
	// MaxBatchLength overrides DefaultMaxBatchLength when positive.
	MaxBatchLength int

	// Categories overrides the fixed extraction targets when non-empty.
	// Their order determines the query order within each batch.
	Categories []Category
}

// Extractor drives a whole extraction run: it batches the input text,
// queries the generation service once per (batch, category) pair, and folds
// every returned CSV blob into one deduplicated table.
type Extractor struct {
	logger         *slog.Logger
	generator      generation.Generator
	categories     []Category
	maxBatchLength int
}

// NewExtractor creates an Extractor with the provided dependencies.
func NewExtractor(logger *slog.Logger, generator generation.Generator, opts Options) (*Extractor, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}

	maxBatchLength := opts.MaxBatchLength
	if maxBatchLength <= 0 {
		maxBatchLength = DefaultMaxBatchLength
	}

	categories := opts.Categories
	if len(categories) == 0 {
		categories = Categories()
	}

	return &Extractor{
		logger:         logger,
		generator:      generator,
		categories:     categories,
		maxBatchLength: maxBatchLength,
	}, nil
}

// Run extracts flashcard rows from text. The text is expected to be already
// split into phrases or sentences by newlines; every line is treated as a
// unit and is never broken up across generation requests.
func (e *Extractor) Run(ctx context.Context, text, sourceLanguage, targetLanguage string) (*Table, error) {
	batches, err := batch.Split(text, e.maxBatchLength)
	if err != nil {
		return nil, fmt.Errorf("the text could not be split into batches: %w", err)
	}

	e.logger.InfoContext(ctx, "Split text into batches",
		"batch_count", len(batches),
		"max_batch_length", e.maxBatchLength)

	table := NewTable()

	for bi, b := range batches {
		for _, cat := range e.categories {
			prompt, err := cat.Prompt(sourceLanguage, targetLanguage, b)
			if err != nil {
				return nil, err
			}

			reply, err := e.generator.Generate(ctx, prompt)
			if err != nil {
				return nil, fmt.Errorf("generation failed for batch %d, category %s: %w",
					bi+1, cat.Name, err)
			}

			added := e.foldReply(ctx, reply, table)
			e.logger.DebugContext(ctx, "Aggregated generation reply",
				"batch", bi+1,
				"category", cat.Name,
				"rows_added", added,
				"table_size", table.Len())
		}
	}

	return table, nil
}

// foldReply parses one generation reply as CSV and appends its well-formed
// rows to the table. Records whose field count is not exactly four come from
// a non-conforming model reply; they are skipped with a warning and never
// fail the run. It returns the number of rows actually added.
func (e *Extractor) foldReply(ctx context.Context, reply string, table *Table) int {
	r := csv.NewReader(strings.NewReader(reply))
	r.FieldsPerRecord = -1

	added := 0
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			e.logger.WarnContext(ctx, "Skipping unparseable record in generation reply",
				"error", err)
			continue
		}

		if len(record) != rowFieldCount {
			e.logger.WarnContext(ctx, "Skipping malformed record in generation reply",
				"field_count", len(record),
				"expected", rowFieldCount)
			continue
		}

		row := Row{
			Term:          record[0],
			Translation:   record[1],
			ExampleSource: record[2],
			ExampleTarget: record[3],
		}
		if table.Append(row) {
			added++
		}
	}

	return added
}
