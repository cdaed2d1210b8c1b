package batch

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// LineTooLongError reports a single input line that cannot fit into any
// batch. Lines are never split mid-line, so the whole split is abandoned.
type LineTooLongError struct {
	// Line is the 1-based number of the offending line.
	Line int

	// Length is the observed length of the line in Unicode code points,
	// including its terminator.
	Length int

	// Max is the configured maximum batch length.
	Max int
}

func (e *LineTooLongError) Error() string {
	return fmt.Sprintf("line %d is too long (got %d, max. is %d)", e.Line, e.Length, e.Max)
}

// Split partitions text into batches of whole lines, each at most
// maxBatchLength code points long. Batches are filled greedily in input
// order: a line that would overflow the current batch closes it and starts
// the next one. Concatenating the returned batches in order reproduces text
// exactly.
//
// A line is a maximal run of characters ending at a line terminator ("\n",
// "\r\n" or a lone "\r"); the final line may lack one. If any single line is
// longer than maxBatchLength, Split returns a *LineTooLongError and no
// batches.
//
// maxBatchLength must be positive; Split panics otherwise, since that is a
// programming error rather than an input condition.
func Split(text string, maxBatchLength int) ([]string, error) {
	if maxBatchLength <= 0 {
		panic(fmt.Sprintf("batch: maxBatchLength must be positive, got %d", maxBatchLength))
	}

	var batches []string
	var acc strings.Builder
	accLen := 0

	for i, line := range splitLines(text) {
		lineLen := utf8.RuneCountInString(line)
		if lineLen > maxBatchLength {
			return nil, &LineTooLongError{Line: i + 1, Length: lineLen, Max: maxBatchLength}
		}

		if accLen+lineLen > maxBatchLength {
			batches = append(batches, acc.String())
			acc.Reset()
			accLen = 0
		}

		acc.WriteString(line)
		accLen += lineLen
	}

	if acc.Len() > 0 {
		batches = append(batches, acc.String())
	}

	return batches, nil
}

// splitLines cuts text into lines keeping the terminators, so that the
// concatenation of the returned slices is the original text.
func splitLines(text string) []string {
	var lines []string

	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i+1])
			start = i + 1
		case '\r':
			end := i + 1
			if end < len(text) && text[end] == '\n' {
				end++
			}
			lines = append(lines, text[start:end])
			start = end
			i = end - 1
		}
	}

	if start < len(text) {
		lines = append(lines, text[start:])
	}

	return lines
}
