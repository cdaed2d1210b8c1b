package extract

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV serializes the table as CSV: one header record naming the columns
// after the two languages, followed by every unique row in first-seen order.
// Fields containing delimiters, quotes or line breaks are quoted per the
// standard CSV convention by encoding/csv.
func WriteCSV(w io.Writer, sourceLanguage, targetLanguage string, t *Table) error {
	cw := csv.NewWriter(w)

	header := []string{
		sourceLanguage,
		targetLanguage,
		fmt.Sprintf("Phrase in %s", sourceLanguage),
		fmt.Sprintf("Phrase in %s", targetLanguage),
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range t.Rows() {
		record := []string{r.Term, r.Translation, r.ExampleSource, r.ExampleTarget}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
