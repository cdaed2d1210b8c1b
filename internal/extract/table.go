package extract

// Row is a single extracted vocabulary entry.
type Row struct {
	// Term is the extracted word in the source language, in its base form.
	Term string

	// Translation is the term translated into the target language.
	Translation string

	// ExampleSource is the input line the term appears in.
	ExampleSource string

	// ExampleTarget is the translation of that line into the target language.
	ExampleTarget string
}

// Table accumulates rows across a whole run, deduplicated by Term. The
// first occurrence of a term wins; later duplicates are dropped silently.
// Rows keep their first-seen order.
//
// The seen-term set is owned by the table, so independent runs within the
// same process never share state.
type Table struct {
	rows []Row
	seen map[string]struct{}
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{seen: make(map[string]struct{})}
}

// Append adds the row unless its term has been seen before. It reports
// whether the row was added.
func (t *Table) Append(r Row) bool {
	if _, ok := t.seen[r.Term]; ok {
		return false
	}

	t.seen[r.Term] = struct{}{}
	t.rows = append(t.rows, r)
	return true
}

// Rows returns the accumulated rows in first-seen order. The returned slice
// is owned by the table and must not be modified.
func (t *Table) Rows() []Row {
	return t.rows
}

// Len returns the number of unique rows accumulated so far.
func (t *Table) Len() int {
	return len(t.rows)
}
