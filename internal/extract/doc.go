// Package extract turns a text into a deduplicated table of vocabulary
// flashcard rows.
//
// The Extractor splits the input into request-sized batches, asks the
// generation service once per (batch, category) pair for a four-column CSV
// of extracted terms, and folds every reply into a single Table that is
// deduplicated by term across the whole run, preserving first-seen order.
package extract
