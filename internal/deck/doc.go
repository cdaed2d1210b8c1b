// Package deck assembles flashcard deck packages from the CSV produced by
// the extract command. A package is a zip archive with a deck.json manifest
// and an optional media directory of synthesized pronunciations.
package deck
