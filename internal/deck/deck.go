package deck

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/lexideck/internal/tts"
)

// noteFieldCount is the number of CSV fields expected per note row.
const noteFieldCount = 4

// Note is a single flashcard of a deck.
type Note struct {
	// ID identifies the note within the deck, stable across rebuilds of the
	// same CSV.
	ID string

	// Source is the term in the source language (the card's front).
	Source string

	// Target is the translation into the target language.
	Target string

	// ExampleSource is an example phrase containing the term.
	ExampleSource string

	// ExampleTarget is the translation of the example phrase.
	ExampleTarget string

	// Audio names the media file with the synthesized pronunciation of
	// Source, empty when no audio was requested.
	Audio string
}

// Deck is a named, ordered collection of notes.
type Deck struct {
	Name  string
	Notes []Note
}

// ReadNotes parses the CSV written by the extract command into notes. The
// first record is the header and is skipped. Records whose field count is
// not exactly four are reported with a warning and skipped; they never fail
// the read.
func ReadNotes(r io.Reader, logger *slog.Logger) ([]Note, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var notes []Note
	for i := 0; ; i++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV record %d: %w", i+1, err)
		}

		// Header record.
		if i == 0 {
			continue
		}

		if len(record) != noteFieldCount {
			logger.Warn("Ignoring an invalid row in the CSV",
				"row", i+1,
				"field_count", len(record),
				"expected", noteFieldCount)
			continue
		}

		notes = append(notes, Note{
			ID:            fmt.Sprintf("card%d", i+1),
			Source:        record[0],
			Target:        record[1],
			ExampleSource: record[2],
			ExampleTarget: record[3],
		})
	}

	return notes, nil
}

// Builder assembles a deck from notes, optionally synthesizing audio for
// every source term.
type Builder struct {
	logger    *slog.Logger
	synth     tts.Synthesizer
	audioLang string
}

// NewBuilder creates a Builder. A nil synthesizer disables audio; otherwise
// audioLang selects the synthesis language and must be non-empty.
func NewBuilder(logger *slog.Logger, synth tts.Synthesizer, audioLang string) (*Builder, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if synth != nil && audioLang == "" {
		return nil, errors.New("audio language cannot be empty when a synthesizer is provided")
	}

	return &Builder{logger: logger, synth: synth, audioLang: audioLang}, nil
}

// Build produces the deck and its media files. Media file names are prefixed
// with a fresh run ID so that packages built concurrently into the same
// directory can never collide.
func (b *Builder) Build(ctx context.Context, name string, notes []Note) (*Deck, map[string][]byte, error) {
	if name == "" {
		return nil, nil, errors.New("deck name cannot be empty")
	}

	runID := uuid.New()
	media := make(map[string][]byte)

	built := make([]Note, 0, len(notes))
	for i, n := range notes {
		if b.synth != nil {
			audio, err := b.synth.Synthesize(ctx, n.Source, b.audioLang)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to synthesize audio for %q: %w", n.Source, err)
			}

			n.Audio = fmt.Sprintf("%s-%d.mp3", runID, i+1)
			media[n.Audio] = audio

			b.logger.DebugContext(ctx, "Synthesized note audio",
				"note", n.ID,
				"media_file", n.Audio,
				"bytes", len(audio))
		}

		built = append(built, n)
	}

	return &Deck{Name: name, Notes: built}, media, nil
}
