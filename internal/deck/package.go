package deck

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// ManifestName is the name of the manifest entry inside a deck package.
const ManifestName = "deck.json"

// mediaDir is the archive directory holding audio files.
const mediaDir = "media/"

// Manifest is the JSON document describing a deck inside its package.
type Manifest struct {
	Name   string         `json:"name"`
	Fields []string       `json:"fields"`
	Notes  []ManifestNote `json:"notes"`
}

// ManifestNote is one note as serialized into the manifest.
type ManifestNote struct {
	ID            string `json:"id"`
	Source        string `json:"source"`
	Target        string `json:"target"`
	ExampleSource string `json:"example_source"`
	ExampleTarget string `json:"example_target"`
	Audio         string `json:"audio,omitempty"`
}

// WritePackage serializes the deck and its media files as a zip archive:
// deck.json first, then the media files in name order.
func WritePackage(w io.Writer, d *Deck, media map[string][]byte) error {
	zw := zip.NewWriter(w)

	m := Manifest{
		Name:   d.Name,
		Fields: []string{"source", "target", "example_source", "example_target"},
		Notes:  make([]ManifestNote, 0, len(d.Notes)),
	}
	for _, n := range d.Notes {
		m.Notes = append(m.Notes, ManifestNote{
			ID:            n.ID,
			Source:        n.Source,
			Target:        n.Target,
			ExampleSource: n.ExampleSource,
			ExampleTarget: n.ExampleTarget,
			Audio:         n.Audio,
		})
	}

	entry, err := zw.Create(ManifestName)
	if err != nil {
		return fmt.Errorf("failed to create manifest entry: %w", err)
	}

	enc := json.NewEncoder(entry)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}

	names := make([]string, 0, len(media))
	for name := range media {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		entry, err := zw.Create(mediaDir + name)
		if err != nil {
			return fmt.Errorf("failed to create media entry %s: %w", name, err)
		}
		if _, err := entry.Write(media[name]); err != nil {
			return fmt.Errorf("failed to write media entry %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize package: %w", err)
	}

	return nil
}
