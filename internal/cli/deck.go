package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phrazzld/lexideck/internal/deck"
	"github.com/phrazzld/lexideck/internal/platform/googletts"
	"github.com/phrazzld/lexideck/internal/tts"
)

// deckFlags holds the command-line arguments of the deck command.
type deckFlags struct {
	csvPath         string
	outPath         string
	deckName        string
	synthesizeAudio string
}

func newDeckCmd(opts *rootOptions) *cobra.Command {
	var flags deckFlags

	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Assemble a generated CSV into a deck package",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			info, err := os.Stat(flags.csvPath)
			if os.IsNotExist(err) {
				return fmt.Errorf("--csv-path does not exist: %s", flags.csvPath)
			}
			if err != nil {
				return fmt.Errorf("failed to stat --csv-path %s: %w", flags.csvPath, err)
			}
			if info.IsDir() {
				return fmt.Errorf("--csv-path is not a file: %s", flags.csvPath)
			}

			f, err := os.Open(flags.csvPath)
			if err != nil {
				return fmt.Errorf("failed to open --csv-path %s: %w", flags.csvPath, err)
			}
			defer func() { _ = f.Close() }()

			notes, err := deck.ReadNotes(f, opts.logger)
			if err != nil {
				return fmt.Errorf("failed to read --csv-path %s: %w", flags.csvPath, err)
			}

			var synth tts.Synthesizer
			if flags.synthesizeAudio != "" {
				client, err := googletts.New(opts.logger, opts.cfg.TTS)
				if err != nil {
					return err
				}
				synth = client
			}

			builder, err := deck.NewBuilder(opts.logger, synth, flags.synthesizeAudio)
			if err != nil {
				return err
			}

			d, media, err := builder.Build(ctx, flags.deckName, notes)
			if err != nil {
				return err
			}

			out, err := os.Create(flags.outPath)
			if err != nil {
				return fmt.Errorf("failed to create --out %s: %w", flags.outPath, err)
			}

			if err := deck.WritePackage(out, d, media); err != nil {
				_ = out.Close()
				_ = os.Remove(flags.outPath)
				return err
			}

			if err := out.Close(); err != nil {
				_ = os.Remove(flags.outPath)
				return fmt.Errorf("failed to finalize --out %s: %w", flags.outPath, err)
			}

			opts.logger.InfoContext(ctx, "Deck package written",
				"deck", flags.deckName,
				"notes", len(d.Notes),
				"media_files", len(media),
				"out", flags.outPath)

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.csvPath, "csv-path", "",
		"path to the CSV file with the generated cards")
	cmd.Flags().StringVar(&flags.outPath, "out", "",
		"path to the deck package to write")
	cmd.Flags().StringVar(&flags.deckName, "deck-name", "",
		"name of the deck")
	cmd.Flags().StringVar(&flags.synthesizeAudio, "synthesize-audio", "",
		"language to synthesize the source terms with text-to-speech; "+
			"if not specified, the audio is not synthesized")

	_ = cmd.MarkFlagRequired("csv-path")
	_ = cmd.MarkFlagRequired("out")
	_ = cmd.MarkFlagRequired("deck-name")

	return cmd
}
