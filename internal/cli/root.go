// Package cli wires the lexideck commands: configuration and logging setup
// on the root command, extraction and deck assembly as subcommands.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/phrazzld/lexideck/internal/config"
	"github.com/phrazzld/lexideck/internal/platform/logger"
)

// rootOptions carries the state shared by all subcommands, populated by the
// root command's PersistentPreRunE.
type rootOptions struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd creates the root command for the lexideck CLI.
func NewRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:     "lexideck",
		Short:   "Extract vocabulary flashcards from a text using a text-generation API",
		Long: `lexideck extracts vocabulary flashcards from a text using a text-generation API.

The text is assumed to be already split in sentences by newlines, so every
line is considered a phrase or a sentence in itself. The extract command
writes the cards as CSV to stdout; the deck command assembles a generated
CSV into a deck package.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: `  # Extract flashcards from a text file
  lexideck extract --source-language Russian --target-language English \
    --text-path story.txt > cards.csv

  # Assemble the CSV into a deck package with synthesized audio
  lexideck deck --csv-path cards.csv --out story.lexideck \
    --deck-name "Story vocabulary" --synthesize-audio ru`,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			opts.cfg = cfg
			opts.logger = logger.Setup(cfg.App)
			return nil
		},
	}

	cmd.AddCommand(newExtractCmd(opts), newDeckCmd(opts))

	return cmd
}
