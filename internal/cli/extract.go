package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phrazzld/lexideck/internal/extract"
	"github.com/phrazzld/lexideck/internal/generation"
	"github.com/phrazzld/lexideck/internal/platform/gemini"
)

// extractFlags holds the command-line arguments of the extract command.
type extractFlags struct {
	sourceLanguage string
	targetLanguage string
	text           string
	textPath       string
	apiKeyPath     string
}

func newExtractCmd(opts *rootOptions) *cobra.Command {
	var flags extractFlags

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract flashcard rows from a text and write them as CSV to stdout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := resolveText(flags.text, flags.textPath,
				cmd.Flags().Changed("text"), cmd.Flags().Changed("text-path"))
			if err != nil {
				return err
			}

			llmCfg := opts.cfg.LLM
			llmCfg.APIKey, err = resolveAPIKey(llmCfg.APIKey, flags.apiKeyPath)
			if err != nil {
				return err
			}

			gen, err := gemini.New(cmd.Context(), opts.logger, llmCfg)
			if err != nil {
				return err
			}

			return runExtract(cmd.Context(), opts.logger, gen,
				flags.sourceLanguage, flags.targetLanguage, text, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&flags.sourceLanguage, "source-language", "Russian",
		"source language of the text")
	cmd.Flags().StringVar(&flags.targetLanguage, "target-language", "English",
		"target language which we already master")
	cmd.Flags().StringVar(&flags.text, "text", "",
		"text that we want to extract the flash cards from")
	cmd.Flags().StringVar(&flags.textPath, "text-path", "",
		"path to the text file that we want to extract the flash cards from; "+
			"either --text or --text-path needs to be specified, but not both")
	cmd.Flags().StringVar(&flags.apiKeyPath, "api-key-path", "gemini-api-key.txt",
		"path to the text file containing the API key; "+
			"ignored when LEXIDECK_LLM_API_KEY is set")

	return cmd
}

// resolveText returns the input text from either the --text flag or the
// --text-path file. Exactly one of them must be given.
func resolveText(text, textPath string, textSet, textPathSet bool) (string, error) {
	switch {
	case textSet && textPathSet:
		return "", errors.New(
			"both --text and --text-path have been specified; " +
				"you must specify only either one of them")
	case !textSet && !textPathSet:
		return "", errors.New("neither --text nor --text-path has been specified")
	case textPathSet:
		data, err := os.ReadFile(textPath)
		if err != nil {
			return "", fmt.Errorf("failed to read --text-path %s: %w", textPath, err)
		}
		return string(data), nil
	default:
		return text, nil
	}
}

// resolveAPIKey prefers the key from the configuration (environment) and
// falls back to the contents of the key file.
func resolveAPIKey(configured, keyPath string) (string, error) {
	if configured != "" {
		return configured, nil
	}

	info, err := os.Stat(keyPath)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("--api-key-path does not exist: %s", keyPath)
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat --api-key-path %s: %w", keyPath, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("--api-key-path is not a file: %s", keyPath)
	}

	data, err := os.ReadFile(keyPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", keyPath, err)
	}

	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", fmt.Errorf("--api-key-path is empty: %s", keyPath)
	}

	return key, nil
}

// runExtract performs the extraction run against the given generator and
// writes the resulting CSV to out.
func runExtract(
	ctx context.Context,
	logger *slog.Logger,
	gen generation.Generator,
	sourceLanguage, targetLanguage, text string,
	out io.Writer,
) error {
	extractor, err := extract.NewExtractor(logger, gen, extract.Options{})
	if err != nil {
		return err
	}

	table, err := extractor.Run(ctx, text, sourceLanguage, targetLanguage)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "Extraction finished",
		"unique_rows", table.Len(),
		"source_language", sourceLanguage,
		"target_language", targetLanguage)

	return extract.WriteCSV(out, sourceLanguage, targetLanguage, table)
}
