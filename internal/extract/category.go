package extract

import (
	"bytes"
	"fmt"
	"text/template"
)

// Category is one grammatical extraction target. Each category carries its
// own instruction template which is rendered once per batch.
type Category struct {
	// Name identifies the category in logs ("verbs", "nouns", ...).
	Name string

	tmpl *template.Template
}

// promptData is the data rendered into a category's instruction template.
type promptData struct {
	SourceLanguage string
	TargetLanguage string
	Lines          string
}

// Prompt renders the category's instruction template with the language names
// and the batch text.
func (c Category) Prompt(sourceLanguage, targetLanguage, lines string) (string, error) {
	data := promptData{
		SourceLanguage: sourceLanguage,
		TargetLanguage: targetLanguage,
		Lines:          lines,
	}

	var buf bytes.Buffer
	if err := c.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render prompt for category %s: %w", c.Name, err)
	}

	return buf.String(), nil
}

// Categories returns the fixed extraction targets in their processing order.
// The order is part of the output contract: rows appear in the result in the
// order the categories are queried.
func Categories() []Category {
	return []Category{
		{Name: "verbs", tmpl: verbsTmpl},
		{Name: "nouns", tmpl: nounsTmpl},
		{Name: "adjectives", tmpl: adjectivesTmpl},
		{Name: "adverbs", tmpl: adverbsTmpl},
	}
}

// The templates share the same skeleton: what to extract, the four-column
// CSV layout, and the formatting constraints that keep the reply parseable.

var verbsTmpl = template.Must(template.New("verbs").Parse(`Please extract from the following text lines in {{.SourceLanguage}} all the verbs.
Write them in a four column CSV:
one column for the {{.SourceLanguage}} verbs in infinitive present tense,
one column for the translation in {{.TargetLanguage}},
one column with the line content where the word appears in,
and one column with the translation of the line in {{.TargetLanguage}}.

Do not forget to escape the commas with double-quotes as the output is a CSV.

Make sure that the verb really appears in the line in the third column!
Make sure the verb in the first column in {{.SourceLanguage}} is indeed given in present tense!

Do not output the CSV header!

Output only valid CSV, no text before or after!

Here are the text lines:
{{.Lines}}`))

var nounsTmpl = template.Must(template.New("nouns").Parse(`Please extract from the following text lines in {{.SourceLanguage}} all the nouns.
Write them in a four column CSV:
one column for the {{.SourceLanguage}} noun in nominative singular (not plural!),
one column for the translation in {{.TargetLanguage}},
one column with the line content where the word appears in,
and one column with the translation of the line in {{.TargetLanguage}}.

Do not forget to escape the commas with double-quotes as the output is a CSV.

Make sure that the noun really appears in the line in the third column!
Make sure the noun in the first column in {{.SourceLanguage}} is indeed given in nominative singular!
The noun in the first column in {{.SourceLanguage}} must NOT be given in nominative plural!

Do not output the CSV header!

Output only valid CSV, no text before or after!

Here are the text lines:
{{.Lines}}`))

var adjectivesTmpl = template.Must(template.New("adjectives").Parse(`Please extract from the following text lines in {{.SourceLanguage}} all the adjectives in {{.SourceLanguage}}.
Do not output any adverbs, only adjectives!

Write them in a four column CSV:
one column for the {{.SourceLanguage}} adjective transformed in nominative singular masculine (not plural! masculine! nominative!),
one column for the translation in {{.TargetLanguage}},
one column with the line content where the word appears in,
and one column with the translation of the line in {{.TargetLanguage}}.

Do not forget to escape the commas with double-quotes as the output is a CSV.

Make sure that the adjective really appears in the line in the third column!
Transform the adjective in the first column in {{.SourceLanguage}} to nominative singular masculine (masculine! nominative! not plural)!
The adjective in the first column must be in masculine!
The adjective in the first column must NOT be in plural!
The adjective in the first column must NOT be in any other case than nominative!

Adjective, not adverb!

Do not output the CSV header!

Output only valid CSV, no text before or after!

Here are the text lines:
{{.Lines}}`))

var adverbsTmpl = template.Must(template.New("adverbs").Parse(`Please extract from the following text lines in {{.SourceLanguage}} all the adverbs in {{.SourceLanguage}}.
Write them in a four column CSV:
one column for the {{.SourceLanguage}} adverb,
one column for the translation in {{.TargetLanguage}},
one column with the line content where the word appears in,
and one column with the translation of the line in {{.TargetLanguage}}.

Do not forget to escape the commas with double-quotes as the output is a CSV.

Make sure that the adverb really appears in the line in the third column!

Make sure that the first column is really an adverb and not an adjective!

Do not output the CSV header!

Output only valid CSV, no text before or after!

Here are the text lines:
{{.Lines}}`))
