package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"quotient-backend/internal/scoring"
)

func newLexiconsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "lexicons",
		Short: "Print the word lists used by the scorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}
			lex := scoring.AllLexicons()
			if f == formatText {
				return renderLexiconsText(cmd.OutOrStdout(), lex)
			}
			return encode(cmd.OutOrStdout(), f, lex)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatYAML, "output format: json, yaml or text")
	return cmd
}

func renderLexiconsText(w io.Writer, lex scoring.Lexicons) error {
	var b strings.Builder
	writeList := func(name string, words []string) {
		fmt.Fprintf(&b, "%s (%d): %s\n", name, len(words), strings.Join(words, ", "))
	}
	writeList("positive", lex.Positive)
	writeList("negative", lex.Negative)
	writeList("spiritual", lex.Spiritual)
	writeList("material", lex.Material)
	writeList("stop words", lex.StopWords)
	writeLabels := func(title string, labels map[string][]string) {
		names := make([]string, 0, len(labels))
		for name := range labels {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintf(&b, "%s:\n", title)
		for _, name := range names {
			fmt.Fprintf(&b, "  %s: %s\n", name, strings.Join(labels[name], ", "))
		}
	}
	writeLabels("themes", lex.Themes)
	writeLabels("emotions", lex.Emotions)
	_, err := io.WriteString(w, b.String())
	return err
}
