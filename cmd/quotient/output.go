package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"quotient-backend/internal/analysis"
	"quotient-backend/internal/scoring"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatText = "text"
)

func parseFormat(raw string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(raw)); f {
	case formatJSON, formatYAML, formatText:
		return f, nil
	case "yml":
		return formatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want json, yaml or text)", raw)
	}
}

func render(w io.Writer, format string, resp analysis.Response) error {
	if format == formatText {
		return renderText(w, resp)
	}
	return encode(w, format, resp)
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func renderText(w io.Writer, resp analysis.Response) error {
	r := resp.Analysis
	var b strings.Builder
	fmt.Fprintf(&b, "Quote:      %s\n", resp.Quote)
	fmt.Fprintf(&b, "Religion:   %s\n", resp.Religion)
	fmt.Fprintf(&b, "Sentiment:  %d%% %s (%.2f)\n", scoring.SentimentPercent(r.Sentiment), r.SentimentLabel, r.Sentiment)
	fmt.Fprintf(&b, "Spiritual:  %.2f\n", r.SpiritualScore)
	fmt.Fprintf(&b, "Material:   %.2f\n", r.MaterialScore)
	fmt.Fprintf(&b, "Quadrant:   %s (x=%.2f, y=%.2f)\n", r.Quadrant.Label, r.Quadrant.X, r.Quadrant.Y)
	fmt.Fprintf(&b, "Themes:     %s\n", strings.Join(r.Themes, ", "))
	fmt.Fprintf(&b, "Emotions:   %s\n", strings.Join(r.Emotions, ", "))
	fmt.Fprintf(&b, "Keywords:   %s\n", strings.Join(r.Keywords, ", "))
	b.WriteString("Reflect:\n")
	for _, rec := range r.Recommendations {
		fmt.Fprintf(&b, "  - %s\n", rec)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
