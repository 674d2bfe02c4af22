package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"quotient-backend/internal/shared/telemetry"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "quotient",
		Short: "Score quotes on sentiment and spiritual/material axes",
		Long: `Quotient analyzes a quote with a deterministic lexical scorer and reports
its sentiment, spiritual and material scores, quadrant, themes, emotions,
keywords and reflection prompts.`,
		SilenceUsage: true,
	}
	root.AddCommand(newAnalyzeCmd(), newLexiconsCmd())
	return root
}

func main() {
	_ = godotenv.Load()

	// Logs go to stderr so stdout stays machine readable.
	slog.SetDefault(slog.New(telemetry.NewHandler(os.Stderr, os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))))

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
