package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"quotient-backend/internal/analysis"
	"quotient-backend/internal/bootstrap"
	"quotient-backend/internal/scoring"
	"quotient-backend/internal/shared/config"
)

type analyzeOptions struct {
	religion        string
	format          string
	sensitivity     float64
	trimPunctuation bool
	engine          string
	upstream        string
}

func newAnalyzeCmd() *cobra.Command {
	opts := analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze [quote...]",
		Short: "Analyze a quote",
		Long: `Analyze scores the quote given as arguments. With no arguments the quote
is read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.religion, "religion", "r", "", "religious tradition of the quote")
	flags.StringVarP(&opts.format, "format", "f", formatText, "output format: json, yaml or text")
	flags.Float64Var(&opts.sensitivity, "sensitivity", 0, "sentiment sensitivity (defaults to SCORER_SENSITIVITY)")
	flags.BoolVar(&opts.trimPunctuation, "trim-punctuation", false, "strip punctuation around tokens")
	flags.StringVar(&opts.engine, "engine", "", "sentiment engine: lexicon or vader")
	flags.StringVar(&opts.upstream, "upstream", "", "analyze endpoint of a remote quotient API")
	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, opts analyzeOptions) error {
	format, err := parseFormat(opts.format)
	if err != nil {
		return err
	}

	quote := strings.Join(args, " ")
	if len(args) == 0 {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		quote = string(raw)
	}
	quote = strings.TrimSpace(quote)

	religion, err := scoring.ParseReligion(opts.religion)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("sensitivity") {
		cfg.Sensitivity = opts.sensitivity
	}
	if cmd.Flags().Changed("trim-punctuation") {
		cfg.TrimPunctuation = opts.trimPunctuation
	}
	if opts.engine != "" {
		cfg.SentimentEngine = strings.ToLower(opts.engine)
	}
	if opts.upstream != "" {
		cfg.UpstreamURL = strings.TrimRight(opts.upstream, "/")
	}
	cfg.AnalyzeDelay = 0
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	var scorer *scoring.Scorer
	if !cfg.UsesUpstream() {
		if scorer, err = bootstrap.BuildScorer(cfg); err != nil {
			return fmt.Errorf("build scorer: %w", err)
		}
	}
	analyzer, _, err := bootstrap.BuildAnalyzer(cfg, scorer)
	if err != nil {
		return fmt.Errorf("build analyzer: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	req := scoring.Request{Quote: quote, Religion: religion}
	result, err := analyzer.Analyze(ctx, req)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), format, analysis.Response{
		Quote:    quote,
		Religion: religion,
		Analysis: result,
	})
}
