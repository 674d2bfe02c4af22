package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	LogLevel        string
	CORSAllowOrigin []string
	DatabaseURL     string

	// Scoring
	Sensitivity     float64
	TrimPunctuation bool
	SentimentEngine string
	AnalyzeDelay    time.Duration

	// Upstream scorer. When UpstreamURL is set the API proxies analyses to it.
	UpstreamURL          string
	UpstreamTimeout      time.Duration
	UpstreamClientID     string
	UpstreamClientSecret string
	UpstreamTokenURL     string

	RateLimitRPS   float64
	RateLimitBurst int
	MaxUploadBytes int64
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	// Best-effort load of local env files for dev convenience.
	for _, path := range []string{".env", "cmd/.env"} {
		_ = godotenv.Load(path)
	}

	cfg := Config{
		Port:                 getEnv("PORT", "8080"),
		Env:                  normalizeEnv(getEnv("ENV", "dev")),
		LogLevel:             strings.ToLower(getEnv("LOG_LEVEL", "info")),
		CORSAllowOrigin:      splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		SentimentEngine:      strings.ToLower(getEnv("SENTIMENT_ENGINE", "lexicon")),
		UpstreamURL:          strings.TrimRight(getEnv("UPSTREAM_URL", ""), "/"),
		UpstreamClientID:     getEnv("UPSTREAM_CLIENT_ID", ""),
		UpstreamClientSecret: getEnv("UPSTREAM_CLIENT_SECRET", ""),
		UpstreamTokenURL:     getEnv("UPSTREAM_TOKEN_URL", ""),
	}

	var err error
	if cfg.Sensitivity, err = strconv.ParseFloat(getEnv("SCORER_SENSITIVITY", "0.7"), 64); err != nil {
		return Config{}, fmt.Errorf("invalid SCORER_SENSITIVITY: %w", err)
	}
	if cfg.TrimPunctuation, err = strconv.ParseBool(getEnv("SCORER_TRIM_PUNCTUATION", "false")); err != nil {
		return Config{}, fmt.Errorf("invalid SCORER_TRIM_PUNCTUATION: %w", err)
	}
	if cfg.AnalyzeDelay, err = time.ParseDuration(getEnv("ANALYZE_DELAY", "0s")); err != nil {
		return Config{}, fmt.Errorf("invalid ANALYZE_DELAY: %w", err)
	}
	if cfg.UpstreamTimeout, err = time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "30s")); err != nil {
		return Config{}, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "5"), 64); err != nil {
		return Config{}, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20")); err != nil {
		return Config{}, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
	}
	if cfg.MaxUploadBytes, err = strconv.ParseInt(getEnv("MAX_UPLOAD_BYTES", "5242880"), 10, 64); err != nil {
		return Config{}, fmt.Errorf("invalid MAX_UPLOAD_BYTES: %w", err)
	}

	return cfg, nil
}

// Validate checks that the loaded values are usable.
func (c Config) Validate() error {
	if !(c.Sensitivity > 0) {
		return fmt.Errorf("SCORER_SENSITIVITY must be positive")
	}
	switch c.SentimentEngine {
	case "lexicon", "vader":
	default:
		return fmt.Errorf("invalid SENTIMENT_ENGINE: %s (must be 'lexicon' or 'vader')", c.SentimentEngine)
	}
	if c.AnalyzeDelay < 0 {
		return fmt.Errorf("ANALYZE_DELAY must not be negative")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	if c.UpstreamClientID != "" && c.UpstreamTokenURL == "" {
		return fmt.Errorf("UPSTREAM_TOKEN_URL is required when UPSTREAM_CLIENT_ID is set")
	}
	if c.Env == "production" && c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required in production")
	}
	return nil
}

// UsesUpstream reports whether analyses are proxied to a remote scorer.
func (c Config) UsesUpstream() bool {
	return c.UpstreamURL != ""
}

func getEnv(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
