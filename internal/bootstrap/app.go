package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"quotient-backend/internal/analysis"
	"quotient-backend/internal/scoring"
	"quotient-backend/internal/sentiment"
	"quotient-backend/internal/services/health"
	"quotient-backend/internal/shared/config"
	"quotient-backend/internal/shared/server"
	"quotient-backend/internal/shared/server/middleware"
	"quotient-backend/internal/shared/storage/db"
	"quotient-backend/internal/shared/telemetry"
	"quotient-backend/internal/stats"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	Scorer          *scoring.Scorer
	Analyzer        analysis.Analyzer
	AnalysisService *analysis.Service
	StatsService    *stats.Service
	AnalysisHandler *analysis.Handler
	StatsHandler    *stats.Handler
	Health          *health.Service
}

// Build prepares dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB}
	if err := buildServices(app); err != nil {
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		AnalysisHandler: app.AnalysisHandler,
		StatsHandler:    app.StatsHandler,
		Health:          app.Health,
		RateLimiter:     middleware.NewRateLimiter(nil),
	})

	return app, nil
}

// Close releases held resources.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Info("bootstrap.db.memory", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err == nil {
		err = db.RunMigrations(ctx, sqlDB)
		if err != nil {
			_ = sqlDB.Close()
			err = fmt.Errorf("run migrations: %w", err)
		}
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.db.fallback_memory", map[string]any{"error": err})
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

// BuildScorer constructs the scorer selected by cfg.
func BuildScorer(cfg config.Config) (*scoring.Scorer, error) {
	opts := scoring.Options{
		Sensitivity:     cfg.Sensitivity,
		TrimPunctuation: cfg.TrimPunctuation,
	}
	if cfg.SentimentEngine == "vader" {
		opts.Sentiment = sentiment.NewVader()
	}
	return scoring.New(opts)
}

// BuildAnalyzer returns the upstream proxy when configured, otherwise the local scorer.
func BuildAnalyzer(cfg config.Config, scorer *scoring.Scorer) (analysis.Analyzer, string, error) {
	if cfg.UsesUpstream() {
		upstream, err := analysis.NewUpstreamAnalyzer(analysis.UpstreamConfig{
			URL:          cfg.UpstreamURL,
			Timeout:      cfg.UpstreamTimeout,
			ClientID:     cfg.UpstreamClientID,
			ClientSecret: cfg.UpstreamClientSecret,
			TokenURL:     cfg.UpstreamTokenURL,
		})
		if err != nil {
			return nil, "", err
		}
		return upstream, analysis.SourceUpstream, nil
	}
	if scorer == nil {
		return nil, "", errors.New("scorer is required for local analysis")
	}
	return analysis.NewLocalAnalyzer(scorer, cfg.AnalyzeDelay), analysis.SourceLocal, nil
}

func buildServices(app *App) error {
	scorer, err := BuildScorer(app.Config)
	if err != nil {
		return fmt.Errorf("build scorer: %w", err)
	}
	analyzer, source, err := BuildAnalyzer(app.Config, scorer)
	if err != nil {
		return fmt.Errorf("build analyzer: %w", err)
	}

	var statsSvc *stats.Service
	if app.DB != nil {
		statsSvc = stats.NewPostgresService(stats.NewPGStore(app.DB))
	} else {
		statsSvc = stats.NewService()
	}

	analysisSvc := analysis.NewService(analyzer, statsSvc, source)

	app.Scorer = scorer
	app.Analyzer = analyzer
	app.AnalysisService = analysisSvc
	app.StatsService = statsSvc
	app.AnalysisHandler = analysis.NewHandler(analysisSvc, app.Config.MaxUploadBytes)
	app.StatsHandler = stats.NewHandler(statsSvc)
	app.Health = health.NewService(app.DB, source)

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":              app.Config.Env,
		"analyzer":         source,
		"sentiment_engine": app.Config.SentimentEngine,
		"stats_store":      statsStoreName(app.DB),
	})
	return nil
}

func statsStoreName(sqlDB *sql.DB) string {
	if sqlDB != nil {
		return "postgres"
	}
	return "memory"
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
