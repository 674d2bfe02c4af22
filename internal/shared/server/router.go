package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"quotient-backend/internal/analysis"
	"quotient-backend/internal/services/health"
	"quotient-backend/internal/shared/config"
	"quotient-backend/internal/shared/metrics"
	"quotient-backend/internal/shared/server/middleware"
	"quotient-backend/internal/shared/server/respond"
	"quotient-backend/internal/stats"
)

// Rate limit groups.
const (
	RateLimitGroupAnalyze = "ANALYZE"
	RateLimitGroupDefault = "DEFAULT"
)

// RouterDeps holds handlers required by the HTTP router.
type RouterDeps struct {
	Config          config.Config
	AnalysisHandler *analysis.Handler
	StatsHandler    *stats.Handler
	Health          *health.Service
	RateLimiter     *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	switch {
	case gin.Mode() == gin.TestMode:
	case cfg.Env == "dev" || cfg.Env == "local":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(rateLimitConfig(cfg, deps.RateLimiter)),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			respond.JSON(c, http.StatusOK, gin.H{"ok": true})
			return
		}
		st := deps.Health.Status(c.Request.Context())
		status := http.StatusOK
		if !st.OK {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, st)
	})
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(api)
	}
	if deps.StatsHandler != nil {
		deps.StatsHandler.RegisterRoutes(api)
		if cfg.Env == "dev" {
			dev := api.Group("/dev")
			deps.StatsHandler.RegisterDevRoutes(dev)
		}
	}

	return r
}

func rateLimitConfig(cfg config.Config, limiter *middleware.RateLimiter) middleware.RateLimitConfig {
	rules := map[string]middleware.RateLimitRule{}
	if cfg.RateLimitRPS > 0 {
		burst := cfg.RateLimitBurst
		if burst <= 0 {
			burst = 1
		}
		rules[RateLimitGroupAnalyze] = middleware.RateLimitRule{Rate: cfg.RateLimitRPS, Burst: burst}
		rules[RateLimitGroupDefault] = middleware.RateLimitRule{Rate: cfg.RateLimitRPS * 4, Burst: burst * 4}
	}
	return middleware.RateLimitConfig{
		Rules:        rules,
		DefaultGroup: RateLimitGroupDefault,
		Limiter:      limiter,
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && strings.HasPrefix(c.Request.URL.Path, "/api/v1/analyze") {
				return RateLimitGroupAnalyze
			}
			return RateLimitGroupDefault
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
