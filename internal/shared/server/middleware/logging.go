package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"quotient-backend/internal/shared/telemetry"
)

// Context keys handlers may set to enrich the request log.
const (
	ReligionKey = "religion"
	QuadrantKey = "quadrant"
	SourceKey   = "analysisSource"
)

// Logging emits a structured log per request. Quote text is never logged.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		telemetry.Info("request.complete", map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"religion":    c.GetString(ReligionKey),
			"quadrant":    c.GetString(QuadrantKey),
			"source":      c.GetString(SourceKey),
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		})
	}
}
