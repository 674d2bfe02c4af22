package stats

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"quotient-backend/internal/shared/server/respond"
)

// Handler exposes stats endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches stats routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stats", h.getStats)
}

// RegisterDevRoutes attaches dev-only stats routes.
func (h *Handler) RegisterDevRoutes(rg *gin.RouterGroup) {
	rg.POST("/stats/reset", h.resetStats)
}

func (h *Handler) getStats(c *gin.Context) {
	s, err := h.Svc.Snapshot(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respond.Error(c, http.StatusRequestTimeout, "timeout", "request canceled", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch stats", nil)
		}
		return
	}
	respond.OK(c, s)
}

func (h *Handler) resetStats(c *gin.Context) {
	if err := h.Svc.Reset(c.Request.Context()); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to reset stats", nil)
		return
	}
	respond.NoContent(c)
}
