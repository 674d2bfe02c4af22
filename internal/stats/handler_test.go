package stats

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestGetStats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := NewService()
	if err := svc.Record(context.Background(), Event{Religion: "buddhism", Quadrant: "Contemplative", SentimentLabel: "Neutral"}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	r := gin.New()
	api := r.Group("/api/v1")
	h := NewHandler(svc)
	h.RegisterRoutes(api)
	h.RegisterDevRoutes(api.Group("/dev"))

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body Stats
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Total != 1 || body.ByReligion["buddhism"] != 1 {
		t.Fatalf("unexpected body: %+v", body)
	}

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/v1/dev/stats/reset", nil))
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
	s, _ := svc.Snapshot(context.Background())
	if s.Total != 0 {
		t.Fatalf("expected reset counters, got %d", s.Total)
	}
}
