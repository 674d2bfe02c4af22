package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"quotient-backend/internal/scoring"
)

const (
	defaultUpstreamTimeout = 30 * time.Second
	maxUpstreamBody        = 1 << 20
)

// UpstreamConfig points at a remote analyze endpoint.
type UpstreamConfig struct {
	URL          string
	Timeout      time.Duration
	ClientID     string
	ClientSecret string
	TokenURL     string
}

// UpstreamAnalyzer proxies analyses to a remote service speaking the
// {quote, religion} -> {quote, religion, analysis} contract.
type UpstreamAnalyzer struct {
	url    string
	client *http.Client
}

// NewUpstreamAnalyzer builds an UpstreamAnalyzer. When client credentials and a
// token URL are configured, requests carry an OAuth2 bearer token.
func NewUpstreamAnalyzer(cfg UpstreamConfig) (*UpstreamAnalyzer, error) {
	url := strings.TrimSpace(cfg.URL)
	if url == "" {
		return nil, errors.New("upstream url is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultUpstreamTimeout
	}

	base := &http.Client{Timeout: timeout}
	client := base
	if cfg.ClientID != "" && cfg.TokenURL != "" {
		cc := clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
		}
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
		client = cc.Client(ctx)
		client.Timeout = timeout
	}
	return &UpstreamAnalyzer{url: url, client: client}, nil
}

type upstreamRequest struct {
	Quote    string `json:"quote"`
	Religion string `json:"religion"`
}

type upstreamResponse struct {
	Analysis *scoring.Result `json:"analysis"`
}

func (a *UpstreamAnalyzer) Analyze(ctx context.Context, req scoring.Request) (scoring.Result, error) {
	if err := scoring.Validate(req); err != nil {
		return scoring.Result{}, err
	}

	payload, err := json.Marshal(upstreamRequest{Quote: req.Quote, Religion: string(req.Religion)})
	if err != nil {
		return scoring.Result{}, fmt.Errorf("encode upstream request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(payload))
	if err != nil {
		return scoring.Result{}, fmt.Errorf("build upstream request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return scoring.Result{}, ctxErr
		}
		return scoring.Result{}, &UpstreamError{Status: http.StatusBadGateway, Message: transportFailureMessage, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBody))
	if err != nil {
		return scoring.Result{}, &UpstreamError{Status: http.StatusBadGateway, Message: transportFailureMessage, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return scoring.Result{}, &UpstreamError{Status: resp.StatusCode, Message: upstreamMessage(body)}
	}

	var decoded upstreamResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return scoring.Result{}, &UpstreamError{Status: http.StatusBadGateway, Message: transportFailureMessage, Err: fmt.Errorf("decode upstream response: %w", err)}
	}
	if decoded.Analysis == nil {
		return scoring.Result{}, &UpstreamError{Status: http.StatusBadGateway, Message: transportFailureMessage, Err: errors.New("upstream response has no analysis")}
	}
	return *decoded.Analysis, nil
}

// upstreamMessage pulls a human message out of an error body. It understands
// {"error":{"message"}}, {"detail"} and {"error"} shapes.
func upstreamMessage(body []byte) string {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return defaultUpstreamMessage
	}
	if nested, ok := raw["error"].(map[string]any); ok {
		if msg, ok := nested["message"].(string); ok && strings.TrimSpace(msg) != "" {
			return msg
		}
	}
	if detail, ok := raw["detail"].(string); ok && strings.TrimSpace(detail) != "" {
		return detail
	}
	if msg, ok := raw["error"].(string); ok && strings.TrimSpace(msg) != "" {
		return msg
	}
	return defaultUpstreamMessage
}
