package analysis

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrDocumentTooLarge = errors.New("document too large")
	ErrEmptyDocument    = errors.New("document contains no text")
)

const (
	ErrorCodeValidation       = "validation_error"
	ErrorCodeUpstream         = "upstream_error"
	ErrorCodePayloadTooLarge  = "payload_too_large"
	ErrorCodeUnsupportedMedia = "unsupported_media_type"
	ErrorCodeTimeout          = "timeout"
	ErrorCodeInternal         = "internal_error"

	defaultUpstreamMessage  = "Analysis failed"
	transportFailureMessage = "Failed to process request"
)

// UpstreamError reports a failed call to the upstream scorer.
type UpstreamError struct {
	Status  int
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream %d: %s: %v", e.StatusCode(), e.Message, e.Err)
	}
	return fmt.Sprintf("upstream %d: %s", e.StatusCode(), e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// StatusCode is the HTTP status to surface to callers, 502 when the upstream gave none.
func (e *UpstreamError) StatusCode() int {
	if e.Status < 400 || e.Status > 599 {
		return http.StatusBadGateway
	}
	return e.Status
}
