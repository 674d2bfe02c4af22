package analysis

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"quotient-backend/internal/extract"
	"quotient-backend/internal/scoring"
	"quotient-backend/internal/shared/server/middleware"
	"quotient-backend/internal/shared/server/respond"
	"quotient-backend/internal/shared/util"
)

// DefaultMaxUploadBytes caps document uploads.
const DefaultMaxUploadBytes = 5 << 20

// multipart framing allowance on top of the file cap
const multipartOverhead = 64 << 10

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.POST("/analyze/document", h.analyzeDocument)
	rg.GET("/lexicons", h.lexicons)
}

type analyzeRequest struct {
	Quote    string `json:"quote"`
	Religion string `json:"religion"`
}

// Response is the analyze envelope.
type Response struct {
	Quote    string           `json:"quote" yaml:"quote"`
	Religion scoring.Religion `json:"religion" yaml:"religion"`
	Analysis scoring.Result   `json:"analysis" yaml:"analysis"`
	FileName string           `json:"fileName,omitempty" yaml:"fileName,omitempty"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid request body", nil)
		return
	}

	religion, ok := parseReligion(c, req.Religion)
	if !ok {
		return
	}
	if strings.TrimSpace(req.Quote) == "" {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "Quote is required", []map[string]string{
			{"field": "quote", "issue": "required"},
		})
		return
	}

	h.run(c, scoring.Request{Quote: req.Quote, Religion: religion}, "")
}

func (h *Handler) analyzeDocument(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes+multipartOverhead)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		if isBodyTooLarge(err) {
			h.tooLarge(c)
			return
		}
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "file is required", nil)
		return
	}
	if fileHeader.Size > h.MaxUploadBytes {
		h.tooLarge(c)
		return
	}
	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, err.Error(), []map[string]string{
			{"field": "file", "issue": "invalid_name"},
		})
		return
	}

	religion, ok := parseReligion(c, c.PostForm("religion"))
	if !ok {
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.MaxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read file", nil)
		return
	}
	if int64(len(data)) > h.MaxUploadBytes {
		h.tooLarge(c)
		return
	}

	text, err := extract.TextFromBytes(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), fileName)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrUnsupportedType):
			respond.Error(c, http.StatusUnsupportedMediaType, ErrorCodeUnsupportedMedia, "supported types are PDF, DOCX, Markdown and plain text", nil)
		default:
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to extract document text", nil)
		}
		return
	}
	text = strings.TrimSpace(text)
	if text == "" {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, ErrEmptyDocument.Error(), []map[string]string{
			{"field": "file", "issue": "empty"},
		})
		return
	}

	h.run(c, scoring.Request{Quote: text, Religion: religion}, fileName)
}

func (h *Handler) run(c *gin.Context, req scoring.Request, fileName string) {
	c.Set(middleware.SourceKey, h.Svc.Source)

	result, err := h.Svc.Analyze(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set(middleware.QuadrantKey, result.Quadrant.Label)

	respond.OK(c, Response{
		Quote:    req.Quote,
		Religion: req.Religion,
		Analysis: result,
		FileName: fileName,
	})
}

func (h *Handler) lexicons(c *gin.Context) {
	respond.OK(c, scoring.AllLexicons())
}

func (h *Handler) tooLarge(c *gin.Context) {
	respond.Error(c, http.StatusRequestEntityTooLarge, ErrorCodePayloadTooLarge, ErrDocumentTooLarge.Error(), map[string]int64{
		"maxBytes": h.MaxUploadBytes,
	})
}

func parseReligion(c *gin.Context, raw string) (scoring.Religion, bool) {
	religion, err := scoring.ParseReligion(raw)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, err.Error(), []map[string]string{
			{"field": "religion", "issue": "unsupported"},
		})
		return "", false
	}
	c.Set(middleware.ReligionKey, string(religion))
	return religion, true
}

func writeError(c *gin.Context, err error) {
	var upstreamErr *UpstreamError
	switch {
	case errors.Is(err, scoring.ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, err.Error(), nil)
	case errors.As(err, &upstreamErr):
		respond.Error(c, upstreamErr.StatusCode(), ErrorCodeUpstream, upstreamErr.Message, nil)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		respond.Error(c, http.StatusGatewayTimeout, ErrorCodeTimeout, "analysis timed out", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to analyze quote", nil)
	}
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}
