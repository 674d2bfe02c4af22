package analysis

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotient-backend/internal/scoring"
	"quotient-backend/internal/shared/server/respond"
	"quotient-backend/internal/stats"
)

func setupRouter(t *testing.T, analyzer Analyzer, maxUpload int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := NewService(analyzer, stats.NewService(), SourceLocal)
	r := gin.New()
	NewHandler(svc, maxUpload).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func postFile(t *testing.T, r http.Handler, fileName, contentType string, data []byte, religion string) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if religion != "" {
		require.NoError(t, writer.WriteField("religion", religion))
	}
	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="file"; filename="` + fileName + `"`}
	header["Content-Type"] = []string{contentType}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/document", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) respond.ErrorBody {
	t.Helper()
	var body respond.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Error
}

func TestAnalyzeReturnsEnvelope(t *testing.T) {
	scorer := newTestScorer(t)
	r := setupRouter(t, NewLocalAnalyzer(scorer, 0), 0)

	resp := postJSON(r, "/api/v1/analyze", `{"quote":"God is love and my soul is at peace","religion":"Christianity"}`)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var got Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "God is love and my soul is at peace", got.Quote)
	assert.Equal(t, scoring.ReligionChristianity, got.Religion)
	assert.Equal(t, scorer.Score(got.Quote), got.Analysis)
}

func TestAnalyzeMissingReligionDefaultsToOther(t *testing.T) {
	r := setupRouter(t, NewLocalAnalyzer(newTestScorer(t), 0), 0)

	resp := postJSON(r, "/api/v1/analyze", `{"quote":"hope"}`)
	require.Equal(t, http.StatusOK, resp.Code)

	var got Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, scoring.ReligionOther, got.Religion)
}

func TestAnalyzeValidation(t *testing.T) {
	r := setupRouter(t, NewLocalAnalyzer(newTestScorer(t), 0), 0)

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"quote":`},
		{"blank quote", `{"quote":"   ","religion":"islam"}`},
		{"unknown religion", `{"quote":"peace","religion":"pastafarian"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(r, "/api/v1/analyze", tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Equal(t, ErrorCodeValidation, decodeError(t, resp).Code)
		})
	}
}

func TestAnalyzeSurfacesUpstreamFailure(t *testing.T) {
	stub := &stubAnalyzer{err: &UpstreamError{Status: http.StatusServiceUnavailable, Message: "Analysis service unavailable"}}
	r := setupRouter(t, stub, 0)

	resp := postJSON(r, "/api/v1/analyze", `{"quote":"peace","religion":"islam"}`)
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
	body := decodeError(t, resp)
	assert.Equal(t, ErrorCodeUpstream, body.Code)
	assert.Equal(t, "Analysis service unavailable", body.Message)
}

func TestAnalyzeDocumentPlainText(t *testing.T) {
	scorer := newTestScorer(t)
	r := setupRouter(t, NewLocalAnalyzer(scorer, 0), 0)

	resp := postFile(t, r, "quote.txt", "text/plain", []byte("  Prayer and gratitude fill my heart\n"), "judaism")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var got Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "Prayer and gratitude fill my heart", got.Quote)
	assert.Equal(t, scoring.ReligionJudaism, got.Religion)
	assert.Equal(t, "quote.txt", got.FileName)
	assert.Equal(t, scorer.Score(got.Quote), got.Analysis)
}

func TestAnalyzeDocumentTooLarge(t *testing.T) {
	r := setupRouter(t, NewLocalAnalyzer(newTestScorer(t), 0), 16)

	resp := postFile(t, r, "quote.txt", "text/plain", []byte(strings.Repeat("peace ", 10)), "")
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.Code)
	assert.Equal(t, ErrorCodePayloadTooLarge, decodeError(t, resp).Code)
}

func TestAnalyzeDocumentUnsupportedType(t *testing.T) {
	r := setupRouter(t, NewLocalAnalyzer(newTestScorer(t), 0), 0)

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	resp := postFile(t, r, "quote.png", "image/png", png, "")
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.Code)
	assert.Equal(t, ErrorCodeUnsupportedMedia, decodeError(t, resp).Code)
}

func TestAnalyzeDocumentEmptyText(t *testing.T) {
	r := setupRouter(t, NewLocalAnalyzer(newTestScorer(t), 0), 0)

	resp := postFile(t, r, "blank.txt", "text/plain", []byte("   \n\t "), "")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, ErrorCodeValidation, decodeError(t, resp).Code)
}

func TestAnalyzeDocumentRequiresFile(t *testing.T) {
	r := setupRouter(t, NewLocalAnalyzer(newTestScorer(t), 0), 0)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("religion", "islam"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/document", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestLexiconsEndpoint(t *testing.T) {
	r := setupRouter(t, NewLocalAnalyzer(newTestScorer(t), 0), 0)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lexicons", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	var got scoring.Lexicons
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, scoring.AllLexicons(), got)
}
