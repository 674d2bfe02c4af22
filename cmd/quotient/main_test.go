package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"quotient-backend/internal/analysis"
	"quotient-backend/internal/scoring"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ENV", "")
	t.Setenv("UPSTREAM_URL", "")
	t.Setenv("SENTIMENT_ENGINE", "")
	t.Setenv("SCORER_SENSITIVITY", "")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func referenceResult(t *testing.T, quote string) scoring.Result {
	t.Helper()
	scorer, err := scoring.New(scoring.DefaultOptions())
	require.NoError(t, err)
	return scorer.Score(quote)
}

func TestAnalyzeJSON(t *testing.T) {
	out, err := execute(t, "", "analyze", "--format", "json", "--religion", "hinduism", "Divine", "love", "brings", "peace")
	require.NoError(t, err)

	var resp analysis.Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "Divine love brings peace", resp.Quote)
	assert.Equal(t, scoring.ReligionHinduism, resp.Religion)
	assert.Equal(t, referenceResult(t, resp.Quote), resp.Analysis)
}

func TestAnalyzeYAMLFromStdin(t *testing.T) {
	out, err := execute(t, "  Money and wealth are fleeting\n", "analyze", "-f", "yaml")
	require.NoError(t, err)

	var resp analysis.Response
	require.NoError(t, yaml.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "Money and wealth are fleeting", resp.Quote)
	assert.Equal(t, scoring.ReligionOther, resp.Religion)
	assert.Equal(t, referenceResult(t, resp.Quote).Quadrant.Label, resp.Analysis.Quadrant.Label)
}

func TestAnalyzeText(t *testing.T) {
	out, err := execute(t, "", "analyze", "Faith", "gives", "hope")
	require.NoError(t, err)
	assert.Contains(t, out, "Quote:      Faith gives hope")
	assert.Contains(t, out, "Quadrant:")
	assert.Contains(t, out, "Reflect:")
}

func TestAnalyzeRejectsBlankQuote(t *testing.T) {
	_, err := execute(t, "   ", "analyze")
	assert.ErrorIs(t, err, scoring.ErrInvalidInput)
}

func TestAnalyzeRejectsUnknownReligion(t *testing.T) {
	_, err := execute(t, "", "analyze", "--religion", "zeus", "peace")
	assert.ErrorIs(t, err, scoring.ErrInvalidInput)
}

func TestAnalyzeRejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, "", "analyze", "--format", "xml", "peace")
	assert.Error(t, err)
}

func TestAnalyzeRejectsNonPositiveSensitivity(t *testing.T) {
	_, err := execute(t, "", "analyze", "--sensitivity", "0", "peace")
	assert.Error(t, err)
}

func TestAnalyzeViaUpstream(t *testing.T) {
	want := referenceResult(t, "grace")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(analysis.Response{Quote: "grace", Religion: scoring.ReligionSikhism, Analysis: want})
	}))
	defer srv.Close()

	out, err := execute(t, "", "analyze", "-f", "json", "--religion", "sikhism", "--upstream", srv.URL, "grace")
	require.NoError(t, err)

	var resp analysis.Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, want, resp.Analysis)
}

func TestLexiconsJSON(t *testing.T) {
	out, err := execute(t, "", "lexicons", "--format", "json")
	require.NoError(t, err)

	var lex scoring.Lexicons
	require.NoError(t, json.Unmarshal([]byte(out), &lex))
	assert.Equal(t, scoring.AllLexicons(), lex)
}

func TestLexiconsText(t *testing.T) {
	out, err := execute(t, "", "lexicons", "-f", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "spiritual (")
	assert.Contains(t, out, "themes:")
}
