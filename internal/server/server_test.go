package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	v "github.com/Gobd/wordplay/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(slog.New(slog.NewTextHandler(io.Discard, nil)), "test")
	require.NoError(t, err)
	return s
}

func post(t *testing.T, s *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestTextEndpoints(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		path string
		in   string
		want string
	}{
		{"/rot13", "Caesar cipher? I much prefer Caesar salad!", "Pnrfne pvcure? V zhpu cersre Pnrfne fnynq!"},
		{"/rot13", "Pnrfne fnynq!", "Caesar salad!"},
		{"/correct", "This is  very funny  and    cool.Indeed!", "This is very funny and cool. Indeed!"},
		{"/robber", "this is fun", "tothohisos isos fofunon"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			body, err := json.Marshal(TextRequest{Text: tt.in})
			require.NoError(t, err)
			rec := post(t, s, tt.path, string(body))
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.want, decodeBody[TextResponse](t, rec).Text)
		})
	}
}

func TestBadRequests(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		name, path, body, errStr string
	}{
		{"empty text", "/rot13", `{"text":""}`, "text: cannot be blank."},
		{"malformed json", "/correct", `{"text":`, "unexpected EOF"},
		{"verb with digits", "/inflect", `{"verb":"hug2"}`, "verb: must be a single lower case English word."},
		{"unknown check", "/analyze", `{"text":"abc","checks":["anagram"]}`, "checks: (0: must be one of 'pangram', 'palindrome', 'frequency' got 'anagram'.)."},
		{"no words", "/translate", `{"words":[]}`, "words: cannot be blank."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, s, tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.errStr, decodeBody[ErrorResponse](t, rec).Error)
		})
	}
}

func TestInflect(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		in   string
		want InflectResponse
	}{
		{`{"verb":"try"}`, InflectResponse{Verb: "try", ThirdPerson: "tries", Participle: "trying"}},
		{`{"verb":" Lie "}`, InflectResponse{Verb: "lie", ThirdPerson: "lies", Participle: "lying"}},
		{`{"verb":"hug"}`, InflectResponse{Verb: "hug", ThirdPerson: "hugs", Participle: "hugging"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			rec := post(t, s, "/inflect", tt.in)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, tt.want, decodeBody[InflectResponse](t, rec))
		})
	}
}

func TestAnalyze(t *testing.T) {
	s := newTestServer(t)

	rec := post(t, s, "/analyze", `{"text":"wew"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decodeBody[AnalyzeResponse](t, rec)
	require.NotNil(t, resp.Pangram)
	require.NotNil(t, resp.Palindrome)
	assert.False(t, *resp.Pangram)
	assert.True(t, *resp.Palindrome)
	assert.Equal(t, map[string]int{"w": 2, "e": 1}, resp.Frequency)

	rec = post(t, s, "/analyze", `{"text":"The quick brown fox jumps over the lazy dog.","checks":["pangram"]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp = decodeBody[AnalyzeResponse](t, rec)
	require.NotNil(t, resp.Pangram)
	assert.True(t, *resp.Pangram)
	assert.Nil(t, resp.Palindrome)
	assert.Nil(t, resp.Frequency)
}

func TestTranslate(t *testing.T) {
	s := newTestServer(t)

	rec := post(t, s, "/translate", `{"words":["Merry"," christmas","and","happy","new","year"]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []string{"god", "jul", "och", "gott", "nytt", "år"}, decodeBody[TranslateResponse](t, rec).Words)

	rec = post(t, s, "/translate", `{"words":["happy","birthday"]}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, `unknown word: "birthday"`, decodeBody[ErrorResponse](t, rec).Error)
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t)

	rec := post(t, s, "/rot13", `{"text":"a"}`)
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	assert.Empty(t, RequestID(context.Background()))
}

func TestMetrics(t *testing.T) {
	s := newTestServer(t)
	post(t, s, "/rot13", `{"text":"a"}`)
	post(t, s, "/rot13", `{"text":""}`)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `wordplay_http_requests_total{route="/rot13",status="200"} 1`)
	assert.Contains(t, body, `wordplay_http_requests_total{route="/rot13",status="400"} 1`)
	assert.Contains(t, body, `wordplay_http_request_duration_seconds_count{route="/rot13"} 2`)
}

func TestMetricsCountRecoveredPanics(t *testing.T) {
	s := newTestServer(t)
	s.router.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `wordplay_http_requests_total{route="/boom",status="500"} 1`)
}

func TestBodyLimit(t *testing.T) {
	s := newTestServer(t)

	rec := post(t, s, "/rot13", `{"text":"`+strings.Repeat("a", maxBodyBytes)+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, decodeBody[ErrorResponse](t, rec).Error, "too large")

	// Within the byte cap but over the text length rule.
	rec = post(t, s, "/rot13", `{"text":"`+strings.Repeat("a", maxTextLength+1)+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeDefaultDocumented(t *testing.T) {
	s := newTestServer(t)
	schema := s.Doc().Paths.Value("/analyze").Post.RequestBody.Value.Content.Get("application/json").Schema.Value
	assert.Equal(t, []any{"pangram", "palindrome", "frequency"}, schema.Properties["checks"].Value.Default)
}

func TestDocs(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.Doc().Validate(context.Background()))

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		Info  struct{ Version string } `json:"info"`
		Paths map[string]any           `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "test", doc.Info.Version)
	for _, p := range []string{"/rot13", "/correct", "/robber", "/inflect", "/analyze", "/translate", "/healthz"} {
		assert.Contains(t, doc.Paths, p)
	}

	inflect := s.Doc().Paths.Value("/inflect").Post.RequestBody.Value.Content.Get("application/json").Schema.Value
	assert.Equal(t, []string{"verb"}, inflect.Required)
	assert.Contains(t, inflect.Properties["verb"].Value.Description, "single lower case English word")
}

func TestRequestRulesCoverFields(t *testing.T) {
	for _, req := range []any{&TextRequest{}, &InflectRequest{}, &AnalyzeRequest{}, &TranslateRequest{}} {
		assert.Empty(t, v.MissingRules(req), "%T", req)
	}
}
