package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TenKenZero/cronologia/config"
)

func TestCleanJSON(t *testing.T) {
	t.Run("passes bare JSON through", func(t *testing.T) {
		assert.Equal(t, `{"a":1}`, cleanJSON(`{"a":1}`))
	})

	t.Run("strips json fences", func(t *testing.T) {
		in := "```json\n{\"a\":1}\n```"
		assert.Equal(t, `{"a":1}`, cleanJSON(in))
	})

	t.Run("strips anonymous fences", func(t *testing.T) {
		in := "```\n[\"x\"]\n```"
		assert.Equal(t, `["x"]`, cleanJSON(in))
	})

	t.Run("drops preamble before the fence", func(t *testing.T) {
		in := "Here is your JSON:\n```json\n{\"a\":1}\n```\nEnjoy!"
		assert.Equal(t, `{"a":1}`, cleanJSON(in))
	})
}

func TestParseTimeline(t *testing.T) {
	t.Run("valid timeline", func(t *testing.T) {
		raw := `{"title":"The Evolution of Rome","stages":[{"order":1,"name":"Founding","description":"Romulus and the early kings."}]}`
		tl, err := parseTimeline(raw)
		require.NoError(t, err)
		assert.Equal(t, "The Evolution of Rome", tl.Title)
		require.Len(t, tl.Stages, 1)
		assert.Equal(t, 1, tl.Stages[0].Order)
		assert.Equal(t, "Founding", tl.Stages[0].Name)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		_, err := parseTimeline("not json at all")
		assert.Error(t, err)
	})

	t.Run("rejects structurally empty timelines", func(t *testing.T) {
		_, err := parseTimeline(`{"title":"","stages":[]}`)
		assert.Error(t, err)

		_, err = parseTimeline(`{"title":"X","stages":[]}`)
		assert.Error(t, err)
	})
}

func TestParsePromptList(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		prompts, err := parsePromptList(`["a","b","c"]`)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, prompts)
	})

	t.Run("wrapped object", func(t *testing.T) {
		prompts, err := parsePromptList(`{"prompts":["a","b"]}`)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, prompts)
	})

	t.Run("fenced array", func(t *testing.T) {
		prompts, err := parsePromptList("```json\n[\"a\"]\n```")
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, prompts)
	})

	t.Run("rejects non-list payloads", func(t *testing.T) {
		_, err := parsePromptList(`"just a string"`)
		assert.Error(t, err)
	})
}

func TestFallbackShapes(t *testing.T) {
	t.Run("fallback timeline", func(t *testing.T) {
		tl := fallbackTimeline("The Roman Empire")
		assert.Equal(t, "Timeline of The Roman Empire", tl.Title)
		require.Len(t, tl.Stages, 1)
		assert.Equal(t, 1, tl.Stages[0].Order)
		assert.Equal(t, "History of The Roman Empire", tl.Stages[0].Name)
		assert.Equal(t, "An overview of the historical evolution of The Roman Empire.", tl.Stages[0].Description)
	})

	t.Run("fallback prompts always number three", func(t *testing.T) {
		assert.Len(t, fallbackImagePrompts("Rome", "Founding"), 3)
		assert.Len(t, fallbackCoverPrompts("Rome"), 3)
	})
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg, err := config.Load("absent.yaml")
	require.NoError(t, err)

	return &Client{
		cfg:        cfg,
		apiKey:     "test-key",
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    srv.URL,
		retryDelay: time.Millisecond,
	}
}

func fakeJPEGBase64() string {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	return base64.StdEncoding.EncodeToString(data)
}

func TestGenerateTimelineViaHTTP(t *testing.T) {
	t.Run("parses a model reply", func(t *testing.T) {
		body := `{"title":"The Evolution of Rome","stages":[{"order":1,"name":"Founding","description":"Early days."},{"order":2,"name":"Republic","description":"Senate rule."}]}`
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			resp := map[string]any{
				"candidates": []map[string]any{
					{"content": map[string]any{"parts": []map[string]any{{"text": body}}}},
				},
			}
			_ = json.NewEncoder(w).Encode(resp)
		})

		tl := c.GenerateTimeline(context.Background(), "Rome")
		require.NotNil(t, tl)
		assert.Equal(t, "The Evolution of Rome", tl.Title)
		assert.Len(t, tl.Stages, 2)
	})

	t.Run("degrades to the fallback on an API error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"message": "quota exceeded"},
			})
		})

		tl := c.GenerateTimeline(context.Background(), "Rome")
		require.NotNil(t, tl, "a timeline is always returned")
		assert.Equal(t, "Timeline of Rome", tl.Title)
		require.Len(t, tl.Stages, 1)
	})
}

func TestGenerateImagesUnderDelivery(t *testing.T) {
	// Second prompt fails; the client returns only what it produced.
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 2 {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"message": "safety filter"},
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"predictions": []map[string]any{
				{"bytesBase64Encoded": fakeJPEGBase64()},
			},
		})
	})

	dir := t.TempDir()
	paths := c.GenerateImages(context.Background(), []string{"p1", "p2", "p3"}, dir, "run_stage1")
	assert.Len(t, paths, 2)
	for _, p := range paths {
		assert.FileExists(t, p)
	}
}
