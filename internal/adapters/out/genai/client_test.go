package genai_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medassist/internal/adapters/out/genai"
	"medassist/internal/core/domain/model/catalog"
	"medassist/internal/core/domain/model/chat"
	"medassist/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Path   string
	APIKey string
	Body   map[string]any
}

// modelServer answers every generateContent call with reply and records the request.
func modelServer(t *testing.T, status int, reply string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.Path = r.URL.Path
		captured.APIKey = r.Header.Get("x-goog-api-key")
		_ = json.NewDecoder(r.Body).Decode(&captured.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []any{map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": reply}},
				},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func newClient(t *testing.T, baseURL string, opts ...genai.Option) *genai.Client {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	opts = append([]genai.Option{genai.WithBaseURL(baseURL), genai.WithModel("test-model")}, opts...)
	client, err := genai.NewClient(t.Context(), "test-key", logger, opts...)
	require.NoError(t, err)
	return client
}

func TestClient_Complete(t *testing.T) {
	srv, captured := modelServer(t, http.StatusOK, "Drink plenty of water.")
	client := newClient(t, srv.URL)

	greeting, err := chat.NewMessage(chat.SenderBot, "Hello! How can I help?", time.Now())
	require.NoError(t, err)

	answer, err := client.Complete(t.Context(), []*chat.Message{greeting}, "I have a mild fever")

	require.NoError(t, err)
	assert.Equal(t, "Drink plenty of water.", answer)
	assert.Equal(t, "/v1beta/models/test-model:generateContent", captured.Path)
	assert.Equal(t, "test-key", captured.APIKey)

	contents, ok := captured.Body["contents"].([]any)
	require.True(t, ok)
	require.Len(t, contents, 2)
	assert.Equal(t, "model", contents[0].(map[string]any)["role"])
	assert.Equal(t, "user", contents[1].(map[string]any)["role"])
	assert.Contains(t, captured.Body, "systemInstruction")
}

func TestClient_Analyze(t *testing.T) {
	srv, captured := modelServer(t, http.StatusOK, "A prescription for amoxicillin.")
	client := newClient(t, srv.URL)

	answer, err := client.Analyze(t.Context(), []byte("fake-png"), "image/png", "Describe this")

	require.NoError(t, err)
	assert.Equal(t, "A prescription for amoxicillin.", answer)

	contents := captured.Body["contents"].([]any)
	parts := contents[0].(map[string]any)["parts"].([]any)
	require.Len(t, parts, 2)
	inline := parts[0].(map[string]any)["inlineData"].(map[string]any)
	assert.Equal(t, "image/png", inline["mimeType"])
	assert.Equal(t, "ZmFrZS1wbmc=", inline["data"])
	assert.Equal(t, "Describe this", parts[1].(map[string]any)["text"])
}

func TestClient_Search(t *testing.T) {
	reply := "```json\n" + `[
		{"id":"m1","name":"Paracetamol","description":"Fever relief","price":30,"type":"medicine","category":"Analgesic"},
		{"id":"l1","name":"Thyroid Profile","description":"T3 T4 TSH","price":499,"type":"lab_test","preparation":"None"},
		{"id":"bad","name":"Free sample","description":"no price","price":0,"type":"medicine","category":"Misc"},
		{"id":"x1","name":"Massage","description":"not sold here","price":900,"type":"service"}
	]` + "\n```"
	srv, captured := modelServer(t, http.StatusOK, reply)
	client := newClient(t, srv.URL)

	items, err := client.Search(t.Context(), "fever")

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Paracetamol", items[0].Name)
	assert.True(t, items[0].IsMedicine())
	assert.Equal(t, catalog.TypeLabTest, items[1].Type)
	assert.Equal(t, "499", items[1].Price.String())

	cfg := captured.Body["generationConfig"].(map[string]any)
	assert.Equal(t, "application/json", cfg["responseMimeType"])
	schema := cfg["responseSchema"].(map[string]any)
	assert.Equal(t, "ARRAY", schema["type"])
	itemSchema := schema["items"].(map[string]any)
	assert.Equal(t, "OBJECT", itemSchema["type"])
	assert.Contains(t, itemSchema["required"], "price")
}

func TestClient_Search_NotAnArray(t *testing.T) {
	srv, _ := modelServer(t, http.StatusOK, "Sorry, I cannot help with that.")
	client := newClient(t, srv.URL)

	_, err := client.Search(t.Context(), "fever")

	require.ErrorIs(t, err, ports.ErrExternalServiceFailure)
}

func TestClient_Failures(t *testing.T) {
	t.Run("missing credential", func(t *testing.T) {
		srv, captured := modelServer(t, http.StatusOK, "unused")
		client, err := genai.NewClient(t.Context(), "", nil, genai.WithBaseURL(srv.URL))
		require.NoError(t, err)

		_, err = client.Complete(t.Context(), nil, "hi")

		require.ErrorIs(t, err, genai.ErrMissingCredential)
		require.ErrorIs(t, err, ports.ErrExternalServiceFailure)
		assert.True(t, genai.IsMissingCredential(err))
		assert.Empty(t, captured.Path)
	})

	t.Run("non 200 status", func(t *testing.T) {
		srv, _ := modelServer(t, http.StatusTooManyRequests, "")
		client := newClient(t, srv.URL)

		_, err := client.Complete(t.Context(), nil, "hi")

		require.ErrorIs(t, err, ports.ErrExternalServiceFailure)
		assert.Contains(t, err.Error(), "429")
		assert.Contains(t, err.Error(), "quota exceeded")
	})

	t.Run("empty answer", func(t *testing.T) {
		srv, _ := modelServer(t, http.StatusOK, "   ")
		client := newClient(t, srv.URL)

		_, err := client.Analyze(t.Context(), []byte{1}, "image/png", "Describe")

		require.ErrorIs(t, err, genai.ErrEmptyResponse)
	})

	t.Run("unreachable host", func(t *testing.T) {
		srv, _ := modelServer(t, http.StatusOK, "unused")
		url := srv.URL
		srv.Close()
		client := newClient(t, url)

		_, err := client.Complete(t.Context(), nil, "hi")

		require.ErrorIs(t, err, ports.ErrExternalServiceFailure)
	})
}

type countingTransport struct {
	calls int
}

func (c *countingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	c.calls++
	return http.DefaultTransport.RoundTrip(r)
}

func TestClient_UsesGivenHTTPClient(t *testing.T) {
	srv, _ := modelServer(t, http.StatusOK, "ok")
	transport := &countingTransport{}
	client := newClient(t, srv.URL, genai.WithHTTPClient(&http.Client{Transport: transport}))

	answer, err := client.Complete(t.Context(), nil, "hi")

	require.NoError(t, err)
	assert.Equal(t, "ok", answer)
	assert.Equal(t, 1, transport.calls)
}
