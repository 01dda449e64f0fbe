package llmclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/codeagent/internal/apperr"
	"github.com/xkilldash9x/codeagent/internal/config"
)

// -- Test Setup Helpers --

// setupGeminiClient points a GeminiClient at a mock HTTP server.
func setupGeminiClient(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := getValidLLMConfig()
	cfg.Endpoint = server.URL

	logger, _ := setupTestLogger(t)
	client, err := NewGeminiClient(context.Background(), cfg, logger)
	require.NoError(t, err)
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

// -- Initialization --

func TestNewGeminiClient_MissingAPIKey(t *testing.T) {
	logger, _ := setupTestLogger(t)
	cfg := getValidLLMConfig()
	cfg.APIKey = ""

	client, err := NewGeminiClient(context.Background(), cfg, logger)
	assert.Nil(t, client)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestNewGeminiClient_DefaultModel(t *testing.T) {
	logger, _ := setupTestLogger(t)
	cfg := getValidLLMConfig()
	cfg.Model = ""

	client, err := NewGeminiClient(context.Background(), cfg, logger)
	require.NoError(t, err)
	assert.Equal(t, "gemini-1.5-flash", client.Model())
}

// -- Requests --

func TestGeminiClient_GenerateText_Success(t *testing.T) {
	var captured map[string]any
	client := setupGeminiClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/test-model:generateContent"), r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))

		writeJSON(t, w, http.StatusOK, map[string]any{
			"candidates": []any{map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": "  def add(a, b): return a + b  "}},
				},
				"finishReason": "STOP",
			}},
			"usageMetadata": map[string]any{"promptTokenCount": 12, "candidatesTokenCount": 9, "totalTokenCount": 21},
		})
	})

	text, err := client.GenerateText(context.Background(), "add two numbers", GenerationConfig{MaxTokens: 256, Temperature: 0.7})
	require.NoError(t, err)
	// The raw text is returned untouched; trimming belongs to the adapter.
	assert.Equal(t, "  def add(a, b): return a + b  ", text)

	genCfg, ok := captured["generationConfig"].(map[string]any)
	require.True(t, ok, "request must carry a generationConfig")
	assert.EqualValues(t, 256, genCfg["maxOutputTokens"])
	assert.InDelta(t, 0.7, genCfg["temperature"], 0.0001)
	assert.Contains(t, mustMarshal(t, captured["contents"]), "add two numbers")
}

func TestGeminiClient_GenerateText_APIErrorIsClassifiable(t *testing.T) {
	client := setupGeminiClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusTooManyRequests, map[string]any{
			"error": map[string]any{
				"code":    429,
				"message": "You exceeded your current quota.",
				"status":  "RESOURCE_EXHAUSTED",
			},
		})
	})

	_, err := client.GenerateText(context.Background(), "prompt", GenerationConfig{MaxTokens: 10, Temperature: 0.7})
	require.Error(t, err)
	assert.Equal(t, apperr.RateLimitExceeded, apperr.KindOf(Classify(err)))
}

func TestGeminiClient_ThroughAdapter_EmptyCandidates(t *testing.T) {
	client := setupGeminiClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"candidates": []any{}})
	})
	logger, _ := setupTestLogger(t)
	adapter, err := NewAdapter(client, GenerationConfig{MaxTokens: 10, Temperature: 0.7}, logger)
	require.NoError(t, err)

	_, err = adapter.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Equal(t, apperr.EmptyResponse, apperr.KindOf(err))
}

// -- Factory --

func TestNewClient(t *testing.T) {
	logger, _ := setupTestLogger(t)

	t.Run("gemini", func(t *testing.T) {
		client, err := NewClient(context.Background(), getValidLLMConfig(), logger)
		require.NoError(t, err)
		assert.IsType(t, &GeminiClient{}, client)
	})

	t.Run("unsupported provider", func(t *testing.T) {
		cfg := getValidLLMConfig()
		cfg.Provider = config.LLMProvider("openai")
		client, err := NewClient(context.Background(), cfg, logger)
		assert.Nil(t, client)
		require.Error(t, err)
		assert.True(t, apperr.IsConfiguration(err))
		assert.Contains(t, err.Error(), "unsupported LLM provider")
	})

	t.Run("adapter from config", func(t *testing.T) {
		adapter, err := NewAdapterFromConfig(context.Background(), getValidLLMConfig(), logger)
		require.NoError(t, err)
		assert.Equal(t, GenerationConfig{MaxTokens: 256, Temperature: config.Temperature}, adapter.Config())
	})
}

func mustMarshal(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
