package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

func completionServer(t *testing.T, reply string, gotReq *map[string]any) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		if gotReq != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(gotReq))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "cmpl-1",
			"object":  "chat.completion",
			"model":   "test-model",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": reply},
				"finish_reason": "stop",
			}},
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNewOpenAI(t *testing.T) {
	t.Run("missing api key is an error", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")
		_, err := NewOpenAI("")
		assert.Error(t, err)
	})

	t.Run("falls back to the environment", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "env-key")
		_, err := NewOpenAI("")
		assert.NoError(t, err)
	})
}

func TestGenerateContent(t *testing.T) {
	ctx := context.Background()

	t.Run("maps roles, model and temperature onto the wire request", func(t *testing.T) {
		var gotReq map[string]any
		server := completionServer(t, "pho is a must", &gotReq)

		model, err := NewOpenAI("test-key",
			WithBaseURL(server.URL), WithModel("test-model"))
		require.NoError(t, err)

		resp, err := model.GenerateContent(ctx, []llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, "you are a food expert"),
			llms.TextParts(llms.ChatMessageTypeHuman, "what should I eat"),
		}, llms.WithTemperature(0.3))
		require.NoError(t, err)

		require.Len(t, resp.Choices, 1)
		assert.Equal(t, "pho is a must", resp.Choices[0].Content)
		assert.Equal(t, "stop", resp.Choices[0].StopReason)

		assert.Equal(t, "test-model", gotReq["model"])
		assert.InDelta(t, 0.3, gotReq["temperature"], 1e-6)

		messages, ok := gotReq["messages"].([]any)
		require.True(t, ok)
		require.Len(t, messages, 2)
		first := messages[0].(map[string]any)
		second := messages[1].(map[string]any)
		assert.Equal(t, "system", first["role"])
		assert.Equal(t, "you are a food expert", first["content"])
		assert.Equal(t, "user", second["role"])
	})

	t.Run("endpoint failure surfaces as an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
		}))
		t.Cleanup(server.Close)

		model, err := NewOpenAI("test-key", WithBaseURL(server.URL))
		require.NoError(t, err)

		_, err = model.GenerateContent(ctx, []llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeHuman, "hello"),
		})
		assert.ErrorContains(t, err, "chat completion failed")
	})
}

func TestCall(t *testing.T) {
	server := completionServer(t, "hi there", nil)

	model, err := NewOpenAI("test-key", WithBaseURL(server.URL))
	require.NoError(t, err)

	out, err := model.Call(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hi there", out)
}
