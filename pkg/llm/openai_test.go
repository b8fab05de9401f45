package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

const chatCompletionBody = `{
	"id": "gen-1",
	"object": "chat.completion",
	"created": 1760000000,
	"model": "deepseek/deepseek-chat",
	"choices": [{
		"index": 0,
		"finish_reason": "stop",
		"logprobs": null,
		"message": {"role": "assistant", "content": "{\"linkedinMsg\":\"Hi\"}", "refusal": null}
	}],
	"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
}`

func TestOpenAIComplete(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatCompletionBody))
	}))
	defer srv.Close()

	client := NewOpenAIClient(OpenAIConfig{
		APIKey:      "test-key",
		BaseURL:     srv.URL + "/api/v1/",
		Temperature: 0.7,
	})

	got, err := client.Complete(context.Background(), "write a message")

	assert.Equal(t, nil, err)
	assert.Equal(t, `{"linkedinMsg":"Hi"}`, got.Text)
	assert.Equal(t, DefaultChatModel, got.ModelUsed)
	assert.Equal(t, true, strings.HasSuffix(gotPath, "/chat/completions"))
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, DefaultChatModel, gotBody["model"])
	assert.Equal(t, 0.7, gotBody["temperature"])
}

func TestOpenAICompleteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "No auth credentials found", "code": 401}}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient(OpenAIConfig{APIKey: "bad-key", BaseURL: srv.URL + "/"})

	got, err := client.Complete(context.Background(), "write a message")

	assert.NotEqual(t, nil, err)
	assert.Equal(t, true, got == nil)
}

func TestOpenAICompleteNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "gen-2", "object": "chat.completion", "created": 1, "model": "m", "choices": []}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL + "/"})

	_, err := client.Complete(context.Background(), "write a message")

	assert.Equal(t, ErrNoChoices, err)
}
