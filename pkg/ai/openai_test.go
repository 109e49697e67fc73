package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestOpenAI(url string) *OpenAIProvider {
	return NewOpenAIProvider("test-key", url, "gpt-4o-mini", &http.Client{Timeout: 5 * time.Second}, zap.NewNop())
}

func TestOpenAITranscribe_FallsBackOnce(t *testing.T) {
	var mu sync.Mutex
	var models []string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/audio/transcriptions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))

		model := r.FormValue("model")
		mu.Lock()
		models = append(models, model)
		mu.Unlock()

		if model == "gpt-4o-transcribe" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"model unavailable"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"text": "hello from whisper"})
	}))
	defer ts.Close()

	text, err := newTestOpenAI(ts.URL).Transcribe(context.Background(), Audio{Filename: "a.mp3", ContentType: "audio/mpeg", Data: []byte("abc")})
	require.NoError(t, err)
	assert.Equal(t, "hello from whisper", text)
	assert.Equal(t, []string{"gpt-4o-transcribe", "whisper-1"}, models)
}

func TestOpenAITranscribe_BothModelsFail(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := newTestOpenAI(ts.URL).Transcribe(context.Background(), Audio{Data: []byte("abc")})
	require.Error(t, err)
	assert.Equal(t, 2, calls)

	var provErr *ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, ProviderOpenAI, provErr.Provider)
	assert.Equal(t, OpTranscribe, provErr.Op)
	assert.Equal(t, http.StatusInternalServerError, provErr.StatusCode)
}

func TestOpenAITranscribe_EmptyTextIsFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"text": "  "})
	}))
	defer ts.Close()

	_, err := newTestOpenAI(ts.URL).Transcribe(context.Background(), Audio{Data: []byte("abc")})
	require.Error(t, err)
}

func TestOpenAISummarize(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)

		var req ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		assert.Equal(t, 0.3, req.Temperature)
		assert.Equal(t, 1000, req.MaxTokens)
		assert.Equal(t, "json_object", req.ResponseFormat["type"])
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)

		content := "```json\n{\"bullets\":[\"Budget approved\"],\"decisions\":[\"Hire two engineers\"],\"risks\":[\"Timeline\"],\"actions\":[{\"text\":\"Post job ads\",\"assignee\":\"Kim\",\"status\":\"open\"}]}\n```"
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"content": content}}},
		})
	}))
	defer ts.Close()

	data, err := newTestOpenAI(ts.URL).Summarize(context.Background(), "transcript")
	require.NoError(t, err)
	assert.Equal(t, []string{"Budget approved"}, data.Bullets)
	require.Len(t, data.Actions, 1)
	require.NotNil(t, data.Actions[0].Assignee)
	assert.Equal(t, "Kim", *data.Actions[0].Assignee)
}

func TestOpenAISummarize_InvalidJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"content": "I cannot help with that."}}},
		})
	}))
	defer ts.Close()

	_, err := newTestOpenAI(ts.URL).Summarize(context.Background(), "transcript")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidJSON)

	var provErr *ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, OpSummarize, provErr.Op)
}

func TestChatClient_UpstreamStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/openai/v1/chat/completions", r.URL.Path)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := NewChatClient(ProviderAssemblyAI, "groq-key", ts.URL+"/openai/v1/chat/completions", "llama", false, ts.Client())
	_, err := client.Summarize(context.Background(), "transcript")

	var provErr *ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, http.StatusTooManyRequests, provErr.StatusCode)
}
