package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Transcription models tried in order
var openAITranscribeModels = []string{"gpt-4o-transcribe", "whisper-1"}

// OpenAIProvider uses the OpenAI audio and chat completion APIs
type OpenAIProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
	chat    *ChatClient
	logger  *zap.Logger
}

// NewOpenAIProvider creates an OpenAI provider
func NewOpenAIProvider(apiKey, baseURL, chatModel string, client *http.Client, logger *zap.Logger) *OpenAIProvider {
	baseURL = strings.TrimRight(baseURL, "/")
	return &OpenAIProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
		chat:    NewChatClient(ProviderOpenAI, apiKey, baseURL+"/v1/chat/completions", chatModel, true, client),
		logger:  logger,
	}
}

func (p *OpenAIProvider) Name() string { return ProviderOpenAI }

// Transcribe tries gpt-4o-transcribe and falls back to whisper-1 once
func (p *OpenAIProvider) Transcribe(ctx context.Context, audio Audio) (string, error) {
	var lastErr error
	for i, model := range openAITranscribeModels {
		text, err := p.transcribeWith(ctx, model, audio)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if i < len(openAITranscribeModels)-1 {
			p.logger.Warn("transcription model failed, falling back",
				zap.String("model", model),
				zap.Error(err),
			)
		}
	}

	var provErr *ProviderError
	if errors.As(lastErr, &provErr) {
		return "", provErr
	}
	return "", transcribeError(ProviderOpenAI, 0, lastErr)
}

func (p *OpenAIProvider) transcribeWith(ctx context.Context, model string, audio Audio) (string, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	filename := audio.Filename
	if filename == "" {
		filename = "audio"
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(audio.Data); err != nil {
		return "", err
	}
	if err := w.WriteField("model", model); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/audio/transcriptions", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := p.client.Do(req)
	if err != nil {
		return "", transcribeError(ProviderOpenAI, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", transcribeError(ProviderOpenAI, resp.StatusCode,
			fmt.Errorf("%s: %s", model, strings.TrimSpace(string(msg))))
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", transcribeError(ProviderOpenAI, resp.StatusCode, err)
	}
	if strings.TrimSpace(out.Text) == "" {
		return "", transcribeError(ProviderOpenAI, resp.StatusCode, fmt.Errorf("%s returned empty text", model))
	}
	return out.Text, nil
}

func (p *OpenAIProvider) Summarize(ctx context.Context, transcript string) (*SummaryData, error) {
	return p.chat.Summarize(ctx, transcript)
}
