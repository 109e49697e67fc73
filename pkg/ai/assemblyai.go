package ai

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"go.uber.org/zap"
)

// AssemblyAIProvider transcribes with the AssemblyAI SDK and summarizes with Groq chat
type AssemblyAIProvider struct {
	client *aai.Client
	chat   *ChatClient
	logger *zap.Logger
}

// NewAssemblyAIProvider creates an AssemblyAI provider backed by a Groq chat client
func NewAssemblyAIProvider(apiKey, baseURL, groqKey, groqBaseURL, groqModel string, client *http.Client, logger *zap.Logger) *AssemblyAIProvider {
	endpoint := strings.TrimRight(groqBaseURL, "/") + "/openai/v1/chat/completions"
	opts := []aai.ClientOption{
		aai.WithAPIKey(apiKey),
		aai.WithHTTPClient(client),
	}
	if baseURL != "" {
		opts = append(opts, aai.WithBaseURL(baseURL))
	}
	return &AssemblyAIProvider{
		client: aai.NewClientWithOptions(opts...),
		chat:   NewChatClient(ProviderAssemblyAI, groqKey, endpoint, groqModel, false, client),
		logger: logger,
	}
}

func (p *AssemblyAIProvider) Name() string { return ProviderAssemblyAI }

// Transcribe uploads the audio and blocks until the transcript completes
func (p *AssemblyAIProvider) Transcribe(ctx context.Context, audio Audio) (string, error) {
	params := &aai.TranscriptOptionalParams{
		LanguageDetection: aai.Bool(true),
		SpeakerLabels:     aai.Bool(true),
	}

	transcript, err := p.client.Transcripts.TranscribeFromReader(ctx, bytes.NewReader(audio.Data), params)
	if err != nil {
		return "", transcribeError(ProviderAssemblyAI, 0, err)
	}

	if transcript.Status == aai.TranscriptStatusError {
		msg := "transcription failed"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return "", transcribeError(ProviderAssemblyAI, 0, fmt.Errorf("%s", msg))
	}

	text := aai.ToString(transcript.Text)
	if strings.TrimSpace(text) == "" {
		return "", transcribeError(ProviderAssemblyAI, 0, fmt.Errorf("empty transcript"))
	}

	p.logger.Debug("assemblyai transcript completed",
		zap.String("transcript_id", aai.ToString(transcript.ID)),
		zap.Int("chars", len(text)),
	)
	return text, nil
}

func (p *AssemblyAIProvider) Summarize(ctx context.Context, transcript string) (*SummaryData, error) {
	return p.chat.Summarize(ctx, transcript)
}
