package ai

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/johnquangdev/meeting-summarizer/pkg/config"
	"go.uber.org/zap"
)

// ResolveName maps the configured provider to a canonical provider name. An empty
// or "auto" value picks openai, then huggingface, then mock by available credentials.
// Unrecognised values resolve to mock and are reported through the error.
func ResolveName(cfg config.ProviderConfig) (string, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Name)) {
	case "", "auto":
		switch {
		case cfg.OpenAIAPIKey != "":
			return ProviderOpenAI, nil
		case cfg.HFToken != "":
			return ProviderHuggingFace, nil
		}
		return ProviderMock, nil
	case ProviderMock:
		return ProviderMock, nil
	case ProviderOpenAI:
		return ProviderOpenAI, nil
	case ProviderHuggingFace, "hf", "hugging_face":
		return ProviderHuggingFace, nil
	case ProviderAssemblyAI:
		return ProviderAssemblyAI, nil
	}
	return ProviderMock, fmt.Errorf("unknown provider %q", cfg.Name)
}

// New builds the configured provider. An explicitly selected provider without its
// credential is an error.
func New(cfg config.ProviderConfig, logger *zap.Logger) (Provider, error) {
	name, err := ResolveName(cfg)
	if err != nil {
		logger.Warn("falling back to mock provider", zap.Error(err))
	}

	client := &http.Client{Timeout: cfg.Timeout}

	switch name {
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for provider %s", name)
		}
		return NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIChatModel, client, logger), nil
	case ProviderHuggingFace:
		if cfg.HFToken == "" {
			return nil, fmt.Errorf("HF_TOKEN is required for provider %s", name)
		}
		return NewHuggingFaceProvider(cfg.HFToken, cfg.HFBaseURL, cfg.HFTextModel, client, logger), nil
	case ProviderAssemblyAI:
		if cfg.AssemblyAIKey == "" || cfg.GroqAPIKey == "" {
			return nil, fmt.Errorf("ASSEMBLYAI_API_KEY and GROQ_API_KEY are required for provider %s", name)
		}
		return NewAssemblyAIProvider(cfg.AssemblyAIKey, cfg.AssemblyAIURL, cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModel, client, logger), nil
	}
	return NewMockProvider(cfg.MockDelay), nil
}
