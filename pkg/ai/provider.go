package ai

import (
	"context"
	"fmt"
)

// Provider names
const (
	ProviderMock        = "mock"
	ProviderOpenAI      = "openai"
	ProviderHuggingFace = "huggingface"
	ProviderAssemblyAI  = "assemblyai"
)

// Operation names carried by ProviderError
const (
	OpTranscribe = "transcribe"
	OpSummarize  = "summarize"
)

// Action statuses a provider may emit
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Provider transcribes meeting audio and summarizes transcripts
type Provider interface {
	Name() string
	Transcribe(ctx context.Context, audio Audio) (string, error)
	Summarize(ctx context.Context, transcript string) (*SummaryData, error)
}

// Audio is an uploaded recording
type Audio struct {
	Filename    string
	ContentType string
	Data        []byte
}

// SummaryData is the structured result of summarization
type SummaryData struct {
	Bullets   []string      `json:"bullets"`
	Decisions []string      `json:"decisions"`
	Risks     []string      `json:"risks"`
	Actions   []ActionDraft `json:"actions"`
}

// ActionDraft is an action item proposed by a provider. DueDate is YYYY-MM-DD.
type ActionDraft struct {
	Text     string  `json:"text"`
	Assignee *string `json:"assignee,omitempty"`
	DueDate  *string `json:"due_date,omitempty"`
	Status   string  `json:"status"`
}

// ProviderError is returned for any failed upstream call
type ProviderError struct {
	Provider   string
	Op         string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s failed (status %d): %v", e.Provider, e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Provider, e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func transcribeError(provider string, status int, err error) error {
	return &ProviderError{Provider: provider, Op: OpTranscribe, StatusCode: status, Err: err}
}

func summarizeError(provider string, status int, err error) error {
	return &ProviderError{Provider: provider, Op: OpSummarize, StatusCode: status, Err: err}
}

// DisplayName returns the human readable provider name used in error messages
func DisplayName(name string) string {
	switch name {
	case ProviderOpenAI:
		return "OpenAI"
	case ProviderHuggingFace:
		return "Hugging Face"
	case ProviderAssemblyAI:
		return "AssemblyAI"
	case ProviderMock:
		return "Mock"
	}
	return name
}
