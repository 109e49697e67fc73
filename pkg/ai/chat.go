package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ChatClient is a minimal client for OpenAI-compatible chat completion APIs
type ChatClient struct {
	provider string
	apiKey   string
	endpoint string
	model    string
	jsonMode bool
	client   *http.Client
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model          string            `json:"model"`
	Messages       []ChatMessage     `json:"messages"`
	Temperature    float64           `json:"temperature"`
	MaxTokens      int               `json:"max_tokens,omitempty"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}

// ChatMessage is a single chat turn
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewChatClient creates a chat client posting to endpoint
func NewChatClient(provider, apiKey, endpoint, model string, jsonMode bool, client *http.Client) *ChatClient {
	return &ChatClient{
		provider: provider,
		apiKey:   apiKey,
		endpoint: endpoint,
		model:    model,
		jsonMode: jsonMode,
		client:   client,
	}
}

// Complete sends the prompt and returns the assistant content
func (c *ChatClient) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := ChatRequest{
		Model: c.model,
		Messages: []ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.3,
		MaxTokens:   1000,
	}
	if c.jsonMode {
		reqBody.ResponseFormat = map[string]string{"type": "json_object"}
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", summarizeError(c.provider, 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(b))
	if err != nil {
		return "", summarizeError(c.provider, 0, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", summarizeError(c.provider, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", summarizeError(c.provider, resp.StatusCode,
			fmt.Errorf("%s returned status %d: %s", c.provider, resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", summarizeError(c.provider, resp.StatusCode, err)
	}
	if len(cr.Choices) == 0 {
		return "", summarizeError(c.provider, resp.StatusCode, fmt.Errorf("empty response from %s", c.provider))
	}
	return cr.Choices[0].Message.Content, nil
}

// Summarize runs the summary prompt and decodes the JSON answer
func (c *ChatClient) Summarize(ctx context.Context, transcript string) (*SummaryData, error) {
	content, err := c.Complete(ctx, fmt.Sprintf(summaryPrompt, transcript))
	if err != nil {
		return nil, err
	}
	data, err := ParseSummaryJSON(content)
	if err != nil {
		return nil, summarizeError(c.provider, 0, err)
	}
	return data, nil
}
