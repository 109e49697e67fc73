package ai

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrInvalidJSON is returned when model output holds no decodable JSON object
var ErrInvalidJSON = errors.New("model did not return valid JSON")

const summaryPrompt = `Please analyze the following meeting transcript and provide:
1. Key bullet points (3-5)
2. Decisions (2-4)
3. Risks (1-3)
4. Action items with assignees

Return ONLY a JSON object with this exact shape:
{
  "bullets": ["..."],
  "decisions": ["..."],
  "risks": ["..."],
  "actions": [{"text": "...", "assignee": "name or null", "due_date": "YYYY-MM-DD or null", "status": "open"}]
}

Transcript:
%s`

const systemPrompt = "You are a helpful assistant that analyzes meeting transcripts and returns ONLY valid JSON with no prose or code fences."

// ParseSummaryJSON decodes a SummaryData from raw model output. The content is tried
// as-is, then with Markdown fences stripped, then as the span between the first '{'
// and the last '}'.
func ParseSummaryJSON(content string) (*SummaryData, error) {
	for _, candidate := range jsonCandidates(content) {
		var data SummaryData
		if err := json.Unmarshal([]byte(candidate), &data); err == nil {
			return &data, nil
		}
	}
	return nil, ErrInvalidJSON
}

func jsonCandidates(content string) []string {
	content = strings.TrimSpace(content)
	candidates := []string{content}

	stripped := stripCodeFence(content)
	if stripped != content {
		candidates = append(candidates, stripped)
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start != -1 && end > start {
		candidates = append(candidates, content[start:end+1])
	}
	return candidates
}

// stripCodeFence removes a surrounding ```json or ``` block
func stripCodeFence(content string) string {
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	if idx := strings.LastIndex(content, "```"); idx != -1 {
		content = content[:idx]
	}
	return strings.TrimSpace(content)
}

// Normalize drops empty drafts, coerces unknown statuses to open and clears due
// dates that are not YYYY-MM-DD. Nil list fields become empty lists.
func Normalize(data *SummaryData, logger *zap.Logger) *SummaryData {
	if data == nil {
		data = &SummaryData{}
	}
	out := &SummaryData{
		Bullets:   nonEmpty(data.Bullets),
		Decisions: nonEmpty(data.Decisions),
		Risks:     nonEmpty(data.Risks),
		Actions:   make([]ActionDraft, 0, len(data.Actions)),
	}

	for _, a := range data.Actions {
		a.Text = strings.TrimSpace(a.Text)
		if a.Text == "" {
			continue
		}
		if !IsValidStatus(a.Status) {
			a.Status = StatusOpen
		}
		if a.Assignee != nil {
			name := strings.TrimSpace(*a.Assignee)
			if name == "" || strings.EqualFold(name, "null") {
				a.Assignee = nil
			} else {
				a.Assignee = &name
			}
		}
		if a.DueDate != nil {
			if _, err := time.Parse(time.DateOnly, *a.DueDate); err != nil {
				if logger != nil {
					logger.Debug("dropping unparsable due date",
						zap.String("action", a.Text),
						zap.String("due_date", *a.DueDate),
					)
				}
				a.DueDate = nil
			}
		}
		out.Actions = append(out.Actions, a)
	}
	return out
}

// IsValidStatus reports whether s is one of the four action statuses
func IsValidStatus(s string) bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func nonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
