package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseSummaryJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"plain", `{"bullets":["a"],"decisions":["b"],"risks":["c"],"actions":[]}`},
		{"json fence", "```json\n{\"bullets\":[\"a\"],\"decisions\":[\"b\"],\"risks\":[\"c\"],\"actions\":[]}\n```"},
		{"bare fence", "```\n{\"bullets\":[\"a\"],\"decisions\":[\"b\"],\"risks\":[\"c\"]}\n```"},
		{"prose around object", "Sure! Here is the summary:\n{\"bullets\":[\"a\"],\"decisions\":[\"b\"],\"risks\":[\"c\"]}\nLet me know if you need more."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ParseSummaryJSON(tt.content)
			require.NoError(t, err)
			assert.Equal(t, []string{"a"}, data.Bullets)
			assert.Equal(t, []string{"b"}, data.Decisions)
			assert.Equal(t, []string{"c"}, data.Risks)
		})
	}
}

func TestParseSummaryJSON_Invalid(t *testing.T) {
	for _, content := range []string{"", "no json here", "} backwards {", "{not: valid}"} {
		_, err := ParseSummaryJSON(content)
		assert.ErrorIs(t, err, ErrInvalidJSON, content)
	}
}

func TestNormalize(t *testing.T) {
	blank := "  "
	alice := " Alice "
	goodDate := "2025-03-14"
	badDate := "next Friday"

	data := &SummaryData{
		Bullets: []string{"point", " "},
		Actions: []ActionDraft{
			{Text: "  "},
			{Text: "Ship it", Assignee: &alice, DueDate: &goodDate, Status: "in_progress"},
			{Text: "Follow up", Assignee: &blank, DueDate: &badDate, Status: "pending"},
		},
	}

	out := Normalize(data, zap.NewNop())

	assert.Equal(t, []string{"point"}, out.Bullets)
	assert.NotNil(t, out.Decisions)
	assert.NotNil(t, out.Risks)
	require.Len(t, out.Actions, 2)

	assert.Equal(t, "Ship it", out.Actions[0].Text)
	require.NotNil(t, out.Actions[0].Assignee)
	assert.Equal(t, "Alice", *out.Actions[0].Assignee)
	require.NotNil(t, out.Actions[0].DueDate)
	assert.Equal(t, StatusInProgress, out.Actions[0].Status)

	assert.Nil(t, out.Actions[1].Assignee)
	assert.Nil(t, out.Actions[1].DueDate)
	assert.Equal(t, StatusOpen, out.Actions[1].Status)
}

func TestNormalize_Nil(t *testing.T) {
	out := Normalize(nil, nil)
	assert.Empty(t, out.Bullets)
	assert.Empty(t, out.Actions)
}
