package meeting

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/meeting-summarizer/internal/usecase/errors"
)

func TestRenderMarkdown_WithoutSummary(t *testing.T) {
	m := entities.NewMeeting("Kickoff")
	m.CreatedAt = time.Date(2025, 3, 4, 15, 30, 0, 0, time.UTC)

	md := RenderMarkdown(m)
	assert.True(t, strings.HasPrefix(md, "# Kickoff\n\n"))
	assert.Contains(t, md, "**Date:** March 4, 2025 3:30 PM")
	assert.Contains(t, md, "_No summary generated yet._")
	assert.NotContains(t, md, "## Action Items")
	assert.NotContains(t, md, "## Transcript")
}

func TestRenderMarkdown_Full(t *testing.T) {
	m := entities.NewMeeting("Kickoff")
	m.Summary = entities.NewSummary(m.ID, []string{"Scope agreed"}, []string{"Ship in May"}, nil)
	m.Transcript = entities.NewTranscript(m.ID, "  hello team  ", 0)

	done := entities.NewActionItem(m.ID, "Write brief")
	done.Status = entities.ActionStatusCompleted
	ana := "Ana"
	done.Assignee = &ana
	due, err := entities.ParseDueDate("2025-04-01")
	require.NoError(t, err)
	done.DueDate = due
	m.ActionItems = []entities.ActionItem{*done, *entities.NewActionItem(m.ID, "Book venue")}

	md := RenderMarkdown(m)
	assert.Contains(t, md, "## Key Points\n\n- Scope agreed\n")
	assert.Contains(t, md, "## Decisions\n\n- Ship in May\n")
	assert.NotContains(t, md, "## Risks")
	assert.Contains(t, md, "- [x] Write brief (Ana) - due 2025-04-01\n")
	assert.Contains(t, md, "- [ ] Book venue\n")
	assert.True(t, strings.HasSuffix(md, "## Transcript\n\nhello team\n"))
}

func TestRenderActionsCSV(t *testing.T) {
	meetingID := uuid.New()
	item := entities.NewActionItem(meetingID, "Review budget, then sign")
	item.CreatedAt = time.Date(2025, 5, 6, 9, 0, 0, 0, time.UTC)

	body, err := RenderActionsCSV([]entities.ActionItem{*item})
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(body))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Action", "Assignee", "Due Date", "Status", "Created"}, rows[0])
	assert.Equal(t, []string{"Review budget, then sign", "", "", "open", "2025-05-06"}, rows[1])
}

func TestRenderActionsCSV_HeaderOnly(t *testing.T) {
	body, err := RenderActionsCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "Action,Assignee,Due Date,Status,Created\n", string(body))
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "q3-review-summary.md", exportFilename(&entities.Meeting{Title: "Q3 Review!"}, "summary", "md"))
	assert.Equal(t, "meeting-actions.csv", exportFilename(&entities.Meeting{Title: "???"}, "actions", "csv"))
}

func TestExports(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.ExportSummary(ctx, uuid.New())
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingNotFound)

	m := env.createTranscribed(t, "Weekly Sync")
	_, _, err = env.svc.Summarize(ctx, m.ID)
	require.NoError(t, err)

	summary, err := env.svc.ExportSummary(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "weekly-sync-summary.md", summary.Filename)
	assert.Equal(t, "text/markdown; charset=utf-8", summary.ContentType)
	assert.Contains(t, string(summary.Body), "## Action Items")

	actions, err := env.svc.ExportActions(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "weekly-sync-actions.csv", actions.Filename)
	rows, err := csv.NewReader(strings.NewReader(string(actions.Body))).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 5)
}
