package meeting

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

const (
	markdownContentType = "text/markdown; charset=utf-8"
	csvContentType      = "text/csv; charset=utf-8"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9]+`)

// ExportSummary renders the meeting as a Markdown document
func (s *MeetingService) ExportSummary(ctx context.Context, meetingID uuid.UUID) (*Export, error) {
	meeting, err := s.GetMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	return &Export{
		Filename:    exportFilename(meeting, "summary", "md"),
		ContentType: markdownContentType,
		Body:        []byte(RenderMarkdown(meeting)),
	}, nil
}

// ExportActions renders the meeting's action items as CSV
func (s *MeetingService) ExportActions(ctx context.Context, meetingID uuid.UUID) (*Export, error) {
	meeting, err := s.GetMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	body, err := RenderActionsCSV(meeting.ActionItems)
	if err != nil {
		return nil, fmt.Errorf("failed to render csv: %w", err)
	}

	return &Export{
		Filename:    exportFilename(meeting, "actions", "csv"),
		ContentType: csvContentType,
		Body:        body,
	}, nil
}

// RenderMarkdown builds the summary document for a fully loaded meeting
func RenderMarkdown(meeting *entities.Meeting) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", meeting.Title)
	fmt.Fprintf(&b, "**Date:** %s\n\n", meeting.CreatedAt.Format("January 2, 2006 3:04 PM"))

	if meeting.Summary != nil {
		writeSection(&b, "Key Points", meeting.Summary.Bullets)
		writeSection(&b, "Decisions", meeting.Summary.Decisions)
		writeSection(&b, "Risks", meeting.Summary.Risks)
	} else {
		b.WriteString("_No summary generated yet._\n\n")
	}

	if len(meeting.ActionItems) > 0 {
		b.WriteString("## Action Items\n\n")
		for _, item := range meeting.ActionItems {
			check := " "
			if item.Status == entities.ActionStatusCompleted {
				check = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s", check, item.Text)
			if item.Assignee != nil {
				fmt.Fprintf(&b, " (%s)", *item.Assignee)
			}
			if due := item.DueDateString(); due != "" {
				fmt.Fprintf(&b, " - due %s", due)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if meeting.Transcript != nil {
		b.WriteString("## Transcript\n\n")
		b.WriteString(strings.TrimSpace(meeting.Transcript.Text))
		b.WriteString("\n")
	}

	return b.String()
}

func writeSection(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", heading)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

// RenderActionsCSV writes Action,Assignee,Due Date,Status,Created rows
func RenderActionsCSV(items []entities.ActionItem) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Action", "Assignee", "Due Date", "Status", "Created"}); err != nil {
		return nil, err
	}
	for _, item := range items {
		assignee := ""
		if item.Assignee != nil {
			assignee = *item.Assignee
		}
		row := []string{
			item.Text,
			assignee,
			item.DueDateString(),
			string(item.Status),
			item.CreatedAt.Format("2006-01-02"),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportFilename(meeting *entities.Meeting, kind, ext string) string {
	slug := strings.Trim(unsafeFilenameChars.ReplaceAllString(strings.ToLower(meeting.Title), "-"), "-")
	if slug == "" {
		slug = "meeting"
	}
	return fmt.Sprintf("%s-%s.%s", slug, kind, ext)
}
