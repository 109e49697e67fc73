package presenter

import (
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/repositories"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meeting.MeetingResponse {
	if m == nil {
		return nil
	}
	return &meeting.MeetingResponse{
		ID:        m.ID.String(),
		Title:     m.Title,
		CreatedAt: m.CreatedAt,
	}
}

// ToMeetingListResponse converts a slice of meetings, never returning nil
func ToMeetingListResponse(meetings []*entities.Meeting) []*meeting.MeetingResponse {
	out := make([]*meeting.MeetingResponse, len(meetings))
	for i, m := range meetings {
		out[i] = ToMeetingResponse(m)
	}
	return out
}

// ToMeetingDetailResponse converts a fully loaded meeting
func ToMeetingDetailResponse(m *entities.Meeting) *meeting.MeetingDetailResponse {
	if m == nil {
		return nil
	}

	actions := make([]*meeting.ActionItemResponse, len(m.ActionItems))
	for i := range m.ActionItems {
		actions[i] = ToActionItemResponse(&m.ActionItems[i])
	}

	return &meeting.MeetingDetailResponse{
		ID:         m.ID.String(),
		Title:      m.Title,
		CreatedAt:  m.CreatedAt,
		Transcript: ToTranscriptResponse(m.Transcript),
		Summary:    ToSummaryResponse(m.Summary),
		Actions:    actions,
	}
}

// ToTranscriptResponse converts a Transcript entity to TranscriptResponse DTO
func ToTranscriptResponse(t *entities.Transcript) *meeting.TranscriptResponse {
	if t == nil {
		return nil
	}
	return &meeting.TranscriptResponse{
		ID:          t.ID.String(),
		Text:        t.Text,
		DurationSec: t.DurationSec,
		CreatedAt:   t.CreatedAt,
	}
}

// ToSummaryResponse converts a Summary entity to SummaryResponse DTO
func ToSummaryResponse(s *entities.Summary) *meeting.SummaryResponse {
	if s == nil {
		return nil
	}
	return &meeting.SummaryResponse{
		ID:        s.ID.String(),
		Bullets:   nonNil(s.Bullets),
		Decisions: nonNil(s.Decisions),
		Risks:     nonNil(s.Risks),
		CreatedAt: s.CreatedAt,
	}
}

// ToActionItemResponse converts an ActionItem entity; due dates render as YYYY-MM-DD
func ToActionItemResponse(a *entities.ActionItem) *meeting.ActionItemResponse {
	if a == nil {
		return nil
	}

	response := &meeting.ActionItemResponse{
		ID:        a.ID.String(),
		MeetingID: a.MeetingID.String(),
		Text:      a.Text,
		Assignee:  a.Assignee,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if due := a.DueDateString(); due != "" {
		response.DueDate = &due
	}
	return response
}

// ToActionItemListResponse converts a slice of action items, never returning nil
func ToActionItemListResponse(items []*entities.ActionItem) []*meeting.ActionItemResponse {
	out := make([]*meeting.ActionItemResponse, len(items))
	for i, item := range items {
		out[i] = ToActionItemResponse(item)
	}
	return out
}

// ToStatsResponse converts repository counters
func ToStatsResponse(s *repositories.Stats) *meeting.StatsResponse {
	if s == nil {
		return &meeting.StatsResponse{}
	}
	return &meeting.StatsResponse{
		TotalMeetings:    s.TotalMeetings,
		TranscribedCount: s.TranscribedCount,
		SummarizedCount:  s.SummarizedCount,
		ActionItemsCount: s.ActionItemsCount,
	}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
