package meeting

import "time"

// MeetingResponse represents a meeting in list responses
type MeetingResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// MeetingDetailResponse represents a meeting with everything derived from it
type MeetingDetailResponse struct {
	ID         string                `json:"id"`
	Title      string                `json:"title"`
	CreatedAt  time.Time             `json:"created_at"`
	Transcript *TranscriptResponse   `json:"transcript"`
	Summary    *SummaryResponse      `json:"summary"`
	Actions    []*ActionItemResponse `json:"actions"`
}

// TranscriptResponse represents a stored transcript
type TranscriptResponse struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	DurationSec int       `json:"duration_sec"`
	CreatedAt   time.Time `json:"created_at"`
}

// TranscriptionResponse is returned by the transcribe endpoint
type TranscriptionResponse struct {
	Text        string `json:"text"`
	DurationSec int    `json:"duration_sec"`
}

// SummaryResponse represents a stored summary
type SummaryResponse struct {
	ID        string    `json:"id"`
	Bullets   []string  `json:"bullets"`
	Decisions []string  `json:"decisions"`
	Risks     []string  `json:"risks"`
	CreatedAt time.Time `json:"created_at"`
}

// SummarizeResponse is returned by the summarize endpoint
type SummarizeResponse struct {
	*SummaryResponse
	Actions []*ActionItemResponse `json:"actions"`
}

// ActionItemResponse represents an action item
type ActionItemResponse struct {
	ID        string    `json:"id"`
	MeetingID string    `json:"meeting_id"`
	Text      string    `json:"text"`
	Assignee  *string   `json:"assignee"`
	DueDate   *string   `json:"due_date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StatsResponse represents dashboard counters
type StatsResponse struct {
	TotalMeetings    int64 `json:"total_meetings"`
	TranscribedCount int64 `json:"transcribed_count"`
	SummarizedCount  int64 `json:"summarized_count"`
	ActionItemsCount int64 `json:"action_items_count"`
}
