package meeting

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/repositories"
)

// Service defines the interface for the meeting use case
type Service interface {
	// CreateMeeting creates a new meeting
	CreateMeeting(ctx context.Context, title string) (*entities.Meeting, error)

	// ListMeetings retrieves all meetings, newest first
	ListMeetings(ctx context.Context) ([]*entities.Meeting, error)

	// GetMeeting retrieves a meeting with its transcript, summary and action items
	GetMeeting(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// DeleteMeeting deletes a meeting and everything derived from it
	DeleteMeeting(ctx context.Context, id uuid.UUID) error

	// GetStats returns dashboard counters
	GetStats(ctx context.Context) (*repositories.Stats, error)

	// Transcribe converts an uploaded recording into the meeting's transcript
	Transcribe(ctx context.Context, input TranscribeInput) (*entities.Transcript, error)

	// GetTranscript retrieves the meeting's transcript
	GetTranscript(ctx context.Context, meetingID uuid.UUID) (*entities.Transcript, error)

	// Summarize generates the meeting's summary and seeds its action items
	Summarize(ctx context.Context, meetingID uuid.UUID) (*entities.Summary, []*entities.ActionItem, error)

	// GetSummary retrieves the meeting's summary
	GetSummary(ctx context.Context, meetingID uuid.UUID) (*entities.Summary, error)

	// ListMeetingActions retrieves a meeting's action items
	ListMeetingActions(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error)

	// CreateAction adds an action item to a meeting
	CreateAction(ctx context.Context, input CreateActionInput) (*entities.ActionItem, error)

	// UpdateAction changes the provided fields of an action item
	UpdateAction(ctx context.Context, id uuid.UUID, input UpdateActionInput) (*entities.ActionItem, error)

	// DeleteAction deletes an action item
	DeleteAction(ctx context.Context, id uuid.UUID) error

	// ListActions retrieves action items across meetings
	ListActions(ctx context.Context, input ListActionsInput) ([]*entities.ActionItem, error)

	// ExportSummary renders the meeting as a Markdown document
	ExportSummary(ctx context.Context, meetingID uuid.UUID) (*Export, error)

	// ExportActions renders the meeting's action items as CSV
	ExportActions(ctx context.Context, meetingID uuid.UUID) (*Export, error)

	// ProviderName returns the active provider name
	ProviderName() string
}

// AudioArchive stores uploaded recordings
type AudioArchive interface {
	Put(ctx context.Context, meetingID uuid.UUID, filename, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
}

// TranscribeInput represents an uploaded recording
type TranscribeInput struct {
	MeetingID   uuid.UUID
	Filename    string
	ContentType string
	Data        []byte
}

// CreateActionInput represents input for creating an action item
type CreateActionInput struct {
	MeetingID uuid.UUID
	Text      string
	Assignee  *string
	DueDate   *string
	Status    string
}

// UpdateActionInput holds the fields to change; nil fields are left untouched
type UpdateActionInput struct {
	Text     *string
	Assignee *string
	DueDate  *string
	Status   *string
}

// ListActionsInput represents optional equality filters
type ListActionsInput struct {
	Status   string
	Assignee string
}

// Export is a rendered download
type Export struct {
	Filename    string
	ContentType string
	Body        []byte
}
