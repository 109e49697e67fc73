package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create creates a new meeting
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting with its transcript, summary and action items
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// Exists reports whether a meeting with id exists
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// List retrieves all meetings, newest first
	List(ctx context.Context) ([]*entities.Meeting, error)

	// Delete removes a meeting and all dependent records in one transaction
	Delete(ctx context.Context, id uuid.UUID) error

	// Stats aggregates counts over all meetings
	Stats(ctx context.Context) (*Stats, error)
}

// Stats is the dashboard aggregate
type Stats struct {
	TotalMeetings    int64 `json:"total_meetings"`
	TranscribedCount int64 `json:"transcribed_count"`
	SummarizedCount  int64 `json:"summarized_count"`
	ActionItemsCount int64 `json:"action_items_count"`
}
