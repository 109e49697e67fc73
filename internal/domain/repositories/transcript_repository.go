package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// TranscriptRepository defines persistence operations for transcripts
type TranscriptRepository interface {
	Create(ctx context.Context, transcript *entities.Transcript) error
	FindByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.Transcript, error)
}

// SummaryRepository defines persistence operations for summaries
type SummaryRepository interface {
	// CreateWithActions stores the summary and its seeded action items atomically
	CreateWithActions(ctx context.Context, summary *entities.Summary, items []*entities.ActionItem) error
	FindByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.Summary, error)
}
