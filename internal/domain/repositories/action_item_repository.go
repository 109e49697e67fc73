package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// ActionItemRepository defines the interface for action item data access
type ActionItemRepository interface {
	Create(ctx context.Context, item *entities.ActionItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error)
	Update(ctx context.Context, item *entities.ActionItem) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByMeeting retrieves a meeting's action items, oldest first
	ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error)

	// List retrieves action items across meetings, newest first
	List(ctx context.Context, filters ActionItemFilters) ([]*entities.ActionItem, error)
}

// ActionItemFilters represents equality filters for listing action items
type ActionItemFilters struct {
	Status   *entities.ActionStatus
	Assignee *string
}
