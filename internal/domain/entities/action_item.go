package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActionStatus represents the progress of an action item
type ActionStatus string

const (
	ActionStatusOpen       ActionStatus = "open"
	ActionStatusInProgress ActionStatus = "in_progress"
	ActionStatusCompleted  ActionStatus = "completed"
	ActionStatusCancelled  ActionStatus = "cancelled"
)

// IsValid checks the status is one of the four known values
func (s ActionStatus) IsValid() bool {
	switch s {
	case ActionStatusOpen, ActionStatusInProgress, ActionStatusCompleted, ActionStatusCancelled:
		return true
	}
	return false
}

// ActionItem is a follow-up task attached to a meeting
type ActionItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	MeetingID uuid.UUID       `gorm:"type:uuid;not null;index" json:"meeting_id"`
	Text      string          `gorm:"type:varchar(500);not null" json:"text"`
	Assignee  *string         `gorm:"type:varchar(100);index" json:"assignee,omitempty"`
	DueDate   *datatypes.Date `json:"due_date,omitempty"`
	Status    ActionStatus    `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for ActionItem
func (ActionItem) TableName() string {
	return "action_items"
}

// NewActionItem creates an open action item
func NewActionItem(meetingID uuid.UUID, text string) *ActionItem {
	now := time.Now()
	return &ActionItem{
		ID:        uuid.New(),
		MeetingID: meetingID,
		Text:      text,
		Status:    ActionStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DueDateString formats the due date as YYYY-MM-DD, or "" when unset
func (a *ActionItem) DueDateString() string {
	if a.DueDate == nil {
		return ""
	}
	return time.Time(*a.DueDate).Format(time.DateOnly)
}

// ParseDueDate parses a YYYY-MM-DD string into a date
func ParseDueDate(s string) (*datatypes.Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, err
	}
	d := datatypes.Date(t)
	return &d, nil
}
