package entities

import (
	"time"

	"github.com/google/uuid"
)

// Meeting is the root record; transcript, summary and action items hang off it
type Meeting struct {
	ID          uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	Title       string       `gorm:"type:varchar(200);not null" json:"title"`
	CreatedAt   time.Time    `gorm:"autoCreateTime;index" json:"created_at"`
	Transcript  *Transcript  `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"transcript,omitempty"`
	Summary     *Summary     `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"summary,omitempty"`
	ActionItems []ActionItem `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"action_items,omitempty"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates a new meeting
func NewMeeting(title string) *Meeting {
	return &Meeting{
		ID:        uuid.New(),
		Title:     title,
		CreatedAt: time.Now(),
	}
}
