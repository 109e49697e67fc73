package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Summary is the structured digest of a meeting transcript
type Summary struct {
	ID        uuid.UUID                   `json:"id" gorm:"type:uuid;primary_key"`
	MeetingID uuid.UUID                   `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Bullets   datatypes.JSONSlice[string] `json:"bullets" gorm:"not null"`
	Decisions datatypes.JSONSlice[string] `json:"decisions" gorm:"not null"`
	Risks     datatypes.JSONSlice[string] `json:"risks" gorm:"not null"`
	CreatedAt time.Time                   `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Summary) TableName() string {
	return "summaries"
}

// NewSummary creates a new summary; nil lists are stored as empty arrays
func NewSummary(meetingID uuid.UUID, bullets, decisions, risks []string) *Summary {
	return &Summary{
		ID:        uuid.New(),
		MeetingID: meetingID,
		Bullets:   orEmpty(bullets),
		Decisions: orEmpty(decisions),
		Risks:     orEmpty(risks),
		CreatedAt: time.Now(),
	}
}

func orEmpty(items []string) datatypes.JSONSlice[string] {
	if items == nil {
		return datatypes.JSONSlice[string]{}
	}
	return datatypes.JSONSlice[string](items)
}
