package entities

import (
	"time"

	"github.com/google/uuid"
)

// BytesPerSecond approximates 16 kHz 16-bit mono audio
const BytesPerSecond = 32000

// Transcript is the stored speech-to-text result of a meeting recording
type Transcript struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	MeetingID   uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Text        string    `json:"text" gorm:"type:text;not null"`
	DurationSec int       `json:"duration_sec" gorm:"not null;default:0"`
	AudioKey    *string   `json:"audio_key,omitempty" gorm:"type:varchar(255)"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Transcript) TableName() string {
	return "transcripts"
}

// NewTranscript creates a new transcript
func NewTranscript(meetingID uuid.UUID, text string, audioBytes int) *Transcript {
	return &Transcript{
		ID:          uuid.New(),
		MeetingID:   meetingID,
		Text:        text,
		DurationSec: EstimateDuration(audioBytes),
		CreatedAt:   time.Now(),
	}
}

// EstimateDuration derives a duration in seconds from the upload size, never less than 1
func EstimateDuration(audioBytes int) int {
	if d := audioBytes / BytesPerSecond; d > 1 {
		return d
	}
	return 1
}
