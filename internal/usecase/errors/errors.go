package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrInvalidInput = errors.New("invalid input")
)

// Meeting errors
var (
	ErrMeetingNotFound = errors.New("meeting not found")
)

// Transcript errors
var (
	ErrTranscriptNotFound = errors.New("transcript not found")
	ErrTranscriptExists   = errors.New("transcript already exists for this meeting")
	ErrUnsupportedMedia   = errors.New("unsupported content-type")
)

// Summary errors
var (
	ErrSummaryNotFound    = errors.New("summary not found")
	ErrSummaryExists      = errors.New("summary already exists for this meeting")
	ErrTranscriptRequired = errors.New("no transcript found for this meeting")
)

// Action item errors
var (
	ErrActionItemNotFound = errors.New("action item not found")
	ErrInvalidStatus      = errors.New("invalid action status")
)

// InvalidStatusError carries the rejected status and matches ErrInvalidStatus
type InvalidStatusError struct {
	Status string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidStatus, e.Status)
}

func (e *InvalidStatusError) Unwrap() error {
	return ErrInvalidStatus
}
