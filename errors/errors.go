package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"

	"github.com/johnquangdev/meeting-summarizer/pkg/ai"
	usecaseErrors "github.com/johnquangdev/meeting-summarizer/internal/usecase/errors"
)

// ErrorCode is the error category used in logs
type ErrorCode string

const (
	ErrorCode_INTERNAL         ErrorCode = "INTERNAL"
	ErrorCode_INVALID_ARGUMENT ErrorCode = "INVALID_ARGUMENT"
	ErrorCode_NOT_FOUND        ErrorCode = "NOT_FOUND"
	ErrorCode_CONFLICT         ErrorCode = "CONFLICT"
	ErrorCode_UNAUTHENTICATED  ErrorCode = "UNAUTHENTICATED"
	ErrorCode_UPSTREAM_FAILED  ErrorCode = "UPSTREAM_FAILED"
	ErrorCode_EXPORT_FAILED    ErrorCode = "EXPORT_FAILED"
)

func (c ErrorCode) String() string {
	return string(c)
}

// AppError is the error type rendered by HTTP handlers
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
	Details  map[string]string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the raw cause
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrInvalidPayload(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  "Invalid payload",
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrConflict(message string) AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_CONFLICT,
		Message:  message,
	}
}

func ErrUnauthenticated(message string) AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_UNAUTHENTICATED,
		Message:  message,
	}
}

// Meeting artifact errors
func ErrTranscriptAlreadyExists() AppError {
	return ErrConflict("Transcript already exists for this meeting")
}

func ErrSummaryAlreadyExists() AppError {
	return ErrConflict("Summary already exists for this meeting")
}

func ErrTranscriptRequired() AppError {
	return ErrConflict("No transcript found for this meeting")
}

func ErrInvalidActionStatus(status string) AppError {
	return ErrInvalidArgument(fmt.Sprintf("Invalid action status: %s (allowed: open, in_progress, completed, cancelled)", status))
}

// Provider Errors
func ErrAITranscriptionFailed(provider string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_UPSTREAM_FAILED,
		Message:  fmt.Sprintf("Transcription failed (%s)", provider),
	}
}

func ErrAISummaryFailed(provider string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_UPSTREAM_FAILED,
		Message:  fmt.Sprintf("Summarization failed (%s)", provider),
	}
}

func ErrReportExportFailed(format string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_EXPORT_FAILED,
		Message:  "Failed to export report",
	}.WithDetail("format", format)
}

// FromUsecase maps use case sentinel errors and provider failures to an AppError.
// Errors that already are AppErrors pass through unchanged.
func FromUsecase(err error) AppError {
	var appErr AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	var provErr *ai.ProviderError
	if stdErrors.As(err, &provErr) {
		name := ai.DisplayName(provErr.Provider)
		if provErr.Op == ai.OpTranscribe {
			return ErrAITranscriptionFailed(name, provErr.Err)
		}
		return ErrAISummaryFailed(name, provErr.Err)
	}

	var statusErr *usecaseErrors.InvalidStatusError
	if stdErrors.As(err, &statusErr) {
		return ErrInvalidActionStatus(statusErr.Status)
	}

	switch {
	case stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound):
		return ErrNotFound("Meeting")
	case stdErrors.Is(err, usecaseErrors.ErrTranscriptNotFound):
		return ErrNotFound("Transcript")
	case stdErrors.Is(err, usecaseErrors.ErrSummaryNotFound):
		return ErrNotFound("Summary")
	case stdErrors.Is(err, usecaseErrors.ErrActionItemNotFound):
		return ErrNotFound("Action item")
	case stdErrors.Is(err, usecaseErrors.ErrTranscriptExists):
		return ErrTranscriptAlreadyExists()
	case stdErrors.Is(err, usecaseErrors.ErrSummaryExists):
		return ErrSummaryAlreadyExists()
	case stdErrors.Is(err, usecaseErrors.ErrTranscriptRequired):
		return ErrTranscriptRequired()
	case stdErrors.Is(err, usecaseErrors.ErrUnsupportedMedia),
		stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		// wrapped sentinels already carry the offending value
		return ErrInvalidArgument(err.Error())
	}

	return ErrInternal(err)
}
