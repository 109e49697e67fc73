package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	usecaseErrors "github.com/johnquangdev/meeting-summarizer/internal/usecase/errors"
	"github.com/johnquangdev/meeting-summarizer/pkg/ai"
)

func TestFromUsecase(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    ErrorCode
		message string
	}{
		{"meeting not found", usecaseErrors.ErrMeetingNotFound, http.StatusNotFound, ErrorCode_NOT_FOUND, "Meeting not found"},
		{"wrapped not found", fmt.Errorf("lookup: %w", usecaseErrors.ErrActionItemNotFound), http.StatusNotFound, ErrorCode_NOT_FOUND, "Action item not found"},
		{"transcript exists", usecaseErrors.ErrTranscriptExists, http.StatusConflict, ErrorCode_CONFLICT, "Transcript already exists for this meeting"},
		{"transcript required", usecaseErrors.ErrTranscriptRequired, http.StatusConflict, ErrorCode_CONFLICT, "No transcript found for this meeting"},
		{"invalid status", &usecaseErrors.InvalidStatusError{Status: "blocked"}, http.StatusBadRequest, ErrorCode_INVALID_ARGUMENT,
			"Invalid action status: blocked (allowed: open, in_progress, completed, cancelled)"},
		{"unsupported media", fmt.Errorf("%w: text/plain", usecaseErrors.ErrUnsupportedMedia), http.StatusBadRequest, ErrorCode_INVALID_ARGUMENT, "unsupported content-type: text/plain"},
		{"transcription failed", &ai.ProviderError{Provider: ai.ProviderOpenAI, Op: ai.OpTranscribe, Err: stdErrors.New("boom")}, http.StatusBadGateway, ErrorCode_UPSTREAM_FAILED, "Transcription failed (OpenAI)"},
		{"summary failed", &ai.ProviderError{Provider: ai.ProviderHuggingFace, Op: ai.OpSummarize, Err: stdErrors.New("boom")}, http.StatusBadGateway, ErrorCode_UPSTREAM_FAILED,
			fmt.Sprintf("Summarization failed (%s)", ai.DisplayName(ai.ProviderHuggingFace))},
		{"unknown", stdErrors.New("db down"), http.StatusInternalServerError, ErrorCode_INTERNAL, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromUsecase(tt.err)
			assert.Equal(t, tt.status, got.HTTPCode)
			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, tt.message, got.Message)
		})
	}
}

func TestFromUsecase_PassesAppErrorThrough(t *testing.T) {
	in := ErrUnauthenticated("Missing authorization token")
	got := FromUsecase(fmt.Errorf("auth: %w", in))
	assert.Equal(t, http.StatusUnauthorized, got.HTTPCode)
	assert.Equal(t, ErrorCode_UNAUTHENTICATED, got.Code)
}

func TestErrReportExportFailed_CarriesFormat(t *testing.T) {
	err := ErrReportExportFailed("csv", stdErrors.New("write failed"))
	assert.Equal(t, map[string]string{"format": "csv"}, err.Details)
	assert.Equal(t, ErrorCode_EXPORT_FAILED, err.Code)
	assert.ErrorContains(t, err, "write failed")
}
