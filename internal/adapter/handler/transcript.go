package handler

import (
	stdErrors "errors"
	"fmt"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-summarizer/errors"
	meetingDTO "github.com/johnquangdev/meeting-summarizer/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/presenter"
	meetingUsecase "github.com/johnquangdev/meeting-summarizer/internal/usecase/meeting"
)

// Transcribe handles POST /transcribe?meeting_id= and POST /meetings/:id/transcript
// @Summary      Transcribe a recording
// @Description  Uploads an audio file and stores the provider's transcript for the meeting
// @Tags         Transcripts
// @Accept       multipart/form-data
// @Produce      json
// @Param        meeting_id  query     string  true  "Meeting ID (UUID)"
// @Param        audio       formData  file    true  "Audio recording"
// @Success      200  {object}  common.SuccessResponse{data=meeting.TranscriptionResponse}
// @Failure      400  {object}  common.ErrorResponse  "Unsupported content type or missing file"
// @Failure      404  {object}  common.ErrorResponse  "Meeting not found"
// @Failure      409  {object}  common.ErrorResponse  "Transcript already exists"
// @Failure      413  {object}  common.ErrorResponse  "Request body too large"
// @Failure      502  {object}  common.ErrorResponse  "Provider failure"
// @Router       /transcribe [post]
func (h *Meeting) Transcribe(c echo.Context) error {
	meetingID, err := parseMeetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	file, err := c.FormFile("audio")
	if err != nil {
		if stdErrors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
			return err
		}
		return HandleError(h.logger, c, errors.ErrInvalidArgument("audio file is required"))
	}
	if h.maxUploadBytes > 0 && file.Size > h.maxUploadBytes {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(
			fmt.Sprintf("audio file exceeds %d bytes", h.maxUploadBytes)))
	}

	src, err := file.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	transcript, err := h.service.Transcribe(c.Request().Context(), meetingUsecase.TranscribeInput{
		MeetingID:   meetingID,
		Filename:    file.Filename,
		ContentType: file.Header.Get(echo.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, &meetingDTO.TranscriptionResponse{
		Text:        transcript.Text,
		DurationSec: transcript.DurationSec,
	})
}

// GetTranscript handles GET /meetings/:id/transcript
// @Summary      Get transcript
// @Tags         Transcripts
// @Produce      json
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  common.SuccessResponse{data=meeting.TranscriptResponse}
// @Failure      404  {object}  common.ErrorResponse
// @Router       /meetings/{id}/transcript [get]
func (h *Meeting) GetTranscript(c echo.Context) error {
	meetingID, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	transcript, err := h.service.GetTranscript(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToTranscriptResponse(transcript))
}
