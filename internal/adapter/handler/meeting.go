package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	meetingDTO "github.com/johnquangdev/meeting-summarizer/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/presenter"
	meetingUsecase "github.com/johnquangdev/meeting-summarizer/internal/usecase/meeting"
)

// Meeting handles meeting, transcript, summary, action item and export requests
type Meeting struct {
	service        meetingUsecase.Service
	logger         *zap.Logger
	maxUploadBytes int64
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(service meetingUsecase.Service, logger *zap.Logger, maxUploadBytes int64) *Meeting {
	return &Meeting{
		service:        service,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

// CreateMeeting handles POST /meetings
// @Summary      Create a meeting
// @Description  Creates an empty meeting that recordings can be attached to
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.CreateMeetingRequest  true  "Meeting creation request"
// @Success      201      {object}  common.SuccessResponse{data=meeting.MeetingResponse}
// @Failure      400      {object}  common.ErrorResponse
// @Router       /meetings [post]
func (h *Meeting) CreateMeeting(c echo.Context) error {
	var req meetingDTO.CreateMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.service.CreateMeeting(c.Request().Context(), req.Title)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleCreated(h.logger, c, presenter.ToMeetingResponse(m))
}

// ListMeetings handles GET /meetings
// @Summary      List meetings
// @Description  Lists all meetings, newest first
// @Tags         Meetings
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=[]meeting.MeetingResponse}
// @Failure      500  {object}  common.ErrorResponse
// @Router       /meetings [get]
func (h *Meeting) ListMeetings(c echo.Context) error {
	meetings, err := h.service.ListMeetings(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingListResponse(meetings))
}

// GetMeeting handles GET /meetings/:id
// @Summary      Get meeting details
// @Description  Returns the meeting with its transcript, summary and action items
// @Tags         Meetings
// @Produce      json
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  common.SuccessResponse{data=meeting.MeetingDetailResponse}
// @Failure      400  {object}  common.ErrorResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /meetings/{id} [get]
func (h *Meeting) GetMeeting(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.service.GetMeeting(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingDetailResponse(m))
}

// DeleteMeeting handles DELETE /meetings/:id
// @Summary      Delete a meeting
// @Description  Deletes the meeting together with its transcript, summary, action items and archived audio
// @Tags         Meetings
// @Produce      json
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  common.SuccessResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /meetings/{id} [delete]
func (h *Meeting) DeleteMeeting(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.service.DeleteMeeting(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]string{"id": id.String()})
}

// GetStats handles GET /stats
// @Summary      Dashboard statistics
// @Description  Counts meetings, transcribed meetings, summarized meetings and action items
// @Tags         Meetings
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=meeting.StatsResponse}
// @Failure      500  {object}  common.ErrorResponse
// @Router       /stats [get]
func (h *Meeting) GetStats(c echo.Context) error {
	stats, err := h.service.GetStats(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToStatsResponse(stats))
}
