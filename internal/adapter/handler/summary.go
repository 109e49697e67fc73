package handler

import (
	"github.com/labstack/echo/v4"

	meetingDTO "github.com/johnquangdev/meeting-summarizer/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/presenter"
)

// Summarize handles POST /summarize?meeting_id= and POST /meetings/:id/summary
// @Summary      Summarize a meeting
// @Description  Generates the summary from the stored transcript and seeds action items
// @Tags         Summaries
// @Produce      json
// @Param        meeting_id  query     string  true  "Meeting ID (UUID)"
// @Success      200  {object}  common.SuccessResponse{data=meeting.SummarizeResponse}
// @Failure      404  {object}  common.ErrorResponse  "Meeting not found"
// @Failure      409  {object}  common.ErrorResponse  "No transcript or summary already exists"
// @Failure      502  {object}  common.ErrorResponse  "Provider failure"
// @Router       /summarize [post]
func (h *Meeting) Summarize(c echo.Context) error {
	meetingID, err := parseMeetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	summary, items, err := h.service.Summarize(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, &meetingDTO.SummarizeResponse{
		SummaryResponse: presenter.ToSummaryResponse(summary),
		Actions:         presenter.ToActionItemListResponse(items),
	})
}

// GetSummary handles GET /meetings/:id/summary
// @Summary      Get summary
// @Tags         Summaries
// @Produce      json
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  common.SuccessResponse{data=meeting.SummaryResponse}
// @Failure      404  {object}  common.ErrorResponse
// @Router       /meetings/{id}/summary [get]
func (h *Meeting) GetSummary(c echo.Context) error {
	meetingID, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	summary, err := h.service.GetSummary(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToSummaryResponse(summary))
}
