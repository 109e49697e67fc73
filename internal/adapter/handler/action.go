package handler

import (
	"github.com/labstack/echo/v4"

	meetingDTO "github.com/johnquangdev/meeting-summarizer/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/presenter"
	meetingUsecase "github.com/johnquangdev/meeting-summarizer/internal/usecase/meeting"
)

// ListMeetingActions handles GET /meetings/:id/actions
// @Summary      List a meeting's action items
// @Tags         Actions
// @Produce      json
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  common.SuccessResponse{data=[]meeting.ActionItemResponse}
// @Failure      404  {object}  common.ErrorResponse
// @Router       /meetings/{id}/actions [get]
func (h *Meeting) ListMeetingActions(c echo.Context) error {
	meetingID, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	items, err := h.service.ListMeetingActions(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToActionItemListResponse(items))
}

// CreateAction handles POST /meetings/:id/actions
// @Summary      Add an action item
// @Tags         Actions
// @Accept       json
// @Produce      json
// @Param        id       path      string                          true  "Meeting ID (UUID)"
// @Param        request  body      meeting.CreateActionRequest  true  "Action item"
// @Success      201      {object}  common.SuccessResponse{data=meeting.ActionItemResponse}
// @Failure      400      {object}  common.ErrorResponse
// @Failure      404      {object}  common.ErrorResponse
// @Router       /meetings/{id}/actions [post]
func (h *Meeting) CreateAction(c echo.Context) error {
	meetingID, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.CreateActionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	item, err := h.service.CreateAction(c.Request().Context(), meetingUsecase.CreateActionInput{
		MeetingID: meetingID,
		Text:      req.Text,
		Assignee:  req.Assignee,
		DueDate:   req.DueDate,
		Status:    req.Status,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleCreated(h.logger, c, presenter.ToActionItemResponse(item))
}

// UpdateAction handles PATCH /actions/:id
// @Summary      Update an action item
// @Description  Changes only the provided fields; an empty assignee or due_date clears it
// @Tags         Actions
// @Accept       json
// @Produce      json
// @Param        id       path      string                          true  "Action item ID (UUID)"
// @Param        request  body      meeting.UpdateActionRequest  true  "Fields to change"
// @Success      200      {object}  common.SuccessResponse{data=meeting.ActionItemResponse}
// @Failure      400      {object}  common.ErrorResponse
// @Failure      404      {object}  common.ErrorResponse
// @Router       /actions/{id} [patch]
func (h *Meeting) UpdateAction(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.UpdateActionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	item, err := h.service.UpdateAction(c.Request().Context(), id, meetingUsecase.UpdateActionInput{
		Text:     req.Text,
		Assignee: req.Assignee,
		DueDate:  req.DueDate,
		Status:   req.Status,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToActionItemResponse(item))
}

// DeleteAction handles DELETE /actions/:id
// @Summary      Delete an action item
// @Tags         Actions
// @Produce      json
// @Param        id   path      string  true  "Action item ID (UUID)"
// @Success      200  {object}  common.SuccessResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /actions/{id} [delete]
func (h *Meeting) DeleteAction(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.service.DeleteAction(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]string{"id": id.String()})
}

// ListActions handles GET /actions
// @Summary      List action items
// @Description  Lists action items across meetings with optional equality filters
// @Tags         Actions
// @Produce      json
// @Param        status    query     string  false  "open, in_progress, completed or cancelled"
// @Param        assignee  query     string  false  "Exact assignee"
// @Success      200  {object}  common.SuccessResponse{data=[]meeting.ActionItemResponse}
// @Failure      400  {object}  common.ErrorResponse
// @Router       /actions [get]
func (h *Meeting) ListActions(c echo.Context) error {
	var req meetingDTO.ListActionsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	items, err := h.service.ListActions(c.Request().Context(), meetingUsecase.ListActionsInput{
		Status:   req.Status,
		Assignee: req.Assignee,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToActionItemListResponse(items))
}
