package handler

import (
	"context"
	stdErrors "errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/errors"
	usecaseErrors "github.com/johnquangdev/meeting-summarizer/internal/usecase/errors"
	meetingUsecase "github.com/johnquangdev/meeting-summarizer/internal/usecase/meeting"
)

// ExportSummary handles GET /meetings/:id/export/summary
// @Summary      Export summary as Markdown
// @Tags         Exports
// @Produce      text/markdown
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {file}    file
// @Failure      404  {object}  common.ErrorResponse
// @Router       /meetings/{id}/export/summary [get]
func (h *Meeting) ExportSummary(c echo.Context) error {
	return h.export(c, "markdown", h.service.ExportSummary)
}

// ExportActions handles GET /meetings/:id/export/actions
// @Summary      Export action items as CSV
// @Tags         Exports
// @Produce      text/csv
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {file}    file
// @Failure      404  {object}  common.ErrorResponse
// @Router       /meetings/{id}/export/actions [get]
func (h *Meeting) ExportActions(c echo.Context) error {
	return h.export(c, "csv", h.service.ExportActions)
}

type exportFunc func(ctx context.Context, meetingID uuid.UUID) (*meetingUsecase.Export, error)

func (h *Meeting) export(c echo.Context, format string, render exportFunc) error {
	meetingID, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	out, err := render(c.Request().Context(), meetingID)
	if err != nil {
		if !stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound) {
			err = errors.ErrReportExportFailed(format, err)
		}
		return HandleError(h.logger, c, err)
	}

	h.logger.Info("http.response.success",
		zap.String("request_id", getRequestID(c)),
		zap.String("path", c.Path()),
		zap.String("format", format),
		zap.Int("bytes", len(out.Body)),
	)

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", out.Filename))
	return c.Blob(http.StatusOK, out.ContentType, out.Body)
}
