package handler

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto/common"
)

// getRequestID reads X-Request-ID from the response (set by echo's RequestID
// middleware) and falls back to the request header
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// HandleSuccess writes a standardized 200 response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	return respond(logger, c, http.StatusOK, data)
}

// HandleCreated writes a standardized 201 response using provided logger
func HandleCreated(logger *zap.Logger, c echo.Context, data interface{}) error {
	return respond(logger, c, http.StatusCreated, data)
}

func respond(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", status),
		)
	}

	return c.JSON(status, common.SuccessResponse{
		Code:    status,
		Message: "success",
		Data:    data,
	})
}

// HandleError centralizes error handling and logging using provided logger.
// Use case errors are translated to AppErrors first.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := errors.FromUsecase(err)

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Any("app_code", appErr.Code),
			zap.Error(err),
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Warn("http.response.error", fields...)
		}
	}

	info := ""
	if appErr.Raw != nil {
		info = appErr.Raw.Error()
	}

	return c.JSON(appErr.HTTPCode, common.ErrorResponse{
		Code:    appErr.HTTPCode,
		Message: appErr.Message,
		Info:    info,
		Details: appErr.Details,
	})
}

// ErrorHandler renders errors that escape handlers (routing, auth, body limit)
// with the same envelope as HandleError
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if stdErrors.As(err, &he) {
			message := http.StatusText(he.Code)
			if m, ok := he.Message.(string); ok && m != "" {
				message = m
			}
			code := errors.ErrorCode_INVALID_ARGUMENT
			switch {
			case he.Code == http.StatusUnauthorized:
				code = errors.ErrorCode_UNAUTHENTICATED
			case he.Code == http.StatusNotFound:
				code = errors.ErrorCode_NOT_FOUND
			case he.Code >= http.StatusInternalServerError:
				code = errors.ErrorCode_INTERNAL
			}
			err = errors.AppError{HTTPCode: he.Code, Code: code, Message: message}
		}

		if hErr := HandleError(logger, c, err); hErr != nil && logger != nil {
			logger.Error("failed to write error response", zap.Error(hErr))
		}
	}
}

// parseID reads a UUID path parameter
func parseID(c echo.Context, name string) (uuid.UUID, error) {
	return parseUUID(c.Param(name), name)
}

// parseMeetingID reads the meeting id from the :id path parameter or the meeting_id query parameter
func parseMeetingID(c echo.Context) (uuid.UUID, error) {
	if raw := c.Param("id"); raw != "" {
		return parseUUID(raw, "meeting id")
	}
	raw := c.QueryParam("meeting_id")
	if raw == "" {
		return uuid.Nil, errors.ErrInvalidArgument("meeting_id query parameter is required")
	}
	return parseUUID(raw, "meeting_id")
}

func parseUUID(raw, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidArgument(fmt.Sprintf("%s must be a valid UUID", name))
	}
	return id, nil
}

// bindAndValidate binds the request into req and runs the registered validator
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.ErrInvalidPayload(err)
	}
	if err := c.Validate(req); err != nil {
		return errors.ErrInvalidArgument(err.Error())
	}
	return nil
}
