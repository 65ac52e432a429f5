package middleware

import (
	"log/slog"

	"leadhub/internal/delivery/api/response"
	deliverycontext "leadhub/internal/delivery/context"
	domainerrors "leadhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	httpErrorCode     = "HTTP_ERROR"
	internalErrorCode = "INTERNAL_ERROR"
)

// ErrorMiddleware renders every error that escapes a handler as the JSON error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler. Domain errors keep their
// status and code, echo errors keep their status, anything else becomes an opaque 500.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= 500 {
			m.requestLogger(c).Error("Application error", slog.Any("error", err))
		}
		// response.Error drops details for 5xx and auth errors
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), response.AppErrorDetails(err, appErr))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = response.Error(c, httpErr.Code, httpErrorCode, httpErrorMessage(httpErr), nil)

		return
	}

	m.requestLogger(c).Error("Unhandled error", slog.Any("error", err))
	_ = response.InternalServerError(c, internalErrorCode, "Internal server error, please try again later")
}

func (m *ErrorMiddleware) requestLogger(c echo.Context) *slog.Logger {
	req := c.Request()

	return deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).With(
		slog.String("path", req.URL.Path),
		slog.String("method", req.Method),
	)
}

func httpErrorMessage(httpErr *echo.HTTPError) string {
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		return msg
	}

	return "An error occurred"
}
