package middleware

import (
	"log/slog"
	"net/http"

	"zembil/internal/delivery/api/response"
	deliverycontext "zembil/internal/delivery/context"
	domainerrors "zembil/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware is the API's echo.HTTPErrorHandler. Every failure leaves in the
// standard error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

const internalErrorMessage = "Internal server error, please try again later"

func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, code, message, details := m.classify(err)
	if status >= http.StatusInternalServerError {
		req := c.Request()
		deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).ErrorContext(req.Context(), "Request failed",
			slog.Any("error", err),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
		)
	}

	_ = response.Error(c, status, code, message, details)
}

func (m *ErrorMiddleware) classify(err error) (status int, code, message string, details any) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), response.AppErrorDetails(appErr)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message = http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		return httpErr.Code, httpErrorCode(httpErr.Code), message, nil
	}

	return http.StatusInternalServerError, "INTERNAL_ERROR", internalErrorMessage, nil
}

func httpErrorCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusRequestEntityTooLarge:
		return "REQUEST_TOO_LARGE"
	case http.StatusTooManyRequests:
		return "RATE_LIMITED"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	default:
		return "HTTP_ERROR"
	}
}
