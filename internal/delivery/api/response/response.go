// Package response writes the API's JSON envelope:
// {"data": ..., "meta": {...}} on success and {"error": {...}, "meta": {...}} on failure.
package response

import (
	"net/http"

	deliverycontext "zembil/internal/delivery/context"
	domainerrors "zembil/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo is the error body. Code is stable and machine readable; Message is for people.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// MessageData is the payload of endpoints that only confirm an action.
type MessageData struct {
	Message string `json:"message"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: data, Meta: meta(c)})
}

func Created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, SuccessResponse{Data: data, Meta: meta(c)})
}

// Message answers 200 with {"data": {"message": ...}}.
func Message(c echo.Context, message string) error {
	return OK(c, MessageData{Message: message})
}

// Error writes an error envelope. Details are dropped for 401, 403 and 5xx so
// nothing about credentials or internals leaks.
func Error(c echo.Context, status int, code, message string, details any) error {
	if status >= http.StatusInternalServerError || status == http.StatusUnauthorized || status == http.StatusForbidden {
		details = nil
	}

	return c.JSON(status, ErrorResponse{
		Error: &ErrorInfo{Code: code, Message: message, Details: details},
		Meta:  meta(c),
	})
}

func Unauthorized(c echo.Context, code, message string) error {
	return Error(c, http.StatusUnauthorized, code, message, nil)
}

func InternalServerError(c echo.Context, code, message string) error {
	return Error(c, http.StatusInternalServerError, code, message, nil)
}

// HandleAppError renders domain errors. Anything else is returned, with a stack,
// for the central error handler to log and answer with a 500.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), AppErrorDetails(appErr))
}

// AppErrorDetails returns per-field messages for validation failures, otherwise
// the error's detail text if it has one.
func AppErrorDetails(appErr domainerrors.AppError) any {
	var fieldErr *domainerrors.FieldError
	if errors.As(appErr, &fieldErr) {
		return fieldErr.Fields()
	}
	if details := appErr.Details(); details != "" {
		return details
	}

	return nil
}
