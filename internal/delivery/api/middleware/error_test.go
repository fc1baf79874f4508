package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "zembil/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func handleError(t *testing.T, err error) (int, errorBody) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/products/1", nil), rec)

	NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError(err, c)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestHandleHTTPError(t *testing.T) {
	t.Run("wrapped app error", func(t *testing.T) {
		status, body := handleError(t, domainerrors.ErrProductNotFound.WrapMessage("get product"))

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "PRODUCT_NOT_FOUND", body.Error.Code)
		assert.Equal(t, "Product not found", body.Error.Message)
		assert.NotEmpty(t, body.Meta.RequestID)
	})

	t.Run("field error carries details", func(t *testing.T) {
		status, body := handleError(t, domainerrors.NewFieldError(map[string]string{
			"username": "A user with that username already exists.",
		}))

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, map[string]any{"username": "A user with that username already exists."}, body.Error.Details)
	})

	t.Run("echo http error", func(t *testing.T) {
		status, body := handleError(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))

		assert.Equal(t, http.StatusMethodNotAllowed, status)
		assert.Equal(t, "METHOD_NOT_ALLOWED", body.Error.Code)
	})

	t.Run("unknown error hides internals", func(t *testing.T) {
		status, body := handleError(t, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.NotContains(t, body.Error.Message, "pq")
		assert.Nil(t, body.Error.Details)
	})
}
