// Package handler contains the HTTP handlers of the marketplace API.
package handler

import (
	"net/http"
	"strconv"

	"zembil/config"
	"zembil/internal/delivery/api/response"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/usecase"
	"zembil/internal/usecase/pagination"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// uploadField is the multipart form field carrying an uploaded file.
const uploadField = "file"

var errMalformedBody = domainerrors.NewBaseError(
	http.StatusBadRequest,
	"INVALID_REQUEST",
	"Malformed request body",
	"",
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}

// pathID parses a numeric path parameter. Non-numeric IDs cannot match a record.
func pathID(c echo.Context, name string, notFound *domainerrors.BaseError) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, notFound
	}

	return uint(id), nil
}

// bindAndValidate decodes the request body into dst and runs struct validation.
func bindAndValidate(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return errMalformedBody.WrapMessage(err.Error())
	}

	if err := c.Validate(dst); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// pageRequest reads page and limit from the query string.
func pageRequest(c echo.Context, cfg *config.Config) pagination.Request {
	link := *c.Request().URL
	link.Scheme = c.Scheme()
	link.Host = c.Request().Host

	return pagination.NewRequest(
		c.QueryParam(pagination.PageParam),
		c.QueryParam(pagination.LimitParam),
		cfg.Pagination.PageSize,
		cfg.Pagination.MaxPageSize,
		&link,
	)
}

// optionalFloat parses a float query parameter. Absent parameters yield nil.
func optionalFloat(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, domainerrors.NewFieldError(map[string]string{name: "A valid number is required."})
	}

	return &v, nil
}

// withUpload opens the uploaded file and hands it to fn. The file is closed afterwards.
func withUpload(c echo.Context, fn func(upload *usecase.UploadInput) error) error {
	header, err := c.FormFile(uploadField)
	if err != nil {
		return domainerrors.ErrInvalidUpload.WrapMessage(err.Error())
	}

	file, err := header.Open()
	if err != nil {
		return domainerrors.ErrInvalidUpload.WrapMessage(err.Error())
	}
	defer file.Close()

	return fn(&usecase.UploadInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Content:     file,
	})
}
