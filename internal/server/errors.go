package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spendlens/spendlens/internal/common"
)

// httpError maps application errors onto HTTP status codes. Parse
// failures and validation problems are client errors; everything
// unrecognized is a 500.
func httpError(err error) *echo.HTTPError {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, common.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, common.ErrUnsupportedFormat),
		errors.Is(err, common.ErrNoExtractableText),
		errors.Is(err, common.ErrInvalidInput),
		errors.Is(err, common.ErrValidation):
		status = http.StatusBadRequest
	}

	var appErr *common.AppError
	if errors.As(err, &appErr) {
		return echo.NewHTTPError(status, appErr.Message)
	}
	return echo.NewHTTPError(status, err.Error())
}
