package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleExportCSV(c echo.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return err
	}
	data, err := s.export.ExportCSV(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, attachment("csv"))
	return c.Blob(http.StatusOK, "text/csv", data)
}

func (s *Server) handleExportXLSX(c echo.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return err
	}
	data, err := s.export.ExportXLSX(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, attachment("xlsx"))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func attachment(ext string) string {
	return `attachment; filename="receipts-` + time.Now().UTC().Format("20060102") + `.` + ext + `"`
}
