package server

import (
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/spendlens/spendlens/constants"
	"github.com/spendlens/spendlens/internal/analytics"
	"github.com/spendlens/spendlens/internal/repository"
	"github.com/spendlens/spendlens/internal/utils"
)

// handleUpload accepts a multipart "file" part, runs the extraction
// pipeline on it, and returns the stored receipt.
func (s *Server) handleUpload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file part")
	}
	if fh.Size > s.maxUploadBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file too large")
	}

	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot open uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, s.maxUploadBytes+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read uploaded file")
	}
	if int64(len(data)) > s.maxUploadBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file too large")
	}

	rec, err := s.ingest.IngestBytes(c.Request().Context(), fh.Filename, data)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, toReceiptResponse(rec))
}

func (s *Server) handleList(c echo.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return err
	}
	sortField, descending, err := parseSort(c)
	if err != nil {
		return err
	}
	recs, err := s.repo.List(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	if sortField != "" {
		recs = analytics.Sort(recs, sortField, descending)
	}
	return c.JSON(http.StatusOK, toReceiptResponses(recs))
}

func (s *Server) handleGet(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid receipt id")
	}
	rec, err := s.repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toReceiptResponse(rec))
}

func (s *Server) handleUpdate(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid receipt id")
	}
	var req UpdateReceiptRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	upd := repository.Update{
		Vendor: req.Vendor,
		Amount: req.Amount,
	}
	if req.TransactionDate != nil {
		t, err := utils.ParseYMD(*req.TransactionDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "transaction_date must be YYYY-MM-DD")
		}
		upd.TxDate = &t
	}
	if req.Category != nil {
		cat, ok := constants.Canonicalize(*req.Category)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown category")
		}
		v := string(cat)
		upd.Category = &v
	}
	if req.Amount != nil && *req.Amount < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "amount must be non-negative")
	}
	if req.Vendor != nil && *req.Vendor == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "vendor must not be empty")
	}

	rec, err := s.repo.Update(c.Request().Context(), id, upd)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toReceiptResponse(rec))
}

func (s *Server) handleDelete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid receipt id")
	}
	if err := s.repo.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
