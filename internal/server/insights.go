package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spendlens/spendlens/internal/analytics"
	"github.com/spendlens/spendlens/internal/entity"
)

// handleAggregates returns total, mean, median and mode spend over the
// filtered receipt set.
func (s *Server) handleAggregates(c echo.Context) error {
	recs, err := s.filteredReceipts(c)
	if err != nil {
		return err
	}
	amounts := make([]float64, len(recs))
	for i, r := range recs {
		amounts[i] = r.Amount
	}
	return c.JSON(http.StatusOK, analytics.Aggregate(amounts))
}

func (s *Server) handleVendorFrequency(c echo.Context) error {
	recs, err := s.filteredReceipts(c)
	if err != nil {
		return err
	}
	vendors := make([]string, len(recs))
	for i, r := range recs {
		vendors[i] = r.Vendor
	}
	return c.JSON(http.StatusOK, analytics.VendorFrequency(vendors))
}

func (s *Server) handleMonthlySpend(c echo.Context) error {
	recs, err := s.filteredReceipts(c)
	if err != nil {
		return err
	}
	entries := make([]analytics.Entry, len(recs))
	for i, r := range recs {
		d, a := r.TxDate, r.Amount
		entries[i] = analytics.Entry{TxDate: &d, Amount: &a}
	}
	return c.JSON(http.StatusOK, analytics.MonthlySpend(entries))
}

func (s *Server) filteredReceipts(c echo.Context) ([]*entity.Receipt, error) {
	filter, err := parseFilter(c)
	if err != nil {
		return nil, err
	}
	recs, err := s.repo.List(c.Request().Context(), filter)
	if err != nil {
		return nil, httpError(err)
	}
	return recs, nil
}
