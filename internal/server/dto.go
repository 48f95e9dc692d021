package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/spendlens/spendlens/internal/analytics"
	"github.com/spendlens/spendlens/internal/entity"
	"github.com/spendlens/spendlens/internal/repository"
	"github.com/spendlens/spendlens/internal/utils"
)

// ReceiptResponse is the wire shape of a stored receipt. Dates are
// rendered as "YYYY-MM-DD"; timestamps as RFC 3339.
type ReceiptResponse struct {
	ID               string  `json:"id"`
	Vendor           string  `json:"vendor"`
	TransactionDate  string  `json:"transaction_date"`
	Amount           float64 `json:"amount"`
	Category         string  `json:"category"`
	OriginalFilename string  `json:"original_filename,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

func toReceiptResponse(r *entity.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ID:               r.ID.String(),
		Vendor:           r.Vendor,
		TransactionDate:  utils.FormatYMD(r.TxDate),
		Amount:           r.Amount,
		Category:         r.Category,
		OriginalFilename: r.OriginalFilename,
		CreatedAt:        r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toReceiptResponses(recs []*entity.Receipt) []ReceiptResponse {
	out := make([]ReceiptResponse, len(recs))
	for i, r := range recs {
		out[i] = toReceiptResponse(r)
	}
	return out
}

// UpdateReceiptRequest carries a partial receipt update; absent fields
// are left untouched.
type UpdateReceiptRequest struct {
	Vendor          *string  `json:"vendor"`
	TransactionDate *string  `json:"transaction_date"`
	Amount          *float64 `json:"amount"`
	Category        *string  `json:"category"`
}

// parseFilter reads the shared list/export query parameters.
func parseFilter(c echo.Context) (repository.Filter, error) {
	f := repository.Filter{
		Vendor:   c.QueryParam("vendor"),
		Category: c.QueryParam("category"),
	}
	if v := c.QueryParam("start_date"); v != "" {
		t, err := utils.ParseYMD(v)
		if err != nil {
			return f, echo.NewHTTPError(http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		}
		f.StartDate = &t
	}
	if v := c.QueryParam("end_date"); v != "" {
		t, err := utils.ParseYMD(v)
		if err != nil {
			return f, echo.NewHTTPError(http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		}
		f.EndDate = &t
	}
	if v := c.QueryParam("min_amount"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, echo.NewHTTPError(http.StatusBadRequest, "min_amount must be a number")
		}
		f.MinAmount = &n
	}
	if v := c.QueryParam("max_amount"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, echo.NewHTTPError(http.StatusBadRequest, "max_amount must be a number")
		}
		f.MaxAmount = &n
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return f, echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		f.Limit = n
	}
	if v := c.QueryParam("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return f, echo.NewHTTPError(http.StatusBadRequest, "offset must be a non-negative integer")
		}
		f.Offset = n
	}
	return f, nil
}

// parseSort reads the optional sort/order parameters for listings.
func parseSort(c echo.Context) (analytics.SortField, bool, error) {
	field := analytics.SortField(c.QueryParam("sort"))
	switch field {
	case "", analytics.SortByVendor, analytics.SortByTxDate, analytics.SortByAmount, analytics.SortByCategory:
	default:
		return "", false, echo.NewHTTPError(http.StatusBadRequest, "sort must be one of vendor, transaction_date, amount, category")
	}
	switch order := c.QueryParam("order"); order {
	case "", "asc":
		return field, false, nil
	case "desc":
		return field, true, nil
	default:
		return "", false, echo.NewHTTPError(http.StatusBadRequest, "order must be asc or desc")
	}
}
