package analytics

import (
	"strings"
	"time"

	"github.com/spendlens/spendlens/internal/entity"
)

// SearchQuery is the in-memory filter counterpart to the repository
// filter, for callers that already hold a slice of receipts. Zero-value
// fields are inactive.
type SearchQuery struct {
	Vendor    string
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
	MinAmount *float64
	MaxAmount *float64
}

// Search returns the receipts matching every active criterion. Vendor
// and category match case-insensitively, vendor as a substring. A
// receipt with a zero transaction date can never satisfy a date bound.
func Search(receipts []*entity.Receipt, q SearchQuery) []*entity.Receipt {
	var out []*entity.Receipt
	for _, r := range receipts {
		if r == nil || !matches(r, q) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matches(r *entity.Receipt, q SearchQuery) bool {
	if q.Vendor != "" && !strings.Contains(strings.ToLower(r.Vendor), strings.ToLower(q.Vendor)) {
		return false
	}
	if q.Category != "" && !strings.EqualFold(r.Category, q.Category) {
		return false
	}
	if q.StartDate != nil || q.EndDate != nil {
		if r.TxDate.IsZero() {
			return false
		}
		if q.StartDate != nil && r.TxDate.Before(*q.StartDate) {
			return false
		}
		if q.EndDate != nil && r.TxDate.After(*q.EndDate) {
			return false
		}
	}
	if q.MinAmount != nil && r.Amount < *q.MinAmount {
		return false
	}
	if q.MaxAmount != nil && r.Amount > *q.MaxAmount {
		return false
	}
	return true
}
