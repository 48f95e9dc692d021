package analytics

import (
	"sort"
	"strings"

	"github.com/spendlens/spendlens/internal/entity"
)

// SortField names a sortable receipt attribute.
type SortField string

const (
	SortByVendor   SortField = "vendor"
	SortByTxDate   SortField = "transaction_date"
	SortByAmount   SortField = "amount"
	SortByCategory SortField = "category"
)

// Sort returns a new slice sorted by the given field. String fields
// compare case-insensitively. Receipts with a zero transaction date sort
// after dated ones regardless of direction; the sort is stable, so ties
// keep their input order.
func Sort(receipts []*entity.Receipt, field SortField, descending bool) []*entity.Receipt {
	out := make([]*entity.Receipt, len(receipts))
	copy(out, receipts)
	sort.SliceStable(out, func(i, j int) bool {
		return lessByField(out[i], out[j], field, descending)
	})
	return out
}

func lessByField(a, b *entity.Receipt, field SortField, descending bool) bool {
	switch field {
	case SortByTxDate:
		// Missing dates always sink to the end.
		if a.TxDate.IsZero() != b.TxDate.IsZero() {
			return b.TxDate.IsZero()
		}
		if a.TxDate.Equal(b.TxDate) {
			return false
		}
		if descending {
			return a.TxDate.After(b.TxDate)
		}
		return a.TxDate.Before(b.TxDate)
	case SortByAmount:
		if a.Amount == b.Amount {
			return false
		}
		if descending {
			return a.Amount > b.Amount
		}
		return a.Amount < b.Amount
	case SortByCategory:
		return lessString(a.Category, b.Category, descending)
	default:
		return lessString(a.Vendor, b.Vendor, descending)
	}
}

func lessString(a, b string, descending bool) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la == lb {
		return false
	}
	if descending {
		return la > lb
	}
	return la < lb
}
