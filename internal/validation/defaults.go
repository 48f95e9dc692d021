package validation

import (
	"time"

	"github.com/spendlens/spendlens/internal/parse"
)

// StoredFields is a parse.Record with every optional field resolved to
// the value that will actually be persisted.
type StoredFields struct {
	Vendor   string
	TxDate   time.Time
	Amount   float64
	Category string
}

// ApplyDefaults resolves the optional fields of a parsed record at the
// storage boundary: a missing date becomes today (midnight UTC of "now")
// and a missing amount becomes zero. The parser itself never invents
// these values, so downstream analytics can still tell "absent" from
// "zero" before this point.
func ApplyDefaults(rec parse.Record, now time.Time) StoredFields {
	out := StoredFields{
		Vendor:   rec.Vendor,
		Category: rec.Category,
	}
	if out.Vendor == "" {
		out.Vendor = parse.DefaultVendor
	}
	if out.Category == "" {
		out.Category = parse.DefaultCategory
	}
	if rec.TxDate != nil {
		out.TxDate = *rec.TxDate
	} else {
		n := now.UTC()
		out.TxDate = time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
	}
	if rec.Amount != nil {
		out.Amount = *rec.Amount
	}
	return out
}
