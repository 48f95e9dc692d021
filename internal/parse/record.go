package parse

import "time"

// Sentinels used when extraction finds nothing usable for a field.
const (
	DefaultVendor   = "Unknown"
	DefaultCategory = "Uncategorized"
)

// Record is the structured output of parsing one document. TxDate and
// Amount stay nil when no pattern matched or the match failed to parse;
// the downstream caller decides what, if anything, to substitute. The
// pipeline itself never invents a date or amount.
type Record struct {
	Vendor   string     `json:"vendor"`
	TxDate   *time.Time `json:"transaction_date,omitempty"`
	Amount   *float64   `json:"amount,omitempty"`
	Category string     `json:"category"`
}
