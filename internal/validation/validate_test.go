package validation

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens/internal/parse"
)

func validPayload() map[string]any {
	return map[string]any{
		"vendor":           "Global Supermart",
		"transaction_date": "2025-07-20",
		"amount":           489.56,
		"category":         "Groceries",
	}
}

func validate(t *testing.T, payload map[string]any) error {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	return ValidateJSONAgainstSchema(BuildReceiptSchema(), b)
}

func TestReceiptSchemaValid(t *testing.T) {
	require.NoError(t, validate(t, validPayload()))

	p := validPayload()
	p["category"] = "Uncategorized"
	p["original_filename"] = "receipt.pdf"
	require.NoError(t, validate(t, p))
}

func TestReceiptSchemaRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"empty vendor", func(p map[string]any) { p["vendor"] = "" }},
		{"missing vendor", func(p map[string]any) { delete(p, "vendor") }},
		{"bad date format", func(p map[string]any) { p["transaction_date"] = "20/07/2025" }},
		{"negative amount", func(p map[string]any) { p["amount"] = -1.0 }},
		{"unknown category", func(p map[string]any) { p["category"] = "Snacks" }},
		{"extra field", func(p map[string]any) { p["note"] = "x" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			tt.mutate(p)
			require.Error(t, validate(t, p))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	now := time.Date(2025, 7, 20, 15, 30, 0, 0, time.UTC)

	got := ApplyDefaults(parse.Record{}, now)
	require.Equal(t, parse.DefaultVendor, got.Vendor)
	require.Equal(t, parse.DefaultCategory, got.Category)
	require.True(t, got.TxDate.Equal(time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC)))
	require.Zero(t, got.Amount)
}

func TestApplyDefaultsKeepsExtractedValues(t *testing.T) {
	d := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	a := 85.0
	rec := parse.Record{Vendor: "Corner Cafe", TxDate: &d, Amount: &a, Category: "Restaurant"}

	got := ApplyDefaults(rec, time.Now())
	require.Equal(t, "Corner Cafe", got.Vendor)
	require.True(t, got.TxDate.Equal(d))
	require.InDelta(t, 85.0, got.Amount, 1e-9)
	require.Equal(t, "Restaurant", got.Category)
}
