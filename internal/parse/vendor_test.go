package parse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractVendor(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"prominent header line",
			"GLOBAL SUPERMART\nDate: 2025-07-20\nTOTAL AMOUNT: 489.56",
			"Global Supermart",
		},
		{
			"invoice from phrase",
			"Invoice from Acme Corp.\nTotal: 50.00",
			"Acme Corp",
		},
		{
			"sold by phrase",
			"Receipt\nSold by: SuperTech Gadgets\nAmount: 120.00",
			"Supertech Gadgets",
		},
		{
			"to line",
			"Date: 2025-01-01\nTo: Quick Fuel Station\nTotal: 60.00",
			"Quick Fuel Station",
		},
		{
			"apostrophe survives title casing",
			"To: John's Groceries",
			"John's Groceries",
		},
		{
			"header skips structural lines",
			"Date 2025-01-01\nCity Lights Cinema\nTotal 30",
			"City Lights Cinema",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ExtractVendor(tt.text))
		})
	}
}

func TestExtractVendorUnknown(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"only structural lines", "Total: 45.00\nDate: 2025-07-20"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, DefaultVendor, ExtractVendor(tt.text))
		})
	}
}

// A candidate reduced to nothing by cleaning moves the chain along
// instead of producing an empty vendor.
func TestExtractVendorEmptyCandidateFallsThrough(t *testing.T) {
	// The intro pattern captures only a trailing keyword, which cleaning
	// removes; the header line then supplies the name.
	text := "bill from receipt\nCorner Bakehouse\nTotal: 9.50"
	require.Equal(t, "Corner Bakehouse", ExtractVendor(text))
}
