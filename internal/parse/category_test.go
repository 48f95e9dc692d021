package parse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyCategory(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"grocery keyword", "Fresh grocery purchase", "Groceries"},
		{"mart keyword", "GLOBAL SUPERMART", "Groceries"},
		{"electronics", "City Electronics Store", "Electronics"},
		{"transport", "Metro card top-up", "Transport"},
		{"pharmacy", "Wellness Chemist", "Pharmacy"},
		{"case insensitive", "UNIVERSITY tuition fee", "Education"},
		{"personal care label has a space", "Downtown Salon", "Personal Care"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ClassifyCategory(tt.text))
		})
	}
}

func TestClassifyCategoryDefault(t *testing.T) {
	require.Equal(t, DefaultCategory, ClassifyCategory("plain text with nothing relevant"))
	require.Equal(t, DefaultCategory, ClassifyCategory(""))
}

// Electronics is checked before Groceries, so text containing keywords
// from both lands in Electronics.
func TestClassifyCategoryPrecedence(t *testing.T) {
	require.Equal(t, "Electronics", ClassifyCategory("electronics section of the supermarket"))
}
