package constants

import "strings"

type Category string

const (
	Electronics   Category = "Electronics"
	Groceries     Category = "Groceries"
	Utilities     Category = "Utilities"
	Transport     Category = "Transport"
	Restaurant    Category = "Restaurant"
	Pharmacy      Category = "Pharmacy"
	Clothing      Category = "Clothing"
	Entertainment Category = "Entertainment"
	Rent          Category = "Rent"
	Education     Category = "Education"
	Healthcare    Category = "Healthcare"
	PersonalCare  Category = "Personal Care"
	Books         Category = "Books"
	Uncategorized Category = "Uncategorized"
)

// allCategories is the closed taxonomy in classifier precedence order:
// Electronics is checked before Groceries, and so on. Uncategorized is the
// default sentinel, never matched directly.
var allCategories = []Category{
	Electronics,
	Groceries,
	Utilities,
	Transport,
	Restaurant,
	Pharmacy,
	Clothing,
	Entertainment,
	Rent,
	Education,
	Healthcare,
	PersonalCare,
	Books,
}

// AllCategories returns the taxonomy in precedence order.
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps free-form category text onto the closed set.
func Canonicalize(input string) (Category, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return Uncategorized, false
	}
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}
	if normalized == strings.ToLower(string(Uncategorized)) {
		return Uncategorized, true
	}
	return Uncategorized, false
}
