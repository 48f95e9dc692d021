package parse

import (
	"strings"

	"github.com/spendlens/spendlens/constants"
)

type categoryRule struct {
	label    constants.Category
	keywords []string
}

// categoryRules is walked in order and classification stops at the first
// category with any keyword present in the lowercased text, so earlier
// entries take precedence. The order is part of the contract: Electronics
// is checked before Groceries so "electronics store" does not land in
// Groceries via "store"-adjacent words like "mart".
var categoryRules = []categoryRule{
	{constants.Electronics, []string{"electronics", "tech", "gadget", "computer", "mobile", "device"}},
	{constants.Groceries, []string{"supermarket", "mart", "grocery", "fresh", "food", "hyper", "provision"}},
	{constants.Utilities, []string{"electricity", "internet", "water", "gas", "power", "telecom", "broadband"}},
	{constants.Transport, []string{"fuel", "petrol", "cab", "taxi", "bus", "metro", "auto"}},
	{constants.Restaurant, []string{"restaurant", "cafe", "diner", "eatery", "hotel", "food", "dine"}},
	{constants.Pharmacy, []string{"pharmacy", "chemist", "medicine", "health", "drug"}},
	{constants.Clothing, []string{"fashion", "apparel", "boutique", "garment", "wear"}},
	{constants.Entertainment, []string{"movie", "cinema", "theatre", "park", "amusement", "gaming"}},
	{constants.Rent, []string{"rent", "landlord", "housing", "apartment"}},
	{constants.Education, []string{"school", "college", "university", "course", "tuition", "academy"}},
	{constants.Healthcare, []string{"hospital", "clinic", "doctor", "medical"}},
	{constants.PersonalCare, []string{"salon", "spa", "barber", "beauty"}},
	{constants.Books, []string{"book", "bookstore", "library", "novel", "reading"}},
}

// ClassifyCategory assigns exactly one category label to the text, or the
// "Uncategorized" sentinel when no keyword matches.
func ClassifyCategory(text string) string {
	normalized := strings.ToLower(text)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(normalized, kw) {
				return string(rule.label)
			}
		}
	}
	return DefaultCategory
}
