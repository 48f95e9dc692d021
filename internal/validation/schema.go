package validation

import "github.com/spendlens/spendlens/constants"

// BuildReceiptSchema returns the JSON Schema every receipt payload must
// satisfy before it is persisted. The category enum is derived from the
// known category labels plus the "Uncategorized" sentinel.
func BuildReceiptSchema() map[string]any {
	categories := constants.AsStringSlice()
	categories = append(categories, string(constants.Uncategorized))

	return map[string]any{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type":    "object",
		"properties": map[string]any{
			"vendor": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"transaction_date": map[string]any{
				"type":    "string",
				"pattern": `^\d{4}-\d{2}-\d{2}$`,
			},
			"amount": map[string]any{
				"type":    "number",
				"minimum": 0.0,
			},
			"category": map[string]any{
				"type": "string",
				"enum": categories,
			},
			"original_filename": map[string]any{
				"type": "string",
			},
		},
		"required":             []any{"vendor", "transaction_date", "amount", "category"},
		"additionalProperties": false,
	}
}
