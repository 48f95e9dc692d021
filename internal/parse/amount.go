package parse

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// reAmount anchors on a priority-ordered keyword alternation followed by an
// optional colon/equals, an optional currency symbol, and a digit run that
// may contain commas and dots. Because it is a single alternation over the
// whole text, the first keyword occurrence in document order wins, not the
// highest-priority keyword present anywhere. A "Subtotal: 100" before
// "Total: 120" therefore yields 100 (the "total" inside "Subtotal" matches).
var reAmount = regexp.MustCompile(`(?i)(?:total amount|total due|amount due|balance due|grand total|net payable|payable|total|amount|sum|bill)\s*[:=]?\s*[$€£₹]?\s*(\d[\d,.]*)`)

var reNonAmountChar = regexp.MustCompile(`[^\d.]`)

// ExtractAmount returns the first amount found in the text, or nil when no
// keyword-anchored number is present or the captured run fails to parse.
func ExtractAmount(text string) *float64 {
	m := reAmount.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	v, ok := cleanAmount(m[1])
	if !ok {
		return nil
	}
	return &v
}

// cleanAmount normalizes a captured digit run into a float:
// commas are thousands separators; when several dots survive, all but the
// last are treated as thousands separators too; anything else is stripped.
func cleanAmount(raw string) (float64, bool) {
	s := strings.ReplaceAll(raw, ",", "")
	if parts := strings.Split(s, "."); len(parts) > 2 {
		s = strings.Join(parts[:len(parts)-1], "") + "." + parts[len(parts)-1]
	}
	s = reNonAmountChar.ReplaceAllString(s, "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}
