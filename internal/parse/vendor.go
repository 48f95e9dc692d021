package parse

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// Introductory phrases that commonly precede a vendor name; the capture
	// runs to end of line.
	reVendorIntro = regexp.MustCompile(`(?i)(?:invoice from|bill from|purchased at|sold by|store|shop|vendor|from)\s*:?\s*([A-Za-z0-9 .&'-]+)`)
	reVendorTo    = regexp.MustCompile(`(?i)to:\s*([A-Za-z0-9 .&'-]+)`)
	reVendorFrom  = regexp.MustCompile(`(?i)from:\s*([A-Za-z0-9 .&'-]+)`)

	// A line consisting purely of name-ish characters, e.g. a prominent
	// header like "GLOBAL SUPERMART".
	reVendorLine = regexp.MustCompile(`^[A-Za-z0-9 .&'-]+$`)

	// Trailing structural fragments stripped off accepted candidates.
	reTrailingKeyword = regexp.MustCompile(`(?i)(?:invoice|bill|receipt|store|shop|vendor|from|at|date|total|amount|items)\s*:?\s*$`)
	reEdgePunct       = regexp.MustCompile(`^[^\w\s]+|[^\w\s]+$`)
)

// reservedHeaderWords disqualify a line from being treated as a vendor
// header; they mark structural receipt lines, not names.
var reservedHeaderWords = []string{
	"date", "total", "amount", "invoice", "bill", "receipt", "items", "subtotal", "tax",
}

// ExtractVendor walks an ordered chain of patterns and accepts the first
// candidate that survives cleaning. When the chain produces nothing it
// falls back to a line-scan heuristic, and finally to the "Unknown"
// sentinel. The result is rendered in title case.
func ExtractVendor(text string) string {
	for _, candidate := range vendorCandidates(text) {
		if v := cleanVendor(candidate); v != "" {
			return titleCase(v)
		}
	}
	if v := fallbackVendorLine(text); v != "" {
		return titleCase(v)
	}
	return DefaultVendor
}

// vendorCandidates yields at most one candidate per chain step, in chain
// order. A candidate emptied by cleaning moves the caller to the next
// step, not the next line.
func vendorCandidates(text string) []string {
	var out []string
	if m := reVendorIntro.FindStringSubmatch(text); m != nil {
		out = append(out, m[1])
	}
	if l := headerLine(text); l != "" {
		out = append(out, l)
	}
	if m := reVendorTo.FindStringSubmatch(text); m != nil {
		out = append(out, m[1])
	}
	if m := reVendorFrom.FindStringSubmatch(text); m != nil {
		out = append(out, m[1])
	}
	if l := firstPlainLine(text); l != "" {
		out = append(out, l)
	}
	return out
}

// headerLine returns the first name-ish line that does not start with a
// structural keyword.
func headerLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !reVendorLine.MatchString(line) {
			continue
		}
		if startsWithReserved(line) {
			continue
		}
		return line
	}
	return ""
}

// firstPlainLine is the unconditional catch-all: the first name-ish line.
func firstPlainLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if reVendorLine.MatchString(line) {
			return line
		}
	}
	return ""
}

// fallbackVendorLine scans all lines and picks the first that looks like
// neither an amount nor a date and has a plausible name length.
func fallbackVendorLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if reDate.MatchString(line) || reAmount.MatchString(line) {
			continue
		}
		if len(line) > 5 && len(line) < 50 {
			return line
		}
	}
	return ""
}

func startsWithReserved(line string) bool {
	lower := strings.ToLower(line)
	for _, w := range reservedHeaderWords {
		if strings.HasPrefix(lower, w) {
			return true
		}
	}
	return false
}

func cleanVendor(s string) string {
	s = strings.TrimSpace(s)
	s = reTrailingKeyword.ReplaceAllString(s, "")
	s = reEdgePunct.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
