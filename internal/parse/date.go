package parse

import (
	"regexp"
	"time"
)

// reDate matches numeric dates with -, / or . separators (day-first or
// year-first) and named-month forms like "Jul 19, 2025". Only the first
// match in document order is considered.
var reDate = regexp.MustCompile(`(?i)\b\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4}\b|\b\d{4}[-/.]\d{1,2}[-/.]\d{1,2}\b|\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{1,2},?\s+\d{4}\b`)

// dateLayouts is tried in order against the matched substring; the first
// layout that parses wins. Year-first layouts come first because they are
// unambiguous, then day-first, then two-digit years, then named months.
var dateLayouts = []string{
	"2006-1-2", "2006/1/2", "2006.1.2",
	"2-1-2006", "2/1/2006", "2.1.2006",
	"2-1-06", "2/1/06", "2.1.06",
	"Jan 2, 2006", "January 2, 2006",
	"Jan 2 2006", "January 2 2006",
	"2 Jan 2006", "2 January 2006",
}

// ExtractDate returns the first recognizable calendar date in the text,
// normalized to midnight UTC, or nil when no pattern matched or none of
// the layouts could parse the matched substring.
func ExtractDate(text string) *time.Time {
	m := reDate.FindString(text)
	if m == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, m)
		if err != nil {
			continue
		}
		d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return &d
	}
	return nil
}
