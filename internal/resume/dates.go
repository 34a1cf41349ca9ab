package resume

import (
	"strings"
	"time"
)

// dateLayouts are the stored-date forms the editor produces, most specific
// first. Anything else is treated as opaque text.
var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a stored date string in short human-readable form
// ("Jan 2006"). The "Present" sentinel is returned as-is, and a value that
// does not parse as a date falls back to the raw input unchanged.
func FormatDate(value string) string {
	if value == "" || value == PresentSentinel {
		return value
	}
	t, ok := parseDate(value)
	if !ok {
		return value
	}
	return t.Format("Jan 2006")
}

// FormatDateUpper renders a stored date string in upper-cased long form
// ("JANUARY 2006"), used by the ats-classic template. The sentinel becomes
// "PRESENT"; unparseable input is upper-cased verbatim.
func FormatDateUpper(value string) string {
	if value == "" {
		return value
	}
	if value == PresentSentinel {
		return strings.ToUpper(PresentSentinel)
	}
	t, ok := parseDate(value)
	if !ok {
		return strings.ToUpper(value)
	}
	return strings.ToUpper(t.Format("January 2006"))
}
