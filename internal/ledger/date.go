package ledger

import (
	"fmt"
	"strings"
	"time"
)

// dayMonthYearLayout accepts one- or two-digit day and month values.
const dayMonthYearLayout = "2/1/2006"

// isoDateLayout is the ISO 8601 calendar-date form used for storage.
const isoDateLayout = "2006-01-02"

// ParseDate parses a DD/MM/YYYY calendar date. The day/month/year groups
// may be separated by "/" or "-", even mixed within one value. Impossible
// calendar dates ("31/02/2024") are rejected.
func ParseDate(s string) (time.Time, error) {
	normalized := strings.ReplaceAll(s, "-", "/")
	t, err := time.ParseInLocation(dayMonthYearLayout, normalized, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// ParseISODate parses a calendar date in ISO 8601 form ("2024-05-12").
func ParseISODate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(isoDateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders t as an ISO 8601 calendar date.
func FormatDate(t time.Time) string {
	return t.Format(isoDateLayout)
}
