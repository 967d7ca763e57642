// Package dates holds the calendar-day arithmetic the tracker is built on.
// A day is a "YYYY-MM-DD" string in the local time zone; equality is by
// calendar day, never by clock time.
package dates

import (
	"fmt"
	"slices"
	"time"
)

const DayFormat = "2006-01-02"

// ParseDay parses a "YYYY-MM-DD" string as local midnight. Malformed input
// is returned as an error; callers treat it as fatal since the store has no
// recovery path for bad dates.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DayFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}

// Today returns the current local calendar day at midnight.
func Today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// DayNumber maps a time to a zone-independent day count, suitable for
// difference arithmetic across DST boundaries.
func DayNumber(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

// DaysBetween returns the number of whole calendar days from `from` to `to`.
func DaysBetween(from, to time.Time) int {
	return DayNumber(to) - DayNumber(from)
}

// ISOWeekday returns the ISO weekday number, Monday=1 through Sunday=7.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// Normalize deduplicates a raw history and sorts it ascending. The sort is
// lexicographic, which coincides with chronological order only because of the
// fixed-width YYYY-MM-DD format. Idempotent.
func Normalize(history []string) []string {
	out := slices.Clone(history)
	slices.Sort(out)
	return slices.Compact(out)
}
