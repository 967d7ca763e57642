// Package streak computes consecutive-day streaks from a habit's history.
package streak

import (
	"slices"
	"time"

	"github.com/wirving/rhabits/internal/dates"
)

// Current returns the length of the streak ending at the most recent history
// entry. The scan walks newest-first and stops at the first gap; a streak
// only counts as current when its newest day is today or yesterday, the
// grace being that today may simply not be marked yet.
func Current(history []string, today time.Time) (int, error) {
	days, err := dayNumbers(history)
	if err != nil {
		return 0, err
	}
	if len(days) == 0 {
		return 0, nil
	}
	slices.Reverse(days)

	td := dates.DayNumber(today)
	if days[0] != td && days[0] != td-1 {
		return 0, nil
	}

	n := 1
	for i := 1; i < len(days); i++ {
		if days[i-1]-days[i] != 1 {
			break
		}
		n++
	}
	return n, nil
}

// Longest returns the longest run of consecutive days anywhere in the
// history, regardless of how long ago it ended.
func Longest(history []string) (int, error) {
	days, err := dayNumbers(history)
	if err != nil {
		return 0, err
	}
	if len(days) == 0 {
		return 0, nil
	}

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i]-days[i-1] == 1 {
			run++
			longest = max(longest, run)
		} else {
			run = 1
		}
	}
	return longest, nil
}

// dayNumbers parses a history into unique day numbers, sorted ascending.
func dayNumbers(history []string) ([]int, error) {
	days := make([]int, 0, len(history))
	for _, entry := range history {
		d, err := dates.ParseDay(entry)
		if err != nil {
			return nil, err
		}
		days = append(days, dates.DayNumber(d))
	}
	slices.Sort(days)
	return slices.Compact(days), nil
}
