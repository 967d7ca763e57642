// Package tracker implements the history mutations behind the mark and
// unmark commands, plus the streak recompute pass that runs before every
// persist.
package tracker

import (
	"slices"
	"sort"
	"time"

	"github.com/wirving/rhabits/internal/dates"
	"github.com/wirving/rhabits/internal/streak"
	"github.com/wirving/rhabits/pkg/habit"
)

// Mark records completions. With no explicit days today is marked, unless
// the trailing entry already is today. Explicit days are appended verbatim
// with no validation; duplicates collapse at the next normalization pass.
// The history is left sorted either way.
func Mark(h *habit.Habit, days []string, today time.Time) {
	if len(days) == 0 {
		t := dates.FormatDay(today)
		if h.LastEntry() != t {
			h.History = append(h.History, t)
		}
	} else {
		h.History = append(h.History, days...)
	}
	// Lexicographic order matches chronological order for the fixed
	// YYYY-MM-DD format.
	sort.Strings(h.History)
}

// Unmark removes today, or every given day by exact string match. Days that
// were never marked are ignored.
func Unmark(h *habit.Habit, days []string, today time.Time) {
	if len(days) == 0 {
		days = []string{dates.FormatDay(today)}
	}
	h.History = slices.DeleteFunc(h.History, func(entry string) bool {
		return slices.Contains(days, entry)
	})
	sort.Strings(h.History)
}

// Recompute normalizes every habit's history and refreshes the cached
// streak. A malformed date anywhere aborts the pass; the caller must not
// persist in that case.
func Recompute(habits habit.List, today time.Time) error {
	for i := range habits {
		habits[i].History = dates.Normalize(habits[i].History)
		n, err := streak.Current(habits[i].History, today)
		if err != nil {
			return err
		}
		habits[i].Streak = n
	}
	return nil
}
