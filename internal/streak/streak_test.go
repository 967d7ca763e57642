package streak

import (
	"testing"
	"time"

	"github.com/wirving/rhabits/internal/dates"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := dates.ParseDay(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestCurrent_ThreeConsecutiveDays(t *testing.T) {
	history := []string{"2024-01-01", "2024-01-02", "2024-01-03"}

	got, err := Current(history, day(t, "2024-01-03"))
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if got != 3 {
		t.Fatalf("streak = %d, want 3", got)
	}
}

func TestCurrent_EmptyHistory(t *testing.T) {
	got, err := Current(nil, day(t, "2024-01-03"))
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if got != 0 {
		t.Fatalf("streak = %d, want 0", got)
	}
}

// The scan stops at the first gap: a day separated from the run ending at
// the newest entry is not counted, even though it exists in the history.
func TestCurrent_StopsAtFirstGap(t *testing.T) {
	history := []string{"2024-01-01", "2024-01-03"}

	got, err := Current(history, day(t, "2024-01-03"))
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if got != 1 {
		t.Fatalf("streak = %d, want 1 (scan must stop at the gap)", got)
	}
}

// A streak whose newest day is older than yesterday is over, not current.
func TestCurrent_StaleHistory(t *testing.T) {
	history := []string{"2024-01-01", "2024-01-02"}

	got, err := Current(history, day(t, "2024-01-10"))
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if got != 0 {
		t.Fatalf("streak = %d, want 0 for a stale history", got)
	}
}

// Yesterday's entry keeps the streak alive: today may not be marked yet.
func TestCurrent_YesterdayGrace(t *testing.T) {
	history := []string{"2024-01-01", "2024-01-02"}

	got, err := Current(history, day(t, "2024-01-03"))
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if got != 2 {
		t.Fatalf("streak = %d, want 2", got)
	}
}

func TestCurrent_DuplicatesCollapse(t *testing.T) {
	history := []string{"2024-01-02", "2024-01-02", "2024-01-03"}

	got, err := Current(history, day(t, "2024-01-03"))
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if got != 2 {
		t.Fatalf("streak = %d, want 2", got)
	}
}

func TestCurrent_MalformedDate(t *testing.T) {
	if _, err := Current([]string{"not-a-date"}, day(t, "2024-01-03")); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestLongest(t *testing.T) {
	history := []string{
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04",
		"2024-02-01", "2024-02-02",
	}

	got, err := Longest(history)
	if err != nil {
		t.Fatalf("Longest failed: %v", err)
	}
	if got != 4 {
		t.Fatalf("longest = %d, want 4", got)
	}
}

func TestLongest_Empty(t *testing.T) {
	got, err := Longest(nil)
	if err != nil {
		t.Fatalf("Longest failed: %v", err)
	}
	if got != 0 {
		t.Fatalf("longest = %d, want 0", got)
	}
}

func TestLongest_SingleDay(t *testing.T) {
	got, err := Longest([]string{"2024-01-01"})
	if err != nil {
		t.Fatalf("Longest failed: %v", err)
	}
	if got != 1 {
		t.Fatalf("longest = %d, want 1", got)
	}
}
