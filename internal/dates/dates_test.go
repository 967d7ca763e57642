package dates

import (
	"slices"
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	raw := []string{"2024-01-03", "2024-01-01", "2024-01-03", "2024-01-02"}
	want := []string{"2024-01-01", "2024-01-02", "2024-01-03"}

	got := Normalize(raw)
	if !slices.Equal(got, want) {
		t.Fatalf("Normalize = %v, want %v", got, want)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	h := []string{"2024-02-01", "2024-01-15", "2024-03-01"}

	once := Normalize(h)
	twice := Normalize(once)
	if !slices.Equal(once, twice) {
		t.Fatalf("normalizing twice changed the result: %v vs %v", once, twice)
	}
}

func TestNormalize_Empty(t *testing.T) {
	if got := Normalize(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2024-06-15")
	if err != nil {
		t.Fatalf("ParseDay failed: %v", err)
	}
	if FormatDay(day) != "2024-06-15" {
		t.Fatalf("round trip mismatch: %s", FormatDay(day))
	}
}

func TestParseDay_Malformed(t *testing.T) {
	for _, bad := range []string{"", "15-06-2024", "2024/06/15", "yesterday"} {
		if _, err := ParseDay(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	a, _ := ParseDay("2024-01-01")
	b, _ := ParseDay("2024-01-08")

	if d := DaysBetween(a, b); d != 7 {
		t.Fatalf("DaysBetween = %d, want 7", d)
	}
	if d := DaysBetween(b, a); d != -7 {
		t.Fatalf("reverse DaysBetween = %d, want -7", d)
	}
}

func TestISOWeekday(t *testing.T) {
	cases := map[string]int{
		"2024-01-01": 1, // Monday
		"2024-01-06": 6, // Saturday
		"2024-01-07": 7, // Sunday
	}
	for day, want := range cases {
		d, err := ParseDay(day)
		if err != nil {
			t.Fatal(err)
		}
		if got := ISOWeekday(d); got != want {
			t.Errorf("ISOWeekday(%s) = %d, want %d", day, got, want)
		}
	}
}

func TestToday_IsMidnight(t *testing.T) {
	now := Today()
	h, m, s := now.Clock()
	if h != 0 || m != 0 || s != 0 {
		t.Fatalf("Today is not at midnight: %v", now)
	}
	if !now.Equal(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)) {
		t.Fatalf("Today not in local zone: %v", now)
	}
}
