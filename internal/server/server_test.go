package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wirving/rhabits/internal/dates"
	"github.com/wirving/rhabits/internal/storage"
	"github.com/wirving/rhabits/pkg/habit"
)

func testHabits() habit.List {
	today := dates.FormatDay(dates.Today())
	return habit.List{
		{Name: "guitar", History: []string{today}},
		{Name: "reading", History: []string{"2024-01-01", "2024-01-02"}},
	}
}

func doRequest(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestListHabits(t *testing.T) {
	s := New(newMemStore(testHabits()))

	rec := doRequest(t, s, "/habits")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp HabitListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.Habits) != 2 {
		t.Fatalf("habits = %v, want 2 names", resp.Habits)
	}
}

func TestGetHabit(t *testing.T) {
	s := New(newMemStore(testHabits()))

	rec := doRequest(t, s, "/habits/reading")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp HabitGetResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Habit.Name != "reading" || len(resp.Habit.History) != 2 {
		t.Fatalf("habit = %+v", resp.Habit)
	}
}

func TestGetHabit_NotFound(t *testing.T) {
	s := New(newMemStore(testHabits()))

	rec := doRequest(t, s, "/habits/juggling")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGetHabitSummary(t *testing.T) {
	s := New(newMemStore(testHabits()))

	rec := doRequest(t, s, "/habits/guitar/summary")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp HabitSummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.HabitSummary.CurrentStreak != 1 {
		t.Errorf("current streak = %d, want 1", resp.HabitSummary.CurrentStreak)
	}
	if resp.HabitSummary.TotalDaysDone != 1 {
		t.Errorf("total days done = %d, want 1", resp.HabitSummary.TotalDaysDone)
	}
}

func TestMalformedStoreServesEmptyList(t *testing.T) {
	store := newMemStore(nil)
	store.err = fmt.Errorf("decode: %w", storage.ErrMalformed)
	s := New(store)

	rec := doRequest(t, s, "/habits")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp HabitListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.Habits) != 0 {
		t.Fatalf("habits = %v, want empty", resp.Habits)
	}
}

func TestStorageErrorIsFatalToRequest(t *testing.T) {
	store := newMemStore(nil)
	store.err = fmt.Errorf("disk on fire")
	s := New(store)

	rec := doRequest(t, s, "/habits")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestVersionEndpoint(t *testing.T) {
	s := New(newMemStore(nil))

	rec := doRequest(t, s, "/version")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
