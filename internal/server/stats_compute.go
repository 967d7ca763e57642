package server

import (
	"time"

	"github.com/wirving/rhabits/internal/dates"
	"github.com/wirving/rhabits/internal/streak"
	"github.com/wirving/rhabits/pkg/habit"
)

func computeSummary(h habit.Habit, today time.Time) (habit.HabitSummary, error) {
	history := dates.Normalize(h.History)

	current, err := streak.Current(history, today)
	if err != nil {
		return habit.HabitSummary{}, err
	}
	longest, err := streak.Longest(history)
	if err != nil {
		return habit.HabitSummary{}, err
	}

	var last string
	if len(history) > 0 {
		last = history[len(history)-1]
	}

	return habit.HabitSummary{
		Name:          h.Name,
		CurrentStreak: current,
		LongestStreak: longest,
		TotalDaysDone: len(history),
		LastEntry:     last,
	}, nil
}
