package server

import (
	"github.com/wirving/rhabits/pkg/habit"
)

type HabitListResponse struct {
	Habits []string `json:"habits"`
}

type HabitGetResponse struct {
	Habit habit.Habit `json:"habit"`
}

type HabitSummaryResponse struct {
	HabitName    string             `json:"habit_name"`
	HabitSummary habit.HabitSummary `json:"habit_summary"`
}
