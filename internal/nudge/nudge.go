// Package nudge finds habit streaks that will break at midnight and sends a
// reminder through a Notifier.
package nudge

import (
	"fmt"
	"time"

	"github.com/wirving/rhabits/internal/dates"
	"github.com/wirving/rhabits/internal/logger"
	"github.com/wirving/rhabits/internal/storage"
	"github.com/wirving/rhabits/internal/streak"
	"github.com/wirving/rhabits/pkg/habit"
)

type Notifier interface {
	SendNudge(habits []string, hoursLeft int) error
}

// ExpiringStreaks returns the habits with a live streak that has no entry
// for today yet. Those streaks die when the day rolls over.
func ExpiringStreaks(habits habit.List, today time.Time) ([]string, error) {
	var expiring []string
	for i := range habits {
		history := dates.Normalize(habits[i].History)
		current, err := streak.Current(history, today)
		if err != nil {
			return nil, err
		}
		if current == 0 {
			continue
		}
		if history[len(history)-1] != dates.FormatDay(today) {
			expiring = append(expiring, habits[i].Name)
		}
	}
	return expiring, nil
}

// Run loads the store and nudges about every expiring streak. No expiring
// streaks means no notification.
func Run(store storage.Store, n Notifier, now time.Time) error {
	habits, err := store.Load()
	if err != nil {
		return fmt.Errorf("load habits: %w", err)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	expiring, err := ExpiringStreaks(habits, today)
	if err != nil {
		return fmt.Errorf("find expiring streaks: %w", err)
	}
	if len(expiring) == 0 {
		logger.Info("No streaks expiring today")
		return nil
	}

	hoursLeft := int(today.AddDate(0, 0, 1).Sub(now).Hours())
	logger.Info("Sending nudge", "habits", expiring, "hours_left", hoursLeft)
	return n.SendNudge(expiring, hoursLeft)
}
