package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wirving/rhabits/internal/dates"
	"github.com/wirving/rhabits/internal/tracker"
)

var unmarkCmd = &cobra.Command{
	Use:   "unmark name [dates...]",
	Short: "Unmark marked day (or days), leave empty to unmark today",
	Long: `The "unmark" command removes completions from a habit's history by exact
date match. With no dates, today is removed. Dates that were never marked
are ignored.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return unmark(cmd, args[0], args[1:])
	},
}

func unmark(cmd *cobra.Command, name string, days []string) error {
	habits, err := loadHabits(cmd)
	if err != nil {
		return err
	}

	h := habits.Find(name)
	if h == nil {
		cmd.Println("Habit not found.")
		return nil
	}

	today := dates.Today()
	if len(days) == 0 {
		cmd.Println("Unmarking today")
	} else {
		cmd.Println("Unmarking:", days)
	}
	tracker.Unmark(h, days, today)

	if err := tracker.Recompute(habits, today); err != nil {
		return err
	}
	return store.Save(habits)
}

func init() {
	rootCmd.AddCommand(unmarkCmd)
}
