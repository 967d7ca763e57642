package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wirving/rhabits/internal/dates"
	"github.com/wirving/rhabits/internal/tracker"
)

var markCmd = &cobra.Command{
	Use:   "mark name [dates...]",
	Short: "Mark a day (or days) as done, leave empty to mark today",
	Long: `The "mark" command records completions for a habit. With no dates, today is
marked. Explicit dates must use the YYYY-MM-DD format and are stored as
given; separate multiple dates with spaces. Use "unmark" with the same
arguments to undo a mistake.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mark(cmd, args[0], args[1:])
	},
}

func mark(cmd *cobra.Command, name string, days []string) error {
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
		cmd.Println("Marking today as done!")
	} else {
		cmd.Println("Marking:", days)
	}
	tracker.Mark(h, days, today)

	// A malformed explicit date surfaces here, before anything is persisted.
	if err := tracker.Recompute(habits, today); err != nil {
		return err
	}
	return store.Save(habits)
}

func init() {
	rootCmd.AddCommand(markCmd)
}
