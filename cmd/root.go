package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/wirving/rhabits/internal/config"
	"github.com/wirving/rhabits/internal/storage"
	"github.com/wirving/rhabits/pkg/habit"
)

var (
	cfg   *config.Config
	store storage.Store
)

var rootCmd = &cobra.Command{
	Use:   "rhabits",
	Short: "A simple visual habit tracker",
	Long: `
	Rhabits tracks daily habits: mark days as done, list current streaks, and
	render a calendar heatmap of your history in the terminal. Dates use the
	YYYY-MM-DD format; habits are stored as a JSON file under your user data
	directory.`,
	SilenceUsage: true,
}

// Init wires the collaborators the commands run against. Called from main
// before Execute.
func Init(c *config.Config, s storage.Store) {
	cfg = c
	store = s
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// loadHabits reads the store, downgrading a malformed file to an empty list
// with a warning rather than discarding it silently. I/O errors stay fatal.
func loadHabits(cmd *cobra.Command) (habit.List, error) {
	habits, err := store.Load()
	if err != nil {
		if errors.Is(err, storage.ErrMalformed) {
			cmd.PrintErrf("warning: %v; starting from an empty list\n", err)
			return habit.List{}, nil
		}
		return nil, err
	}
	return habits, nil
}
