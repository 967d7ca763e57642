package cmd

import (
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove name",
	Short: "Remove a habit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return remove(cmd, args[0])
	},
}

func remove(cmd *cobra.Command, name string) error {
	habits, err := loadHabits(cmd)
	if err != nil {
		return err
	}

	habits, removed := habits.Remove(name)
	if !removed {
		cmd.Println("Habit not found.")
		return nil
	}
	return store.Save(habits)
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
