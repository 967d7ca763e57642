package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wirving/rhabits/pkg/habit"
)

var addCmd = &cobra.Command{
	Use:   "add name [names...]",
	Short: "Add one or more new habits",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return add(cmd, args)
	},
}

func add(cmd *cobra.Command, names []string) error {
	habits, err := loadHabits(cmd)
	if err != nil {
		return err
	}

	for _, name := range names {
		if habits.Find(name) != nil {
			cmd.Printf("Habit %q already exists, skipping.\n", name)
			continue
		}
		habits = append(habits, habit.Habit{
			Name:    name,
			Streak:  0,
			History: []string{},
		})
		cmd.Printf("Added habit %q.\n", name)
	}

	return store.Save(habits)
}

func init() {
	rootCmd.AddCommand(addCmd)
}
