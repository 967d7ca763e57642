package cmd

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/wirving/rhabits/internal/dates"
	"github.com/wirving/rhabits/internal/tracker"
	"github.com/wirving/rhabits/pkg/habit"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all habits",
	Long:  `The "list" command shows every habit with its current streak and last entry.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return list(cmd)
	},
}

func list(cmd *cobra.Command) error {
	habits, err := loadHabits(cmd)
	if err != nil {
		return err
	}

	if err := tracker.Recompute(habits, dates.Today()); err != nil {
		return err
	}
	if err := store.Save(habits); err != nil {
		return err
	}

	cmd.Println(habitTable(habits))
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func habitTable(habits habit.List) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Habit", "Streak", "Last Entry").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for i := range habits {
		t.Row(habits[i].Name, strconv.Itoa(habits[i].Streak), habits[i].LastEntry())
	}
	return t.Render()
}
