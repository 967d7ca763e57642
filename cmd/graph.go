package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wirving/rhabits/internal/dates"
	"github.com/wirving/rhabits/internal/heatmap"
	"github.com/wirving/rhabits/internal/term"
)

var graphCmd = &cobra.Command{
	Use:   "graph [names...]",
	Short: "Print a heatmap of your habit history",
	Long: `The "graph" command renders the selected habits as a calendar heatmap, one
column per week with the current week rightmost. Selecting several habits
blends them: a day's brightness is the fraction of selected habits done that
day. With no names, every habit is graphed.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return graph(cmd, args)
	},
}

func graph(cmd *cobra.Command, names []string) error {
	habits, err := loadHabits(cmd)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		names = habits.Names()
	}
	var histories [][]string
	for _, name := range names {
		if h := habits.Find(name); h != nil {
			histories = append(histories, h.History)
		}
	}
	if len(histories) == 0 {
		cmd.Println("No matching habits to graph.")
		return nil
	}

	width, err := term.Width()
	if err != nil {
		return err
	}
	base, err := heatmap.ParseRGB(cfg.CellColor)
	if err != nil {
		return err
	}

	p, err := heatmap.Project(heatmap.Merge(histories), len(histories), dates.Today(), width)
	if err != nil {
		return err
	}
	return heatmap.Render(term.NewCanvas(os.Stdout), p, base)
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
