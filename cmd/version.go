package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wirving/rhabits/pkg/versioninfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("rhabits %s (built %s)\n", versioninfo.Version, versioninfo.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
