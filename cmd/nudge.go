package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wirving/rhabits/internal/nudge"
	"github.com/wirving/rhabits/internal/nudge/resend"
)

var (
	notifyEmail  string
	resendApiKey string
)

var nudgeCmd = &cobra.Command{
	Use:   "nudge",
	Short: "Send a reminder email for streaks that expire at midnight",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if resendApiKey = os.Getenv("RHABITS_RESEND_API_KEY"); resendApiKey == "" {
			return fmt.Errorf("RHABITS_RESEND_API_KEY environment variable is not set")
		}
		if notifyEmail = os.Getenv("RHABITS_NOTIFY_EMAIL"); notifyEmail == "" {
			return fmt.Errorf("RHABITS_NOTIFY_EMAIL environment variable is not set")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		n := &resend.ResendNotifier{
			ApiKey: resendApiKey,
			Email:  notifyEmail,
		}
		return nudge.Run(store, n, time.Now())
	},
}

func init() {
	rootCmd.AddCommand(nudgeCmd)
}
