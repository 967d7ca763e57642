package cmd

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/wirving/rhabits/internal/logger"
	"github.com/wirving/rhabits/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the habit store over a local read-only HTTP API",
	Long: `The "serve" command starts an HTTP server exposing habits, streaks, and
Prometheus metrics. The server reads the same store file the CLI writes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func serve() error {
	s := server.New(store)
	logger.Info("Starting server", "addr", cfg.ListenAddr, "store", store.Path())
	return http.ListenAndServe(cfg.ListenAddr, s.Router())
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
