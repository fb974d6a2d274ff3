package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/baggage-sim/baggage-sim/httpapi"
)

var (
	listenAddr         string // HTTP listen address
	rateLimitPerMinute int    // Per-IP request budget, 0 disables
)

// serveCmd exposes the session action API over HTTP for external
// presentation layers.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the session action API over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg, err := resolveSessionConfig()
		if err != nil {
			logrus.Fatalf("Unable to resolve session config: %v", err)
		}

		server := httpapi.NewServer(httpapi.Config{
			ListenAddr:         listenAddr,
			RateLimitPerMinute: rateLimitPerMinute,
			Session:            cfg,
		})
		if err := server.ListenAndServe(); err != nil {
			logrus.Fatalf("HTTP server stopped: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "listen", ":8080", "HTTP listen address")
	serveCmd.Flags().IntVar(&rateLimitPerMinute, "rate-limit", 120, "Max requests per minute per client IP (0 disables)")

	rootCmd.AddCommand(serveCmd)
}
