package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var skipInitialRefresh bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the directory web server",
	Long: `Refreshes the listings once, starts the periodic refresher and serves
the directory pages until interrupted.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&skipInitialRefresh, "skip-refresh", false, "serve the cached directory without an initial refresh")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	container, err := buildContainer(ctx)
	if err != nil {
		return err
	}
	defer container.Close()

	if !skipInitialRefresh {
		// a failed refresh still serves whatever is already cached
		if _, err := container.ListingsRefresherService.RefreshListings(ctx); err != nil {
			appLog.Error("initial listings refresh failed", slog.Any("error", err))
		}
	}
	container.ListingsRefresherService.StartPeriodicJob(ctx, cfg.RefreshInterval)

	if err := container.DirectoryHttpServer.Start(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
