package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Import listings into Redis once",
	Long: `Fetches listings from LISTINGS_SOURCE_URL (or LISTINGS_FILE), rebuilds
the city and state bundles and stores them in Redis.`,
	Args: cobra.NoArgs,
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	container, err := buildContainer(ctx)
	if err != nil {
		return err
	}
	defer container.Close()

	cmd.Printf("Loading listings from %s...\n", container.ListingsSource.Name())
	report, err := container.ListingsRefresherService.RefreshListings(ctx)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	cmd.Printf("Stored %d of %d listings in %d cities and %d states.\n",
		report.Stored, report.Fetched, report.Cities, report.States)
	for _, s := range report.Skipped {
		cmd.Printf("  skipped #%d %q: %s\n", s.Index, s.Name, s.Reason)
	}
	if removed := report.RemovedBusinesses + report.RemovedCities + report.RemovedStates; removed > 0 {
		cmd.Printf("Removed %d businesses, %d cities and %d states no longer listed.\n",
			report.RemovedBusinesses, report.RemovedCities, report.RemovedStates)
	}
	return nil
}
