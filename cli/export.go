package cli

import (
	"fmt"

	"directory-server/models/business"
	"directory-server/util"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the cached listings to a JSON file",
	Long: `Dumps every business stored in Redis as a JSON array in the same format
the load command reads, so the file can be used as LISTINGS_FILE.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	container, err := buildContainer(ctx)
	if err != nil {
		return err
	}
	defer container.Close()

	slugs, err := container.RedisDirectoryDao.ListBusinessSlugs(ctx)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	out := make([]business.BusinessListing, 0, len(slugs))
	for _, slug := range slugs {
		b, err := container.RedisDirectoryDao.GetBusiness(ctx, slug)
		if err != nil {
			return fmt.Errorf("export failed on %s: %w", slug, err)
		}
		out = append(out, *b)
	}

	if err := util.WriteJSONFile(args[0], out); err != nil {
		return err
	}
	cmd.Printf("Exported %d listings to %s.\n", len(out), args[0])
	return nil
}
