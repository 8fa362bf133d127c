package cli

import (
	"context"
	"log/slog"

	"directory-server/config"
	"directory-server/di"
	"directory-server/logger"

	"github.com/spf13/cobra"
)

var (
	envFile string

	cfg    *config.Config
	appLog *slog.Logger

	// newContainer is swapped in tests to avoid a live Redis.
	newContainer = di.NewContainer
)

var rootCmd = &cobra.Command{
	Use:   "directory-server",
	Short: "Electrolysis hair removal business directory",
	Long: `Serves the electrolysis provider directory (home, state, city and
business pages) from listings cached in Redis, and imports listings into it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load(envFile)
		appLog = logger.New(logger.Options{
			Writer: cmd.ErrOrStderr(),
			Level:  cfg.LogLevel,
			JSON:   cfg.LogJSON,
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional .env file with configuration overrides")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func buildContainer(ctx context.Context) (*di.Container, error) {
	return newContainer(ctx, cfg, appLog)
}
