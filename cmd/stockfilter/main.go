// Package main provides the stockfilter CLI: the command-line front for
// the dashboard core. It resolves the current CSV snapshot, reconciles
// snapshots on a key column, orders GIF animations by freshness and
// decodes them into normalized frames.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"stockfilter/internal/config"
	"stockfilter/internal/dash"
)

var (
	// Global flags (override environment/.env values)
	dataDir   string
	gifDir    string
	keyColumn string
	verbose   bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "stockfilter",
	Short: "Snapshot reconciliation and animation inspection for the stockfilter dashboard",
	Long: `stockfilter is the data core under the stockfilter dashboard.

It deterministically resolves the current CSV snapshot in a data
directory, reconciles any two snapshots by joining on a key column, and
resolves/decodes the current RRG animation (GIF) into normalized frames
for frame-by-frame inspection.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory of CSV snapshots (default $STOCKFILTER_DATA_DIR or "+config.DefaultSnapshotDir+")")
	rootCmd.PersistentFlags().StringVar(&gifDir, "gif-dir", "", "directory of GIF animations (default $STOCKFILTER_GIF_DIR or "+config.DefaultAnimationDir+")")
	rootCmd.PersistentFlags().StringVar(&keyColumn, "key", "", "join key column for reconciliation (default $STOCKFILTER_KEY_COLUMN or "+config.DefaultKeyColumn+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// newService resolves the effective configuration (flags over env over
// defaults) and builds the facade everything else calls.
func newService() (*dash.Service, error) {
	cfg := config.FromEnv()
	if dataDir != "" {
		cfg.SnapshotDir = dataDir
	}
	if gifDir != "" {
		cfg.AnimationDir = gifDir
	}
	if keyColumn != "" {
		cfg.KeyColumn = keyColumn
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return dash.New(cfg, logger), nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
