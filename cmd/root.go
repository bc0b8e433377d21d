package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/atlas-cli/internal/atlas"
	"github.com/sells-group/atlas-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "atlas-cli",
	Short: "US power plant data pipeline",
	Long:  "Fetches power-plant records from the EIA Atlas feature services, classifies primary energy sources, and produces summaries, exports and snapshots.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// newAtlasClient builds a client from the loaded configuration.
func newAtlasClient() *atlas.Client {
	return atlas.NewClient(atlas.Options{
		BaseURL:   cfg.Atlas.BaseURL,
		UserAgent: cfg.Atlas.UserAgent,
		Timeout:   time.Duration(cfg.Atlas.TimeoutSecs) * time.Second,
		PageSize:  cfg.Atlas.PageSize,
		MaxPages:  cfg.Atlas.MaxPages,
		RateLimit: rate.Limit(cfg.Atlas.RateLimit),
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
