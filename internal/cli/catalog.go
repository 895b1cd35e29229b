package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kcsbuilding/guttergauge/internal/catalog"
)

var statsFormatFlag string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the product catalog",
	Long:  `Commands for inspecting the product catalog named in the config file.`,
}

var catalogStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	Long: `Load the catalog and print the number of usable profiles, distinct
suppliers and profiles with a sell price. Rows dropped for missing or
unparseable dimensions are counted separately.`,
	Args: cobra.NoArgs,
	RunE: runCatalogStats,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogStatsCmd)

	catalogStatsCmd.Flags().StringVar(&statsFormatFlag, "format", "text", "Output format: text, json")
}

func runCatalogStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cat, err := catalog.Load(commandContext(cmd), cfg.CatalogSource(), newLogger().Named("catalog"))
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	stats := cat.Stats()

	switch statsFormatFlag {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(stats)
	case "text", "":
		fmt.Printf("Catalog: %s\n", cfg.CatalogPath())
		fmt.Printf("  Profiles:     %d\n", stats.Profiles)
		fmt.Printf("  Suppliers:    %d\n", stats.Suppliers)
		fmt.Printf("  With pricing: %d\n", stats.WithPricing)
		fmt.Printf("  Sources:      %d\n", stats.Sources)
		if stats.Dropped > 0 {
			fmt.Printf("  Dropped rows: %d\n", stats.Dropped)
		}
		return nil
	default:
		return fmt.Errorf("invalid --format value: %q (valid: text, json)", statsFormatFlag)
	}
}
