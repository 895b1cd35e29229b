package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kcsbuilding/guttergauge/internal/match"
	"github.com/kcsbuilding/guttergauge/internal/types"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Show how matches are scored",
	Long: `Show the scoring model: the dimension weights, the error at which a
match scores zero, and the score thresholds of each tier.`,
	Args: cobra.NoArgs,
	Run:  runTiers,
}

func init() {
	rootCmd.AddCommand(tiersCmd)
}

func runTiers(cmd *cobra.Command, args []string) {
	fmt.Println("Error score:")
	fmt.Printf("  %.1f x |base diff| + %.1f x |face diff| + %.1f x |back diff|\n",
		match.WeightBase, match.WeightFace, match.WeightBack)
	fmt.Println()

	fmt.Println("Match score:")
	fmt.Printf("  100 - (error / %.0f x 100), 0 when error >= %.0f\n", match.MaxError, match.MaxError)
	fmt.Println()

	fmt.Println("Tiers:")
	rows := []struct {
		tier  types.Tier
		from  string
		attrs []color.Attribute
	}{
		{types.TierExcellent, fmt.Sprintf(">= %.0f", match.ExcellentThreshold), []color.Attribute{color.FgGreen}},
		{types.TierGood, fmt.Sprintf(">= %.0f", match.GoodThreshold), []color.Attribute{color.FgYellow}},
		{types.TierFair, fmt.Sprintf(">= %.0f", match.FairThreshold), []color.Attribute{color.FgHiYellow}},
		{types.TierPoor, fmt.Sprintf("< %.0f", match.FairThreshold), []color.Attribute{color.FgRed}},
	}
	for _, row := range rows {
		label := color.New(row.attrs...).Sprintf("%-16s", row.tier)
		fmt.Printf("  %s %-6s (%s)\n", label, row.from, row.tier.Key())
	}
	fmt.Println()

	fmt.Printf("A single dimension within %.0fmm is shown as close.\n", match.CloseDiffMM)
}
