package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kcsbuilding/guttergauge/internal/access"
	"github.com/kcsbuilding/guttergauge/internal/catalog"
	"github.com/kcsbuilding/guttergauge/internal/config"
	"github.com/kcsbuilding/guttergauge/internal/match"
	"github.com/kcsbuilding/guttergauge/internal/output"
	"github.com/kcsbuilding/guttergauge/internal/types"
)

// baseRequiredMessage is shown when a search has no base measurement
const baseRequiredMessage = "Please enter at least a Base measurement to find matches."

var (
	baseFlag          float64
	faceFlag          float64
	backFlag          float64
	regionFlag        string
	categoryFlag      string
	topNFlag          int
	formatFlag        string
	outputFlag        string
	colorFlag         string
	minTierFlag       string
	quietFlag         bool
	passwordFlag      string
	adminPasswordFlag string
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank catalog profiles against a measurement",
	Long: `Filter the catalog by region and shape, score every remaining profile
against the measured base, face and back, and print the closest matches.

Flags left unset fall back to the search and output blocks of the config file.

Example:
  guttergauge match --base 115 --face 75 --back 65 --region NSW --category Quad`,
	Args: cobra.NoArgs,
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().Float64Var(&baseFlag, "base", 0, "Base measurement in mm (required)")
	matchCmd.Flags().Float64Var(&faceFlag, "face", 0, "Face measurement in mm")
	matchCmd.Flags().Float64Var(&backFlag, "back", 0, "Back measurement in mm")
	matchCmd.Flags().StringVarP(&regionFlag, "region", "r", "", "Region: QLD, NSW, VIC, TAS, SA, WA, NT, ACT")
	matchCmd.Flags().StringVar(&categoryFlag, "category", "", "Shape: All, Quad, Square, Half Round")
	matchCmd.Flags().IntVarP(&topNFlag, "top-n", "n", 0, "Number of matches to show")
	matchCmd.Flags().StringVar(&formatFlag, "format", "", "Output format: text, json, compact, markdown")
	matchCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write output to file instead of stdout")
	matchCmd.Flags().StringVar(&colorFlag, "color", "", "Color mode: auto, always, never")
	matchCmd.Flags().StringVar(&minTierFlag, "min-tier", "", "Fail when the best match is below: excellent, good, fair, poor")
	matchCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress output unless the min-tier check fails")
	matchCmd.Flags().StringVar(&passwordFlag, "password", "", "Team password (or GUTTERGAUGE_PASSWORD)")
	matchCmd.Flags().StringVar(&adminPasswordFlag, "admin-password", "", "Admin password to show buy prices (or GUTTERGAUGE_ADMIN_PASSWORD)")
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger()

	role, err := resolveRole(cfg)
	if err != nil {
		return err
	}

	format := firstNonEmpty(formatFlag, cfg.Output.Format)
	if !output.IsValidFormat(format) {
		return fmt.Errorf("invalid --format value: %q (valid: %v)", format, output.ValidFormats())
	}

	minTier := cfg.MinTier()
	if minTierFlag != "" {
		t, err := types.ParseTier(minTierFlag)
		if err != nil {
			return fmt.Errorf("invalid --min-tier value: %w", err)
		}
		minTier = &t
	}

	req := match.Request{
		Measurement: types.NewMeasurement(baseFlag, faceFlag, backFlag),
		Region:      firstNonEmpty(regionFlag, cfg.Search.Region),
		Category:    firstNonEmpty(categoryFlag, cfg.Search.Category),
		TopN:        topNFlag,
		MinTier:     minTier,
	}

	engine := match.NewEngine(cfg.Search.TopN, logger.Named("match"))
	if err := engine.Validate(&req); err != nil {
		if errors.Is(err, match.ErrBaseRequired) {
			color.New(color.FgYellow).Fprintln(os.Stderr, baseRequiredMessage)
			exitFunc(1)
			return nil
		}
		return err
	}

	cat, err := catalog.Load(commandContext(cmd), cfg.CatalogSource(), logger.Named("catalog"))
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	result, err := engine.Match(cat.Profiles, req)
	if err != nil {
		return err
	}

	// Determine output writer
	var writer *os.File
	if outputFlag != "" {
		f, err := os.Create(outputFlag)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		writer = f
	} else {
		writer = os.Stdout
	}

	// Skip output if quiet and the policy passed
	if !quietFlag || result.Result == "FAIL" {
		colorEnabled := shouldUseColor(firstNonEmpty(colorFlag, cfg.Output.Color), writer)

		renderer := output.NewRenderer(output.Format(format), colorEnabled, role)
		if err := renderer.Render(writer, result); err != nil {
			return fmt.Errorf("failed to render output: %w", err)
		}
	}

	// Set exit code based on result
	if result.Result == "FAIL" {
		exitFunc(1)
	}

	return nil
}

// resolveRole unlocks the caller's role from the password flags or
// environment. Without a configured team hash the CLI runs as staff.
func resolveRole(cfg *config.Config) (access.Role, error) {
	gate, err := access.NewGate(cfg.Access.TeamPasswordHash, cfg.Access.AdminPasswordHash)
	if err != nil {
		return access.RoleNone, err
	}

	password := firstNonEmpty(passwordFlag, os.Getenv("GUTTERGAUGE_PASSWORD"))
	role, err := gate.Authenticate(password)
	if err != nil {
		return access.RoleNone, fmt.Errorf("team password: %w", err)
	}

	adminPassword := firstNonEmpty(adminPasswordFlag, os.Getenv("GUTTERGAUGE_ADMIN_PASSWORD"))
	if adminPassword != "" && role != access.RoleAdmin {
		role, err = gate.Elevate(role, adminPassword)
		if err != nil {
			return role, fmt.Errorf("admin password: %w", err)
		}
	}
	return role, nil
}

func shouldUseColor(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // auto
		// Check if the writer is a terminal
		stat, err := f.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
