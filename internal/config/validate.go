package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kcsbuilding/guttergauge/internal/access"
	"github.com/kcsbuilding/guttergauge/internal/catalog"
	"github.com/kcsbuilding/guttergauge/internal/match"
	"github.com/kcsbuilding/guttergauge/internal/output"
	"github.com/kcsbuilding/guttergauge/internal/types"
)

// Validate validates the configuration
func Validate(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (only version 1 is supported)", cfg.Version)
	}

	if cfg.Catalog != nil {
		if cfg.Catalog.CacheTTL != "" {
			d, err := time.ParseDuration(cfg.Catalog.CacheTTL)
			if err != nil || d < 0 {
				return fmt.Errorf("invalid cache_ttl: %s (must be a duration such as '10s')", cfg.Catalog.CacheTTL)
			}
		}
		if cfg.Catalog.Table != "" && !catalog.ValidTableName(cfg.Catalog.Table) {
			return fmt.Errorf("invalid catalog table name: %s", cfg.Catalog.Table)
		}
	}

	if cfg.Search != nil {
		if cfg.Search.Region != "" {
			if _, ok := match.NormalizeRegion(cfg.Search.Region); !ok {
				return fmt.Errorf("invalid region: %s (must be one of %s)", cfg.Search.Region, strings.Join(match.Regions, ", "))
			}
		}
		if cfg.Search.Category != "" {
			if _, ok := match.NormalizeCategory(cfg.Search.Category); !ok {
				return fmt.Errorf("invalid category: %s (must be one of %s)", cfg.Search.Category, strings.Join(match.Categories, ", "))
			}
		}
		if cfg.Search.TopN < 0 {
			return fmt.Errorf("invalid top_n: %d (must be at least 1)", cfg.Search.TopN)
		}
		if cfg.Search.MinTier != "" {
			if _, err := types.ParseTier(cfg.Search.MinTier); err != nil {
				return fmt.Errorf("invalid min_tier: %s (must be 'excellent', 'good', 'fair', or 'poor')", cfg.Search.MinTier)
			}
		}
	}

	if cfg.Output != nil && cfg.Output.Format != "" {
		if !output.IsValidFormat(cfg.Output.Format) {
			return fmt.Errorf("invalid output format: %s (must be one of %s)", cfg.Output.Format, strings.Join(output.ValidFormats(), ", "))
		}
	}

	if cfg.Output != nil && cfg.Output.Color != "" {
		switch cfg.Output.Color {
		case "auto", "always", "never":
		default:
			return fmt.Errorf("invalid color mode: %s (must be 'auto', 'always', or 'never')", cfg.Output.Color)
		}
	}

	if cfg.Access != nil {
		if err := access.ValidateHash(cfg.Access.TeamPasswordHash); err != nil {
			return fmt.Errorf("invalid team_password_hash: %w", err)
		}
		if err := access.ValidateHash(cfg.Access.AdminPasswordHash); err != nil {
			return fmt.Errorf("invalid admin_password_hash: %w", err)
		}
	}

	return nil
}
