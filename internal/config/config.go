// Package config handles loading and validating guttergauge configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/kcsbuilding/guttergauge/internal/catalog"
	"github.com/kcsbuilding/guttergauge/internal/pathfilter"
	"github.com/kcsbuilding/guttergauge/internal/types"
)

// FileName is the configuration file searched for in the working directory
const FileName = ".guttergauge.hcl"

// Config represents the guttergauge configuration
type Config struct {
	Version int            `hcl:"version,attr"`
	Catalog *CatalogConfig `hcl:"catalog,block"`
	Search  *SearchConfig  `hcl:"search,block"`
	Output  *OutputConfig  `hcl:"output,block"`
	Access  *AccessConfig  `hcl:"access,block"`
	Server  *ServerConfig  `hcl:"server,block"`

	// Internal: path to the loaded config file (empty if using defaults)
	configPath string
}

// CatalogConfig defines where profiles are loaded from
type CatalogConfig struct {
	Path     string   `hcl:"path,optional"`
	Include  []string `hcl:"include,optional"`
	Exclude  []string `hcl:"exclude,optional"`
	CacheTTL string   `hcl:"cache_ttl,optional"`
	Table    string   `hcl:"table,optional"`
}

// SearchConfig defines default search selectors
type SearchConfig struct {
	Region   string `hcl:"region,optional"`
	Category string `hcl:"category,optional"`
	TopN     int    `hcl:"top_n,optional"`
	MinTier  string `hcl:"min_tier,optional"`
}

// OutputConfig defines output settings
type OutputConfig struct {
	Format string `hcl:"format,optional"`
	Color  string `hcl:"color,optional"`
}

// AccessConfig holds bcrypt hashes of the team and admin passwords
type AccessConfig struct {
	TeamPasswordHash  string `hcl:"team_password_hash,optional"`
	AdminPasswordHash string `hcl:"admin_password_hash,optional"`
}

// ServerConfig defines HTTP server settings
type ServerConfig struct {
	Addr string `hcl:"addr,optional"`
}

// ConfigPath returns the path to the loaded config file, or empty if using defaults
func (c *Config) ConfigPath() string {
	return c.configPath
}

// CatalogPath returns the catalog path. Relative paths are resolved
// against the directory of the config file.
func (c *Config) CatalogPath() string {
	path := c.Catalog.Path
	if c.configPath == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(c.configPath), path)
}

// CatalogSource returns the catalog source described by the config
func (c *Config) CatalogSource() catalog.Source {
	return catalog.Source{
		Path:   c.CatalogPath(),
		Filter: pathfilter.New(c.Catalog.Include, c.Catalog.Exclude),
		Table:  c.Catalog.Table,
	}
}

// CacheTTL returns the catalog cache window. Validate guarantees it parses.
func (c *Config) CacheTTL() time.Duration {
	d, err := time.ParseDuration(c.Catalog.CacheTTL)
	if err != nil {
		return catalog.DefaultTTL
	}
	return d
}

// MinTier returns the configured policy threshold, or nil if none is set
func (c *Config) MinTier() *types.Tier {
	if c.Search.MinTier == "" {
		return nil
	}
	t, err := types.ParseTier(c.Search.MinTier)
	if err != nil {
		return nil
	}
	return &t
}

// Load loads configuration from the specified path or searches for it.
// Search order: configPath (if provided), .guttergauge.hcl in cwd.
func Load(configPath string) (*Config, error) {
	var path string

	if configPath != "" {
		path = configPath
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	} else {
		path = findConfigFile()
	}

	if path == "" {
		return Default(), nil
	}

	return loadFromFile(path)
}

// findConfigFile searches for .guttergauge.hcl in the working directory
func findConfigFile() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	cwdPath := filepath.Join(cwd, FileName)
	if _, err := os.Stat(cwdPath); err == nil {
		return cwdPath
	}
	return ""
}

// loadFromFile loads and parses a configuration file
func loadFromFile(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", formatDiagnostics(diags))
	}

	var config Config
	decodeDiags := gohcl.DecodeBody(file.Body, evalContext(), &config)
	if decodeDiags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", formatDiagnostics(decodeDiags))
	}

	config.configPath = path

	applyDefaults(&config)

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// formatDiagnostics formats HCL diagnostics into a readable error string
func formatDiagnostics(diags hcl.Diagnostics) string {
	if len(diags) == 0 {
		return ""
	}

	var b strings.Builder
	for i, diag := range diags {
		if i > 0 {
			b.WriteString("; ")
		}
		if diag.Subject != nil {
			fmt.Fprintf(&b, "%s:%d: ", diag.Subject.Filename, diag.Subject.Start.Line)
		}
		b.WriteString(diag.Summary)
		if diag.Detail != "" {
			b.WriteString(": ")
			b.WriteString(diag.Detail)
		}
	}
	return b.String()
}

// applyDefaults fills in default values for missing optional config blocks
func applyDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Catalog == nil {
		cfg.Catalog = defaults.Catalog
	} else {
		if cfg.Catalog.Path == "" {
			cfg.Catalog.Path = defaults.Catalog.Path
		}
		if len(cfg.Catalog.Include) == 0 {
			cfg.Catalog.Include = defaults.Catalog.Include
		}
		if cfg.Catalog.Exclude == nil {
			cfg.Catalog.Exclude = defaults.Catalog.Exclude
		}
		if cfg.Catalog.CacheTTL == "" {
			cfg.Catalog.CacheTTL = defaults.Catalog.CacheTTL
		}
		if cfg.Catalog.Table == "" {
			cfg.Catalog.Table = defaults.Catalog.Table
		}
	}

	if cfg.Search == nil {
		cfg.Search = defaults.Search
	} else {
		if cfg.Search.Region == "" {
			cfg.Search.Region = defaults.Search.Region
		}
		if cfg.Search.Category == "" {
			cfg.Search.Category = defaults.Search.Category
		}
		if cfg.Search.TopN == 0 {
			cfg.Search.TopN = defaults.Search.TopN
		}
	}

	if cfg.Output == nil {
		cfg.Output = defaults.Output
	} else {
		if cfg.Output.Format == "" {
			cfg.Output.Format = defaults.Output.Format
		}
		if cfg.Output.Color == "" {
			cfg.Output.Color = defaults.Output.Color
		}
	}

	if cfg.Access == nil {
		cfg.Access = defaults.Access
	}

	if cfg.Server == nil {
		cfg.Server = defaults.Server
	} else if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaults.Server.Addr
	}
}
