package config

import (
	"github.com/kcsbuilding/guttergauge/internal/catalog"
	"github.com/kcsbuilding/guttergauge/internal/match"
	"github.com/kcsbuilding/guttergauge/internal/pathfilter"
)

// DefaultServerAddr is the listen address of `guttergauge serve`
const DefaultServerAddr = "127.0.0.1:8080"

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Version: 1,
		Catalog: &CatalogConfig{
			Path:     "gutters.csv",
			Include:  append([]string(nil), pathfilter.DefaultInclude...),
			Exclude:  append([]string(nil), pathfilter.DefaultExclude...),
			CacheTTL: catalog.DefaultTTL.String(),
			Table:    catalog.DefaultTable,
		},
		Search: &SearchConfig{
			Region:   "QLD",
			Category: match.CategoryAll,
			TopN:     match.DefaultTopN,
		},
		Output: &OutputConfig{
			Format: "text",
			Color:  "auto",
		},
		Access: &AccessConfig{},
		Server: &ServerConfig{
			Addr: DefaultServerAddr,
		},
	}
}
