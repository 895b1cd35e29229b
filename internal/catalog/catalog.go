// Package catalog loads gutter profiles from CSV and SQLite files and
// caches the cleaned result for a short window.
//
// Rows whose Base, Face or Back value is missing or not numeric are
// dropped here, so the matching engine only ever sees valid dimensions.
package catalog

import (
	"strings"
	"time"

	"github.com/kcsbuilding/guttergauge/internal/types"
)

// Catalog is an immutable snapshot of the loaded profiles
type Catalog struct {
	// Profiles in source order, then row order
	Profiles []*types.Profile

	// Sources are the files the profiles were read from
	Sources []string

	// Dropped counts rows rejected for invalid dimensions
	Dropped int

	LoadedAt time.Time
}

// Stats summarizes a catalog
type Stats struct {
	Profiles    int `json:"profiles"`
	Suppliers   int `json:"suppliers"`
	WithPricing int `json:"with_pricing"`
	Dropped     int `json:"dropped"`
	Sources     int `json:"sources"`
}

// Len returns the number of profiles
func (c *Catalog) Len() int {
	return len(c.Profiles)
}

// Stats counts profiles, distinct suppliers and profiles with a sell price
func (c *Catalog) Stats() Stats {
	suppliers := make(map[string]struct{})
	s := Stats{
		Profiles: len(c.Profiles),
		Dropped:  c.Dropped,
		Sources:  len(c.Sources),
	}
	for _, p := range c.Profiles {
		if name := strings.ToLower(strings.TrimSpace(p.Supplier)); name != "" {
			suppliers[name] = struct{}{}
		}
		if p.HasSellPrice() {
			s.WithPricing++
		}
	}
	s.Suppliers = len(suppliers)
	return s
}
