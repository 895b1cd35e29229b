package match

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/kcsbuilding/guttergauge/internal/types"
)

// Filter returns the profiles sold in region whose category text contains
// category. Matching is a case-insensitive substring test in both cases.
// Category "All" keeps every profile in the region. Profiles with an empty
// State never match. The input order is preserved.
func Filter(profiles []*types.Profile, region, category string) []*types.Profile {
	// Casers are stateful, so each call gets its own.
	folder := cases.Fold()
	wantRegion := folder.String(region)
	wantCategory := ""
	filterCategory := !strings.EqualFold(strings.TrimSpace(category), CategoryAll)
	if filterCategory {
		wantCategory = folder.String(category)
	}

	result := make([]*types.Profile, 0, len(profiles))
	for _, p := range profiles {
		if p.State == "" || !strings.Contains(folder.String(p.State), wantRegion) {
			continue
		}
		if filterCategory && !strings.Contains(folder.String(p.Category()), wantCategory) {
			continue
		}
		result = append(result, p)
	}
	return result
}
