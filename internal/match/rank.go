package match

import (
	"cmp"
	"slices"

	"github.com/kcsbuilding/guttergauge/internal/types"
)

// Rank scores every profile and returns the best topN, ordered by
// ascending error score. Equal scores keep their catalog order. A topN of
// zero or less means DefaultTopN.
func Rank(profiles []*types.Profile, m types.Measurement, topN int) []*types.ScoredCandidate {
	if topN <= 0 {
		topN = DefaultTopN
	}

	scored := make([]*types.ScoredCandidate, 0, len(profiles))
	for _, p := range profiles {
		scored = append(scored, Score(p, m))
	}

	slices.SortStableFunc(scored, func(a, b *types.ScoredCandidate) int {
		return cmp.Compare(a.ErrorScore, b.ErrorScore)
	})

	if len(scored) > topN {
		scored = scored[:topN]
	}
	for i, c := range scored {
		c.Rank = i + 1
	}
	return scored
}
