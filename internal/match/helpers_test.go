package match

import (
	"math"

	"github.com/kcsbuilding/guttergauge/internal/types"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func profile(desc, state string, base, face, back float64) *types.Profile {
	return &types.Profile{
		Description: desc,
		Supplier:    "Stratco",
		State:       state,
		Base:        base,
		Face:        face,
		Back:        back,
	}
}

func descriptions(profiles []*types.Profile) []string {
	out := make([]string, len(profiles))
	for i, p := range profiles {
		out[i] = p.Description
	}
	return out
}

func candidateDescriptions(candidates []*types.ScoredCandidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.Profile.Description
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
