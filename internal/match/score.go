package match

import (
	"math"

	"github.com/kcsbuilding/guttergauge/internal/types"
)

// ErrorScore returns the weighted absolute distance between a profile's
// dimensions and a measurement. It is never negative and is 0 only for an
// exact match on all three dimensions.
func ErrorScore(diffBase, diffFace, diffBack float64) float64 {
	return WeightBase*math.Abs(diffBase) +
		WeightFace*math.Abs(diffFace) +
		WeightBack*math.Abs(diffBack)
}

// Score compares a profile with a measurement
func Score(p *types.Profile, m types.Measurement) *types.ScoredCandidate {
	c := &types.ScoredCandidate{
		Profile:  p,
		DiffBase: p.Base - m.Base,
		DiffFace: p.Face - m.Face,
		DiffBack: p.Back - m.Back,
	}
	c.ErrorScore = ErrorScore(c.DiffBase, c.DiffFace, c.DiffBack)
	c.MatchScore = MatchScore(c.ErrorScore)
	c.Tier = Classify(c.MatchScore)
	return c
}
