package match

import (
	"fmt"
	"math"

	"github.com/kcsbuilding/guttergauge/internal/types"
)

// MatchScore maps an error score onto 0-100, decaying linearly from 100 at
// a perfect match to 0 at MaxError.
func MatchScore(errorScore float64) float64 {
	if errorScore >= MaxError {
		return 0
	}
	return math.Max(0, 100-(errorScore/MaxError*100))
}

// Classify returns the quality tier of a match score
func Classify(matchScore float64) types.Tier {
	switch {
	case matchScore >= ExcellentThreshold:
		return types.TierExcellent
	case matchScore >= GoodThreshold:
		return types.TierGood
	case matchScore >= FairThreshold:
		return types.TierFair
	default:
		return types.TierPoor
	}
}

// ClassifyDiff returns how close a single signed dimension difference is
func ClassifyDiff(diff float64) types.DiffTier {
	switch {
	case diff == 0:
		return types.DiffExact
	case math.Abs(diff) <= CloseDiffMM:
		return types.DiffClose
	default:
		return types.DiffFar
	}
}

// FormatDiff renders a dimension difference for display: "Exact" or a
// signed whole-millimetre value such as "+2mm".
func FormatDiff(diff float64) string {
	if ClassifyDiff(diff) == types.DiffExact {
		return "Exact"
	}
	return fmt.Sprintf("%+.0fmm", diff)
}
