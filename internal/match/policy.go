package match

import (
	"errors"
	"strings"
)

// Dimension weights used by the error score. Base has the largest effect
// on physical fit, Back the smallest.
const (
	WeightBase = 2.5
	WeightFace = 2.0
	WeightBack = 1.0
)

// MaxError is the error score at or above which a candidate scores 0%
const MaxError = 20.0

// Match score cut-offs for each tier, evaluated high to low
const (
	ExcellentThreshold = 90.0
	GoodThreshold      = 70.0
	FairThreshold      = 50.0
)

// CloseDiffMM is the largest absolute difference, in mm, still shown as close
const CloseDiffMM = 2.0

// DefaultTopN is the number of ranked candidates returned by default
const DefaultTopN = 5

// CategoryAll disables shape filtering
const CategoryAll = "All"

// Regions are the state selectors a request may use
var Regions = []string{"QLD", "NSW", "VIC", "TAS", "SA", "WA", "NT", "ACT"}

// Categories are the shape selectors a request may use
var Categories = []string{CategoryAll, "Quad", "Square", "Half Round"}

var (
	// ErrBaseRequired is returned when the measurement has no Base value
	ErrBaseRequired = errors.New("please enter at least a Base measurement to find matches")

	// ErrInvalidRegion is returned for a region outside Regions
	ErrInvalidRegion = errors.New("unknown region")

	// ErrInvalidCategory is returned for a category outside Categories
	ErrInvalidCategory = errors.New("unknown category")
)

// NormalizeRegion returns the canonical spelling of a region selector
func NormalizeRegion(region string) (string, bool) {
	region = strings.TrimSpace(region)
	for _, r := range Regions {
		if strings.EqualFold(r, region) {
			return r, true
		}
	}
	return "", false
}

// NormalizeCategory returns the canonical spelling of a category selector.
// An empty selector means All.
func NormalizeCategory(category string) (string, bool) {
	category = strings.TrimSpace(category)
	if category == "" {
		return CategoryAll, true
	}
	for _, c := range Categories {
		if strings.EqualFold(c, category) {
			return c, true
		}
	}
	return "", false
}
