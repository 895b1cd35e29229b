package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Tier is the quality band of a match score
type Tier int

const (
	// TierPoor is a match score below 50
	TierPoor Tier = iota
	// TierFair is a match score of at least 50
	TierFair
	// TierGood is a match score of at least 70
	TierGood
	// TierExcellent is a match score of at least 90
	TierExcellent
)

// String returns the display label of the tier
func (t Tier) String() string {
	switch t {
	case TierExcellent:
		return "Excellent Match"
	case TierGood:
		return "Good Match"
	case TierFair:
		return "Fair Match"
	case TierPoor:
		return "Poor Match"
	default:
		return "Unknown"
	}
}

// Key returns the short lower-case name used in config and flags
func (t Tier) Key() string {
	switch t {
	case TierExcellent:
		return "excellent"
	case TierGood:
		return "good"
	case TierFair:
		return "fair"
	case TierPoor:
		return "poor"
	default:
		return "unknown"
	}
}

// ColorHint returns the color name associated with the tier
func (t Tier) ColorHint() string {
	switch t {
	case TierExcellent:
		return "green"
	case TierGood:
		return "amber"
	case TierFair:
		return "orange"
	default:
		return "red"
	}
}

// HexColor returns the hex color used when rendering the tier
func (t Tier) HexColor() string {
	switch t {
	case TierExcellent:
		return "#27AE60"
	case TierGood:
		return "#F39C12"
	case TierFair:
		return "#E67E22"
	default:
		return "#E74C3C"
	}
}

// MarshalJSON implements json.Marshaler
func (t Tier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Key())
}

// UnmarshalJSON implements json.Unmarshaler
func (t *Tier) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseTier(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTier parses a tier key ("good") or label ("Good Match")
func ParseTier(s string) (Tier, error) {
	key := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), " match")
	switch key {
	case "excellent":
		return TierExcellent, nil
	case "good":
		return TierGood, nil
	case "fair":
		return TierFair, nil
	case "poor":
		return TierPoor, nil
	default:
		return TierPoor, fmt.Errorf("unknown tier: %s", s)
	}
}

// AtLeast returns true if this tier is at least as good as other
func (t Tier) AtLeast(other Tier) bool {
	return t >= other
}

// DiffTier describes how close a single dimension is to the measurement
type DiffTier int

const (
	// DiffExact is a zero difference
	DiffExact DiffTier = iota
	// DiffClose is a difference of at most 2mm either way
	DiffClose
	// DiffFar is anything larger
	DiffFar
)

// String returns the name of the diff tier
func (d DiffTier) String() string {
	switch d {
	case DiffExact:
		return "exact"
	case DiffClose:
		return "close"
	case DiffFar:
		return "far"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler
func (d DiffTier) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
